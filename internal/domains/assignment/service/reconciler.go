package service

//go:generate go run go.uber.org/mock/mockgen -source=./reconciler.go -destination=../mocks/reconciler_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"studioops/infras/otel"
	"studioops/internal/domains/assignment/model"
	"studioops/internal/domains/assignment/model/dto"
	bookingModel "studioops/internal/domains/booking/model"
	bookingDto "studioops/internal/domains/booking/model/dto"
	bookingService "studioops/internal/domains/booking/service"
	crewDto "studioops/internal/domains/crew/model/dto"
	crewService "studioops/internal/domains/crew/service"
	"studioops/shared/constant"
	"studioops/shared/failure"
	"studioops/shared/timezone"
)

// Reconciler mediates between staged crew assignments and the booking
// store. In draft mode every change stays in memory; in committed mode
// every change is an immediate store operation against the event. The
// transition runs through Commit exactly once.
type Reconciler interface {
	AddCrew(ctx context.Context, crewID string) (bookingDto.BookingResponse, error)
	RemoveCrew(ctx context.Context, crewID string) error
	UpdateAssignment(ctx context.Context, crewID string, req dto.UpdateAssignmentRequest) error
	Commit(ctx context.Context, eventID string) ([]model.CommitResult, error)
	Discard() error
	Assignments(ctx context.Context) ([]bookingDto.BookingResponse, error)
	AvailableCrew(ctx context.Context) ([]crewDto.CrewResponse, error)
	Mode() model.Mode
}

type reconcilerImpl struct {
	mu      sync.Mutex
	mode    model.Mode
	items   []model.Assignment
	eventID string

	crew     crewService.Crew
	bookings bookingService.Booking
	otel     otel.Otel
}

func newDraftReconciler(crew crewService.Crew, bookings bookingService.Booking, otel otel.Otel) *reconcilerImpl {
	return &reconcilerImpl{
		mode:     model.ModeDraft,
		items:    []model.Assignment{},
		crew:     crew,
		bookings: bookings,
		otel:     otel,
	}
}

func newCommittedReconciler(eventID string, crew crewService.Crew, bookings bookingService.Booking, otel otel.Otel) *reconcilerImpl {
	return &reconcilerImpl{
		mode:     model.ModeCommitted,
		eventID:  eventID,
		crew:     crew,
		bookings: bookings,
		otel:     otel,
	}
}

// AddCrew stages a crew member (draft) or books one immediately
// (committed). Duplicates are a conflict in both modes; nothing is
// written to the store in draft mode.
func (r *reconcilerImpl) AddCrew(ctx context.Context, crewID string) (res bookingDto.BookingResponse, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, scope := r.otel.NewScope(ctx, constant.OtelReconcilerScopeName, constant.OtelReconcilerScopeName+".AddCrew")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch r.mode {
	case model.ModeDraft:
		member, found, err := r.activeMember(ctx, crewID)
		if err != nil {
			return res, err
		}

		if !found {
			return res, failure.BadRequestFromString("crew member does not exist or is inactive") // nolint:wrapcheck
		}

		for _, item := range r.items {
			if item.CrewID == crewID {
				return res, failure.Conflict("crew member is already staged") // nolint:wrapcheck
			}
		}

		item := model.Assignment{
			CrewID:        crewID,
			Salary:        constant.Empty,
			PaymentStatus: bookingModel.PaymentStatusPending,
		}

		r.items = append(r.items, item)

		return placeholderView(item, member.Name), nil
	case model.ModeCommitted:
		return r.bookings.Create(ctx, r.eventID, crewID)
	default:
		return res, failure.Conflict(invalidModeMessage(r.mode)) // nolint:wrapcheck
	}
}

// RemoveCrew unstages (draft) or deletes the matching booking
// (committed). Removing a crew member that is not assigned is a no-op.
func (r *reconcilerImpl) RemoveCrew(ctx context.Context, crewID string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, scope := r.otel.NewScope(ctx, constant.OtelReconcilerScopeName, constant.OtelReconcilerScopeName+".RemoveCrew")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch r.mode {
	case model.ModeDraft:
		kept := r.items[:0]

		for _, item := range r.items {
			if item.CrewID != crewID {
				kept = append(kept, item)
			}
		}

		r.items = kept

		return nil
	case model.ModeCommitted:
		booking, found, err := r.findBooking(ctx, crewID)
		if err != nil {
			return err
		}

		if !found {
			return nil
		}

		return r.bookings.Delete(ctx, booking.ID)
	default:
		return failure.Conflict(invalidModeMessage(r.mode)) // nolint:wrapcheck
	}
}

// UpdateAssignment patches salary and payment status for one crew
// member. Draft mode mutates the staged item; committed mode issues a
// single store update for the matching booking.
func (r *reconcilerImpl) UpdateAssignment(ctx context.Context, crewID string, req dto.UpdateAssignmentRequest) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, scope := r.otel.NewScope(ctx, constant.OtelReconcilerScopeName, constant.OtelReconcilerScopeName+".UpdateAssignment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateAssignmentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	switch r.mode {
	case model.ModeDraft:
		for i := range r.items {
			if r.items[i].CrewID != crewID {
				continue
			}

			if req.Salary != constant.Empty {
				r.items[i].Salary = req.Salary
			}

			if req.PaymentStatus != constant.Empty {
				r.items[i].PaymentStatus = req.PaymentStatus
			}

			return nil
		}

		return failure.NotFound("staged assignment not found") // nolint:wrapcheck
	case model.ModeCommitted:
		booking, found, err := r.findBooking(ctx, crewID)
		if err != nil {
			return err
		}

		if !found {
			return failure.NotFound("assignment not found") // nolint:wrapcheck
		}

		patch := bookingDto.UpdateBookingRequest{
			Salary:        req.Salary,
			PaymentStatus: req.PaymentStatus,
		}

		return r.bookings.Update(ctx, patch, booking.ID)
	default:
		return failure.Conflict(invalidModeMessage(r.mode)) // nolint:wrapcheck
	}
}

// Commit turns every staged item into a booking against the event. All
// items are attempted; each outcome is reported in staging order. Item
// failures never fail the commit itself, and the reconciler ends up
// committed either way.
func (r *reconcilerImpl) Commit(ctx context.Context, eventID string) (results []model.CommitResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, scope := r.otel.NewScope(ctx, constant.OtelReconcilerScopeName, constant.OtelReconcilerScopeName+".Commit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if r.mode != model.ModeDraft {
		return nil, failure.Conflict("assignments are already committed") // nolint:wrapcheck
	}

	results = make([]model.CommitResult, 0, len(r.items))

	for _, item := range r.items {
		result := model.CommitResult{CrewID: item.CrewID, OK: true}

		booking, createErr := r.bookings.Create(ctx, eventID, item.CrewID)
		if createErr != nil {
			log.Warn().Err(createErr).Str("crew_id", item.CrewID).Str("event_id", eventID).Msg("failed to commit staged assignment")

			result.OK = false
			result.Error = createErr.Error()
			results = append(results, result)

			continue
		}

		if item.Salary != constant.Empty || item.PaymentStatus != bookingModel.PaymentStatusPending {
			patch := bookingDto.UpdateBookingRequest{
				Salary:        item.Salary,
				PaymentStatus: item.PaymentStatus,
			}

			if item.PaymentStatus == bookingModel.PaymentStatusPending {
				patch.PaymentStatus = constant.Empty
			}

			if updateErr := r.bookings.Update(ctx, patch, booking.ID); updateErr != nil {
				log.Warn().Err(updateErr).Str("crew_id", item.CrewID).Msg("failed to apply staged assignment fields")

				result.OK = false
				result.Error = updateErr.Error()
			}
		}

		results = append(results, result)
	}

	r.mode = model.ModeCommitted
	r.eventID = eventID
	r.items = nil

	return results, nil
}

// Discard drops every staged item. It has no store side effects and is
// invalid once committed.
func (r *reconcilerImpl) Discard() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != model.ModeDraft {
		return failure.Conflict("committed assignments cannot be discarded") // nolint:wrapcheck
	}

	r.items = nil

	return nil
}

// Assignments returns the current view: staged items in draft mode, the
// store listing in committed mode.
func (r *reconcilerImpl) Assignments(ctx context.Context) (res []bookingDto.BookingResponse, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, scope := r.otel.NewScope(ctx, constant.OtelReconcilerScopeName, constant.OtelReconcilerScopeName+".Assignments")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch r.mode {
	case model.ModeDraft:
		names, err := r.rosterNames(ctx)
		if err != nil {
			return nil, err
		}

		res = make([]bookingDto.BookingResponse, len(r.items))
		for i, item := range r.items {
			res[i] = placeholderView(item, names[item.CrewID])
		}

		return res, nil
	case model.ModeCommitted:
		return r.bookings.ListForEvent(ctx, r.eventID)
	default:
		return nil, failure.Conflict(invalidModeMessage(r.mode)) // nolint:wrapcheck
	}
}

// AvailableCrew resolves the active roster minus the current
// assignments. It is recomputed on every call, never cached.
func (r *reconcilerImpl) AvailableCrew(ctx context.Context) (res []crewDto.CrewResponse, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, scope := r.otel.NewScope(ctx, constant.OtelReconcilerScopeName, constant.OtelReconcilerScopeName+".AvailableCrew")
	defer scope.End()
	defer scope.TraceIfError(err)

	roster, err := r.crew.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active roster: %w", err)
	}

	var assigned []string

	switch r.mode {
	case model.ModeDraft:
		assigned = make([]string, len(r.items))
		for i, item := range r.items {
			assigned[i] = item.CrewID
		}
	case model.ModeCommitted:
		bookings, err := r.bookings.ListForEvent(ctx, r.eventID)
		if err != nil {
			return nil, err
		}

		assigned = make([]string, len(bookings))
		for i, booking := range bookings {
			assigned[i] = booking.CrewID
		}
	default:
		return nil, failure.Conflict(invalidModeMessage(r.mode)) // nolint:wrapcheck
	}

	available := Available(roster, assigned)

	res = make([]crewDto.CrewResponse, len(available))
	for i, member := range available {
		res[i].FromModel(member)
	}

	return res, nil
}

func (r *reconcilerImpl) Mode() model.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mode
}

func (r *reconcilerImpl) activeMember(ctx context.Context, crewID string) (member crewDto.CrewResponse, found bool, err error) {
	roster, err := r.crew.ListActive(ctx)
	if err != nil {
		return member, false, fmt.Errorf("failed to resolve active roster: %w", err)
	}

	for _, m := range roster {
		if m.ID == crewID {
			member.FromModel(m)

			return member, true, nil
		}
	}

	return member, false, nil
}

func (r *reconcilerImpl) rosterNames(ctx context.Context) (map[string]string, error) {
	roster, err := r.crew.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active roster: %w", err)
	}

	names := make(map[string]string, len(roster))
	for _, member := range roster {
		names[member.ID] = member.Name
	}

	return names, nil
}

func (r *reconcilerImpl) findBooking(ctx context.Context, crewID string) (booking bookingDto.BookingResponse, found bool, err error) {
	bookings, err := r.bookings.ListForEvent(ctx, r.eventID)
	if err != nil {
		return booking, false, err
	}

	for _, b := range bookings {
		if b.CrewID == crewID {
			return b, true, nil
		}
	}

	return booking, false, nil
}

// placeholderView renders a staged item the way its booking will look
// once committed. No id or event is set because nothing is persisted.
func placeholderView(item model.Assignment, crewName string) bookingDto.BookingResponse {
	return bookingDto.BookingResponse{
		CrewID:        item.CrewID,
		CrewName:      crewName,
		Status:        bookingModel.StatusPending,
		AssignedAt:    timezone.Format(timezone.Now(), constant.DateFormat),
		Salary:        item.Salary,
		PaymentStatus: item.PaymentStatus,
	}
}

func invalidModeMessage(mode model.Mode) string {
	return fmt.Sprintf("invalid reconciler mode: %s", mode)
}
