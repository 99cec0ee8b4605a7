package service

//go:generate go run go.uber.org/mock/mockgen -source=./manager.go -destination=../mocks/manager_mock.go -package=mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"studioops/infras/otel"
	"studioops/internal/domains/assignment/model"
	bookingService "studioops/internal/domains/booking/service"
	crewService "studioops/internal/domains/crew/service"
	"studioops/shared/failure"
)

// Manager hands out reconcilers: one per open draft session, one per
// committed event. The per-event instance guarantees concurrent requests
// for the same event serialize on a single mutex.
type Manager interface {
	OpenDraft() string
	Draft(id string) (Reconciler, error)
	ForEvent(eventID string) Reconciler
	Commit(ctx context.Context, draftID, eventID string) ([]model.CommitResult, error)
	DiscardDraft(id string) error
}

type managerImpl struct {
	mu        sync.Mutex
	drafts    map[string]*reconcilerImpl
	committed map[string]*reconcilerImpl

	crew     crewService.Crew
	bookings bookingService.Booking
	otel     otel.Otel
}

func NewManager(crew crewService.Crew, bookings bookingService.Booking, otel otel.Otel) Manager {
	return &managerImpl{
		drafts:    map[string]*reconcilerImpl{},
		committed: map[string]*reconcilerImpl{},
		crew:      crew,
		bookings:  bookings,
		otel:      otel,
	}
}

// OpenDraft starts an empty draft session and returns its id.
func (m *managerImpl) OpenDraft() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.drafts[id] = newDraftReconciler(m.crew, m.bookings, m.otel)

	return id
}

func (m *managerImpl) Draft(id string) (Reconciler, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reconciler, ok := m.drafts[id]
	if !ok {
		return nil, failure.NotFound("draft session not found") // nolint:wrapcheck
	}

	return reconciler, nil
}

// ForEvent returns the committed reconciler for the event, creating it
// on first use. Callers for the same event always get the same instance.
func (m *managerImpl) ForEvent(eventID string) Reconciler {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.forEvent(eventID)
}

// Commit commits the draft session against the event and promotes its
// reconciler to the event's committed slot, releasing the session id.
// Per-item failures are reported in the results, not as an error.
func (m *managerImpl) Commit(ctx context.Context, draftID, eventID string) ([]model.CommitResult, error) {
	m.mu.Lock()

	reconciler, ok := m.drafts[draftID]
	if !ok {
		m.mu.Unlock()

		return nil, failure.NotFound("draft session not found") // nolint:wrapcheck
	}

	m.mu.Unlock()

	results, err := reconciler.Commit(ctx, eventID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.drafts, draftID)

	if _, exists := m.committed[eventID]; !exists {
		m.committed[eventID] = reconciler
	}

	return results, nil
}

// DiscardDraft discards the session's staged items and releases the id.
func (m *managerImpl) DiscardDraft(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reconciler, ok := m.drafts[id]
	if !ok {
		return failure.NotFound("draft session not found") // nolint:wrapcheck
	}

	if err := reconciler.Discard(); err != nil {
		return err
	}

	delete(m.drafts, id)

	return nil
}

func (m *managerImpl) forEvent(eventID string) *reconcilerImpl {
	if reconciler, ok := m.committed[eventID]; ok {
		return reconciler
	}

	reconciler := newCommittedReconciler(eventID, m.crew, m.bookings, m.otel)
	m.committed[eventID] = reconciler

	return reconciler
}
