package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"studioops/config"
	"studioops/infras/kafka"
	"studioops/infras/otel"
	"studioops/internal/domains/booking/model"
	"studioops/internal/domains/booking/model/dto"
	"studioops/internal/domains/booking/repository"
	crewModel "studioops/internal/domains/crew/model"
	crewRepo "studioops/internal/domains/crew/repository"
	eventModel "studioops/internal/domains/event/model"
	eventRepo "studioops/internal/domains/event/repository"
	"studioops/shared"
	"studioops/shared/cache"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/shared/failure"
	"studioops/shared/timezone"
)

const (
	cacheGetBooking      = "booking:get"
	cacheGetAllBooking   = "booking:gets"
	cacheBookingForEvent = "booking:forevent"
)

const (
	messageBookingAssigned = "booking.assigned"
	messageBookingUpdated  = "booking.updated"
	messageBookingRemoved  = "booking.removed"
)

type bookingMessage struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	EventID   string `json:"event_id"`
	CrewID    string `json:"crew_id"`
	At        string `json:"at"`
}

// Booking is the booking store: the persisted association between crew
// members and events. The assignment reconciler drives it in committed mode.
type Booking interface {
	Create(ctx context.Context, eventID, crewID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ListForEvent(ctx context.Context, eventID string) ([]dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	DeleteByEvent(ctx context.Context, eventID string) error
}

type serviceImpl struct {
	repo      repository.Booking
	eventRepo eventRepo.Event
	crewRepo  crewRepo.Crew
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
}

func New(repo repository.Booking, eventRepo eventRepo.Event, crewRepo crewRepo.Crew, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		crewRepo:  crewRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafka,
	}
}

// Create assigns a crew member to a persisted event. The booking starts
// pending with an empty salary. A second booking for the same
// (event, crew) pair is a conflict and leaves the store untouched.
func (s *serviceImpl) Create(ctx context.Context, eventID, crewID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	eventExists, err := s.eventRepo.Exist(ctx, shared.FilterByID(eventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return res, fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !eventExists {
		return res, failure.BadRequestFromString("event does not exist") // nolint:wrapcheck
	}

	activeCrew, err := s.crewRepo.Exist(ctx, activeCrewFilter(crewID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if crew member exists")

		return res, fmt.Errorf("failed to check if crew member exists: %w", err)
	}

	if !activeCrew {
		return res, failure.BadRequestFromString("crew member does not exist or is inactive") // nolint:wrapcheck
	}

	assigned, err := s.repo.Exist(ctx, PairFilter(eventID, crewID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for existing assignment")

		return res, fmt.Errorf("failed to check for existing assignment: %w", err)
	}

	if assigned {
		return res, failure.Conflict("crew member is already assigned to this event") // nolint:wrapcheck
	}

	req := dto.CreateBookingRequest{EventID: eventID, CrewID: crewID}
	booking := req.ToModel(user)

	if err = s.repo.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("crew member is already assigned to this event") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, booking.ID, eventID)
	s.publish(ctx, messageBookingAssigned, booking.ID, eventID, crewID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// ListForEvent returns every booking for the event in assignment order.
func (s *serviceImpl) ListForEvent(ctx context.Context, eventID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListForEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheBookingForEvent, eventID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldAssignedAt,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    eventID,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for event")

		return res, fmt.Errorf("failed to list bookings for event: %w", err)
	}

	res = make([]dto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event bookings to cache")
		}
	}()

	return res, nil
}

// Update patches salary, payment status or booking status. Setting the
// status to accepted or declined stamps the response time.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for update")

		return fmt.Errorf("failed to get booking for update: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Status == model.StatusAccepted || req.Status == model.StatusDeclined {
		updatedFields[model.FieldRespondedAt] = timezone.Now()
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id, booking.EventID)
	s.publish(ctx, messageBookingUpdated, booking.ID, booking.EventID, booking.CrewID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for delete")

		return fmt.Errorf("failed to get booking for delete: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id, booking.EventID)
	s.publish(ctx, messageBookingRemoved, booking.ID, booking.EventID, booking.CrewID)

	return nil
}

// DeleteByEvent removes every booking for the event. Used by the event
// lifecycle manager to cascade deletions; deleting an event with no
// bookings is a no-op.
func (s *serviceImpl) DeleteByEvent(ctx context.Context, eventID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.DeleteByEvent")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    eventID,
				Table:    model.TableName,
			},
		},
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete bookings for event")

		return fmt.Errorf("failed to delete bookings for event: %w", err)
	}

	s.invalidate(ctx, constant.Empty, eventID)

	return nil
}

// PairFilter matches the unique (event, crew) assignment pair.
func PairFilter(eventID, crewID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEventID,
				Operator: gDto.FilterOperatorEq,
				Value:    eventID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCrewID,
				Operator: gDto.FilterOperatorEq,
				Value:    crewID,
				Table:    model.TableName,
			},
		},
	}
}

func activeCrewFilter(crewID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    crewModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    crewID,
				Table:    crewModel.TableName,
			},
			gDto.Filter{
				Field:    crewModel.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    crewModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id, eventID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		if eventID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheBookingForEvent, eventID)); err != nil {
				log.Error().Err(err).Msg("failed to delete event bookings from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, messageType, bookingID, eventID, crewID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: bookingID,
			Value: bookingMessage{
				Type:      messageType,
				BookingID: bookingID,
				EventID:   eventID,
				CrewID:    crewID,
				At:        timezone.Format(timezone.Now(), constant.DateFormat),
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Bookings, message); err != nil {
			log.Error().Err(err).Str("type", messageType).Msg("failed to publish booking message")
		}
	}()
}
