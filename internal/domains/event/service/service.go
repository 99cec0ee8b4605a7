package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"studioops/config"
	"studioops/infras/kafka"
	"studioops/infras/otel"
	assignmentService "studioops/internal/domains/assignment/service"
	bookingService "studioops/internal/domains/booking/service"
	"studioops/internal/domains/event/model"
	"studioops/internal/domains/event/model/dto"
	"studioops/internal/domains/event/repository"
	inquiryService "studioops/internal/domains/inquiry/service"
	"studioops/shared"
	"studioops/shared/cache"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/shared/failure"
	"studioops/shared/timezone"
)

const (
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:gets"
)

const (
	messageEventCreated = "event.created"
	messageEventUpdated = "event.updated"
	messageEventDeleted = "event.deleted"
)

type eventMessage struct {
	Type    string `json:"type"`
	EventID string `json:"event_id"`
	Status  string `json:"status"`
	At      string `json:"at"`
}

// Event is the event lifecycle manager. Creating an event can commit an
// assignment draft session in the same call; deleting one cascades to
// its bookings.
type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.CreateEventResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
	LinkInquiry(ctx context.Context, req dto.LinkInquiryRequest) (dto.EventDraft, error)
}

type serviceImpl struct {
	repo        repository.Event
	bookings    bookingService.Booking
	assignments assignmentService.Manager
	inquiries   inquiryService.Inquiry
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(repo repository.Event, bookings bookingService.Booking, assignments assignmentService.Manager, inquiries inquiryService.Inquiry, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Event {
	return &serviceImpl{
		repo:        repo,
		bookings:    bookings,
		assignments: assignments,
		inquiries:   inquiries,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

// Create persists the event, then commits the named draft session
// against it. The event save is never rolled back for booking failures;
// per-item outcomes ride along in the response.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.CreateEventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.DraftID != constant.Empty {
		if _, err = s.assignments.Draft(req.DraftID); err != nil {
			return res, err
		}
	}

	event := req.ToModel(user)

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	s.invalidate(ctx, event.ID)
	s.publish(ctx, messageEventCreated, event.ID, event.Status)

	res.Event.FromModel(event)

	if req.DraftID != constant.Empty {
		results, commitErr := s.assignments.Commit(ctx, req.DraftID, event.ID)
		if commitErr != nil {
			log.Error().Err(commitErr).Str("draft_id", req.DraftID).Msg("failed to commit draft session")

			return res, commitErr
		}

		res.Assignments = results
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEvent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.NotFound("event not found") // nolint:wrapcheck
	}

	res.FromModel(event)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Update")
	defer scope.End()

	if req == (dto.UpdateEventRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	event, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event for update")

		return fmt.Errorf("failed to get event for update: %w", err)
	}

	if event.ID == constant.Empty {
		return failure.NotFound("event not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	status := event.Status
	if req.Status != constant.Empty {
		status = req.Status
	}

	s.invalidate(ctx, id)
	s.publish(ctx, messageEventUpdated, id, status)

	return nil
}

// Delete removes the event and every booking attached to it, so crew
// availability never carries assignments of a dead event.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	event, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event for delete")

		return fmt.Errorf("failed to get event for delete: %w", err)
	}

	if event.ID == constant.Empty {
		return failure.NotFound("event not found") // nolint:wrapcheck
	}

	if err := s.bookings.DeleteByEvent(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to cascade delete bookings")

		return fmt.Errorf("failed to cascade delete bookings: %w", err)
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, messageEventDeleted, id, event.Status)

	return nil
}

// LinkInquiry projects an inquiry's contact details onto the draft:
// customer name and email are overwritten, everything else is returned
// untouched. The inquiry itself is never written to.
func (s *serviceImpl) LinkInquiry(ctx context.Context, req dto.LinkInquiryRequest) (res dto.EventDraft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.LinkInquiry")
	defer scope.End()
	defer scope.TraceIfError(err)

	inquiry, err := s.inquiries.Get(ctx, req.InquiryID)
	if err != nil {
		return res, err
	}

	res = req.Draft
	res.ClearInquiry()
	res.CustomerName = inquiry.Name
	res.CustomerEmail = inquiry.Email
	res.InquiryID = inquiry.ID

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete event from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, messageType, eventID, status string) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: eventID,
			Value: eventMessage{
				Type:    messageType,
				EventID: eventID,
				Status:  status,
				At:      timezone.Format(timezone.Now(), constant.DateFormat),
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Events, message); err != nil {
			log.Error().Err(err).Str("type", messageType).Msg("failed to publish event message")
		}
	}()
}
