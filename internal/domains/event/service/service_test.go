package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studioops/config"
	kafkaMocks "studioops/infras/kafka/mocks"
	"studioops/infras/otel/mocks"
	assignmentMocks "studioops/internal/domains/assignment/mocks"
	assignmentModel "studioops/internal/domains/assignment/model"
	bookingMocks "studioops/internal/domains/booking/service/mocks"
	eventMocks "studioops/internal/domains/event/mocks"
	"studioops/internal/domains/event/model"
	"studioops/internal/domains/event/model/dto"
	"studioops/internal/domains/event/service"
	inquiryDto "studioops/internal/domains/inquiry/model/dto"
	inquiryMocks "studioops/internal/domains/inquiry/service/mocks"
	cacheMocks "studioops/shared/cache/mocks"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/shared/failure"
	gModel "studioops/shared/model"
	"studioops/shared/timezone"
)

type eventFixture struct {
	repo        *eventMocks.MockEvent
	bookings    *bookingMocks.MockBooking
	assignments *assignmentMocks.MockManager
	inquiries   *inquiryMocks.MockInquiry
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
	svc         service.Event
}

func newEventFixture(ctrl *gomock.Controller) *eventFixture {
	f := &eventFixture{
		repo:        eventMocks.NewMockEvent(ctrl),
		bookings:    bookingMocks.NewMockBooking(ctrl),
		assignments: assignmentMocks.NewMockManager(ctrl),
		inquiries:   inquiryMocks.NewMockInquiry(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.bookings, f.assignments, f.inquiries, cfg, f.cache, mocks.NewOtel(), f.kafka)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func persistedEvent() model.Event {
	return model.Event{
		ID:     "event-1",
		Title:  "Sunset Shoot",
		Date:   "2026-06-01",
		Time:   "17:00",
		Status: model.StatusScheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestEventService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	req := dto.CreateEventRequest{
		Title: "Sunset Shoot",
		Date:  "2026-06-01",
		Time:  "17:00",
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := f.svc.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "Sunset Shoot", res.Event.Title)
	assert.Equal(t, model.StatusScheduled, res.Event.Status, "status defaults to scheduled")
	assert.NotEmpty(t, res.Event.ID)
	assert.Empty(t, res.Assignments)
}

func TestEventService_CreateWithDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	draftID := "11111111-2222-3333-4444-555555555555"

	reconciler := assignmentMocks.NewMockReconciler(ctrl)
	f.assignments.EXPECT().Draft(draftID).Return(reconciler, nil)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	results := []assignmentModel.CommitResult{
		{CrewID: "crew-a", OK: true},
		{CrewID: "crew-b", OK: false, Error: "crew member is already assigned to this event"},
	}

	f.assignments.EXPECT().
		Commit(gomock.Any(), draftID, gomock.Any()).
		Return(results, nil)

	req := dto.CreateEventRequest{
		Title:   "Sunset Shoot",
		Date:    "2026-06-01",
		Time:    "17:00",
		DraftID: draftID,
	}

	res, err := f.svc.Create(context.Background(), req)

	assert.NoError(t, err, "item failures ride along, they never fail the create")
	require.Len(t, res.Assignments, 2)
	assert.True(t, res.Assignments[0].OK)
	assert.False(t, res.Assignments[1].OK)
}

func TestEventService_CreateWithUnknownDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	draftID := "11111111-2222-3333-4444-555555555555"

	// the draft lookup runs before the insert so nothing is persisted
	f.assignments.EXPECT().Draft(draftID).Return(nil, failure.NotFound("draft session not found"))

	req := dto.CreateEventRequest{
		Title:   "Sunset Shoot",
		Date:    "2026-06-01",
		Time:    "17:00",
		DraftID: draftID,
	}

	_, err := f.svc.Create(context.Background(), req)
	assert.True(t, failure.IsNotFound(err))
}

func TestEventService_CreateRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	req := dto.CreateEventRequest{
		Title: "Sunset Shoot",
		Date:  "2026-06-01",
		Time:  "17:00",
	}

	_, err := f.svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestEventService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateEventRequest
		setupMock func(f *eventFixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateEventRequest{},
			setupMock: func(f *eventFixture) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "event not found",
			req:  dto.UpdateEventRequest{Status: model.StatusCompleted},
			setupMock: func(f *eventFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "successful status update",
			req:  dto.UpdateEventRequest{Status: model.StatusCompleted},
			setupMock: func(f *eventFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(persistedEvent(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req:  dto.UpdateEventRequest{Title: "Golden Hour Shoot"},
			setupMock: func(f *eventFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(persistedEvent(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newEventFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Update(ctx, tt.req, "event-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *eventFixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "delete cascades to bookings first",
			setupMock: func(f *eventFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(persistedEvent(), nil)

				gomock.InOrder(
					f.bookings.EXPECT().DeleteByEvent(gomock.Any(), "event-1").Return(nil),
					f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			wantErr: false,
		},
		{
			name: "event not found",
			setupMock: func(f *eventFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "cascade failure aborts the event delete",
			setupMock: func(f *eventFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(persistedEvent(), nil)
				f.bookings.EXPECT().DeleteByEvent(gomock.Any(), "event-1").Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newEventFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "event-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_LinkInquiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	inquiry := inquiryDto.InquiryResponse{
		ID:    "inquiry-1",
		Name:  "Dana Customer",
		Email: "dana@example.com",
	}

	f.inquiries.EXPECT().Get(gomock.Any(), "inquiry-1").Return(inquiry, nil)

	req := dto.LinkInquiryRequest{
		InquiryID: "inquiry-1",
		Draft: dto.EventDraft{
			Title:         "Sunset Shoot",
			Date:          "2026-06-01",
			Time:          "17:00",
			Location:      "Pier 7",
			CustomerName:  "Old Name",
			CustomerEmail: "old@example.com",
			CustomerPhone: "+15550100",
			Notes:         "bring reflectors",
		},
	}

	res, err := f.svc.LinkInquiry(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "Dana Customer", res.CustomerName)
	assert.Equal(t, "dana@example.com", res.CustomerEmail)
	assert.Equal(t, "inquiry-1", res.InquiryID)

	// everything outside the projected contact fields survives untouched
	assert.Equal(t, "Sunset Shoot", res.Title)
	assert.Equal(t, "Pier 7", res.Location)
	assert.Equal(t, "+15550100", res.CustomerPhone)
	assert.Equal(t, "bring reflectors", res.Notes)
}

func TestEventService_LinkInquiryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	f.inquiries.EXPECT().
		Get(gomock.Any(), "nonexistent-id").
		Return(inquiryDto.InquiryResponse{}, failure.NotFound("inquiry not found"))

	req := dto.LinkInquiryRequest{InquiryID: "nonexistent-id"}

	_, err := f.svc.LinkInquiry(context.Background(), req)
	assert.True(t, failure.IsNotFound(err))
}

func TestEventService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *eventFixture)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(f *eventFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(f *eventFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(persistedEvent(), nil)
			},
			wantErr: false,
			wantID:  "event-1",
		},
		{
			name: "event not found",
			setupMock: func(f *eventFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newEventFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "event-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, res.ID)
				}
			}
		})
	}
}

func TestEventService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Event{persistedEvent()}, nil)

	params := gDto.QueryParams{Limit: 10, Page: 1}

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "event-1", res.Events[0].ID)
}
