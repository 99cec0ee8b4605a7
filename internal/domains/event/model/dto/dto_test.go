package dto_test

import (
	"testing"

	"studioops/internal/domains/event/model"
	"studioops/internal/domains/event/model/dto"
	gModel "studioops/shared/model"
	"studioops/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateEventRequest_ToModel(t *testing.T) {
	req := dto.CreateEventRequest{
		Title:         "Sunset Shoot",
		Date:          "2026-06-01",
		Time:          "17:00",
		Location:      "Pier 7",
		CustomerName:  "Dana Customer",
		CustomerEmail: "dana@example.com",
	}

	userID := "test-user-id"
	event := req.ToModel(userID)

	assert.NotEmpty(t, event.ID, "expected ID to be generated")
	assert.Equal(t, req.Title, event.Title)
	assert.Equal(t, req.Date, event.Date)
	assert.Equal(t, req.Time, event.Time)
	assert.Equal(t, model.StatusScheduled, event.Status, "missing status defaults to scheduled")
	assert.Nil(t, event.InquiryID)
	assert.Equal(t, userID, event.CreatedBy)
	assert.Equal(t, userID, event.ModifiedBy)
	assert.False(t, event.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateEventRequest_ToModelKeepsExplicitValues(t *testing.T) {
	req := dto.CreateEventRequest{
		Title:     "Sunset Shoot",
		Date:      "2026-06-01",
		Time:      "17:00",
		Status:    model.StatusInProgress,
		InquiryID: "11111111-2222-3333-4444-555555555555",
	}

	event := req.ToModel("test-user-id")

	assert.Equal(t, model.StatusInProgress, event.Status)

	if assert.NotNil(t, event.InquiryID) {
		assert.Equal(t, req.InquiryID, *event.InquiryID)
	}
}

func TestEventResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	inquiryID := "inquiry-1"

	eventModel := model.Event{
		ID:        "event-1",
		Title:     "Sunset Shoot",
		Date:      "2026-06-01",
		Time:      "17:00",
		Status:    model.StatusScheduled,
		Location:  "Pier 7",
		InquiryID: &inquiryID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.EventResponse
	response.FromModel(eventModel)

	assert.Equal(t, eventModel.ID, response.ID)
	assert.Equal(t, eventModel.Title, response.Title)
	assert.Equal(t, eventModel.Status, response.Status)
	assert.Equal(t, eventModel.Location, response.Location)
	assert.Equal(t, inquiryID, response.InquiryID)
	assert.Equal(t, eventModel.CreatedBy, response.CreatedBy)
}

func TestEventDraft_ClearInquiry(t *testing.T) {
	draft := dto.EventDraft{
		Title:         "Sunset Shoot",
		Date:          "2026-06-01",
		Time:          "17:00",
		Location:      "Pier 7",
		CustomerName:  "Dana Customer",
		CustomerEmail: "dana@example.com",
		CustomerPhone: "+15550100",
		Notes:         "bring reflectors",
		InquiryID:     "inquiry-1",
	}

	draft.ClearInquiry()

	assert.Empty(t, draft.CustomerName)
	assert.Empty(t, draft.CustomerEmail)
	assert.Empty(t, draft.InquiryID)

	// only the projected contact fields and the link are reset
	assert.Equal(t, "Sunset Shoot", draft.Title)
	assert.Equal(t, "Pier 7", draft.Location)
	assert.Equal(t, "+15550100", draft.CustomerPhone)
	assert.Equal(t, "bring reflectors", draft.Notes)
}

func TestGetEventsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	events := []model.Event{
		{
			ID:     "event-1",
			Title:  "Sunset Shoot",
			Date:   "2026-06-01",
			Time:   "17:00",
			Status: model.StatusScheduled,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
		{
			ID:     "event-2",
			Title:  "Studio Session",
			Date:   "2026-06-02",
			Time:   "10:00",
			Status: model.StatusCompleted,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
	}

	var response dto.GetEventsResponse
	response.FromModels(events, 15, 10)

	assert.Equal(t, 15, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Events, 2)
	assert.Equal(t, "event-1", response.Events[0].ID)
	assert.Equal(t, "event-2", response.Events[1].ID)
}
