package dto_test

import (
	"testing"

	"studioops/internal/domains/booking/model"
	"studioops/internal/domains/booking/model/dto"
	gModel "studioops/shared/model"
	"studioops/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		EventID: "event-1",
		CrewID:  "crew-1",
	}

	userID := "test-user-id"
	booking := req.ToModel(userID)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.EventID, booking.EventID)
	assert.Equal(t, req.CrewID, booking.CrewID)
	assert.Equal(t, model.StatusPending, booking.Status, "new bookings start pending")
	assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
	assert.Empty(t, booking.Salary, "salary starts unset")
	assert.Nil(t, booking.RespondedAt, "no response before the crew reacts")
	assert.False(t, booking.AssignedAt.IsZero(), "expected AssignedAt to be set")
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	responded := now

	bookingModel := model.Booking{
		ID:            "booking-1",
		EventID:       "event-1",
		CrewID:        "crew-1",
		CrewName:      "Alice",
		Status:        model.StatusAccepted,
		AssignedAt:    now,
		RespondedAt:   &responded,
		Salary:        "1500000",
		PaymentStatus: model.PaymentStatusCompleted,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.EventID, response.EventID)
	assert.Equal(t, bookingModel.CrewID, response.CrewID)
	assert.Equal(t, bookingModel.CrewName, response.CrewName)
	assert.Equal(t, bookingModel.Status, response.Status)
	assert.Equal(t, bookingModel.Salary, response.Salary)
	assert.Equal(t, bookingModel.PaymentStatus, response.PaymentStatus)
	assert.NotEmpty(t, response.AssignedAt)
	assert.NotEmpty(t, response.RespondedAt)
}

func TestBookingResponse_FromModelWithoutResponse(t *testing.T) {
	bookingModel := model.Booking{
		ID:         "booking-1",
		EventID:    "event-1",
		CrewID:     "crew-1",
		Status:     model.StatusPending,
		AssignedAt: timezone.Now(),
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Empty(t, response.RespondedAt)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	bookings := []model.Booking{
		{ID: "booking-1", EventID: "event-1", CrewID: "crew-1", AssignedAt: now},
		{ID: "booking-2", EventID: "event-1", CrewID: "crew-2", AssignedAt: now},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 2, 10)

	assert.Equal(t, 2, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Bookings, 2)
}
