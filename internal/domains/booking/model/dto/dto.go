package dto

import (
	"github.com/google/uuid"

	"studioops/internal/domains/booking/model"
	"studioops/shared"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	gModel "studioops/shared/model"
	"studioops/shared/timezone"
)

type CreateBookingRequest struct {
	EventID string `json:"event_id" validate:"required"`
	CrewID  string `json:"crew_id"  validate:"required"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		EventID:       c.EventID,
		CrewID:        c.CrewID,
		Status:        model.StatusPending,
		AssignedAt:    timezone.Now(),
		Salary:        constant.Empty,
		PaymentStatus: model.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	Salary        string `db:"salary"         json:"salary"         validate:"omitempty,max=50"`
	PaymentStatus string `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=pending completed"`
	Status        string `db:"status"         json:"status"         validate:"omitempty,oneof=pending accepted declined in_progress completed uploaded"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	CrewID        string `json:"crew_id"`
	CrewName      string `json:"crew_name"`
	Status        string `json:"status"`
	AssignedAt    string `json:"assigned_at"`
	RespondedAt   string `json:"responded_at,omitempty"`
	Salary        string `json:"salary"`
	PaymentStatus string `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.CrewID = model.CrewID
	r.CrewName = model.CrewName
	r.Status = model.Status
	r.AssignedAt = timezone.Format(model.AssignedAt, constant.DateFormat)
	r.Salary = model.Salary
	r.PaymentStatus = model.PaymentStatus

	if model.RespondedAt != nil {
		r.RespondedAt = timezone.Format(*model.RespondedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
