package dto

import (
	"github.com/google/uuid"

	assignmentModel "studioops/internal/domains/assignment/model"
	"studioops/internal/domains/event/model"
	"studioops/shared"
	gDto "studioops/shared/dto"
	gModel "studioops/shared/model"
	"studioops/shared/timezone"
)

type CreateEventRequest struct {
	Title         string `json:"title"          validate:"required,max=150"`
	Date          string `json:"event_date"     validate:"required,datetime=2006-01-02"`
	Time          string `json:"event_time"     validate:"required,datetime=15:04"`
	Status        string `json:"status"         validate:"omitempty,oneof=scheduled in-progress completed edited sent-to-customer cancelled"`
	Location      string `json:"location"       validate:"omitempty,max=200"`
	Duration      string `json:"duration"       validate:"omitempty,max=50"`
	CustomerName  string `json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=30"`
	PackageType   string `json:"package_type"   validate:"omitempty,max=100"`
	Notes         string `json:"notes"`
	InquiryID     string `json:"inquiry_id"     validate:"omitempty,uuid"`

	// DraftID names an assignment draft session to commit against the
	// created event. Empty means the event starts with no crew.
	DraftID string `json:"draft_id" validate:"omitempty,uuid"`
}

func (c *CreateEventRequest) ToModel(user string) model.Event {
	event := model.Event{
		ID:            uuid.NewString(),
		Title:         c.Title,
		Date:          c.Date,
		Time:          c.Time,
		Status:        c.Status,
		Location:      c.Location,
		Duration:      c.Duration,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		PackageType:   c.PackageType,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if event.Status == "" {
		event.Status = model.StatusScheduled
	}

	if c.InquiryID != "" {
		event.InquiryID = &c.InquiryID
	}

	return event
}

type UpdateEventRequest struct {
	Title         string `db:"title"          json:"title"          validate:"omitempty,max=150"`
	Date          string `db:"event_date"     json:"event_date"     validate:"omitempty,datetime=2006-01-02"`
	Time          string `db:"event_time"     json:"event_time"     validate:"omitempty,datetime=15:04"`
	Status        string `db:"status"         json:"status"         validate:"omitempty,oneof=scheduled in-progress completed edited sent-to-customer cancelled"`
	Location      string `db:"location"       json:"location"       validate:"omitempty,max=200"`
	Duration      string `db:"duration"       json:"duration"       validate:"omitempty,max=50"`
	CustomerName  string `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `db:"customer_phone" json:"customer_phone" validate:"omitempty,max=30"`
	PackageType   string `db:"package_type"   json:"package_type"   validate:"omitempty,max=100"`
	Notes         string `db:"notes"          json:"notes"          validate:"omitempty"`
}

type EventResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"event_date"`
	Time          string `json:"event_time"`
	Status        string `json:"status"`
	Location      string `json:"location,omitempty"`
	Duration      string `json:"duration,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	PackageType   string `json:"package_type,omitempty"`
	Notes         string `json:"notes,omitempty"`
	InquiryID     string `json:"inquiry_id,omitempty"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Title = model.Title
	r.Date = model.Date
	r.Time = model.Time
	r.Status = model.Status
	r.Location = model.Location
	r.Duration = model.Duration
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.PackageType = model.PackageType
	r.Notes = model.Notes

	if model.InquiryID != nil {
		r.InquiryID = *model.InquiryID
	}

	r.Metadata.FromModel(model.Metadata)
}

// CreateEventResponse carries the persisted event plus the per-crew
// outcome of committing the draft session, when one was named.
type CreateEventResponse struct {
	Event       EventResponse                  `json:"event"`
	Assignments []assignmentModel.CommitResult `json:"assignments,omitempty"`
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}

// EventDraft is the client-side, not-yet-persisted projection of an event
// used by the inquiry linker. It round-trips through the API unchanged
// except for the fields the linker touches.
type EventDraft struct {
	Title         string `json:"title"`
	Date          string `json:"event_date"`
	Time          string `json:"event_time"`
	Status        string `json:"status"`
	Location      string `json:"location"`
	Duration      string `json:"duration"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	PackageType   string `json:"package_type"`
	Notes         string `json:"notes"`
	InquiryID     string `json:"inquiry_id"`
}

// ClearInquiry detaches the draft from its inquiry: the two projected
// contact fields and the link are reset, nothing else changes.
func (d *EventDraft) ClearInquiry() {
	d.CustomerName = ""
	d.CustomerEmail = ""
	d.InquiryID = ""
}

type LinkInquiryRequest struct {
	InquiryID string     `json:"inquiry_id" validate:"required"`
	Draft     EventDraft `json:"draft"`
}
