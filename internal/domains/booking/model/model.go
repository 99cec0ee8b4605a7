package model

import (
	"fmt"
	"time"

	crewModel "studioops/internal/domains/crew/model"
	"studioops/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldEventID       = "event_id"
	FieldCrewID        = "crew_id"
	FieldStatus        = "status"
	FieldAssignedAt    = "assigned_at"
	FieldRespondedAt   = "responded_at"
	FieldSalary        = "salary"
	FieldPaymentStatus = "payment_status"
)

const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusDeclined   = "declined"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusUploaded   = "uploaded"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Booking associates one crew member with one persisted event. At most one
// booking may exist per (event_id, crew_id) pair.
type Booking struct {
	ID            string     `db:"id"`
	EventID       string     `db:"event_id"`
	CrewID        string     `db:"crew_id"`
	Status        string     `db:"status"`
	AssignedAt    time.Time  `db:"assigned_at"`
	RespondedAt   *time.Time `db:"responded_at"`
	Salary        string     `db:"salary"`
	PaymentStatus string     `db:"payment_status"`
	CrewName      string     `db:"crew_name" table:"crew_members" column:"name"`
	model.Metadata
}

// GetJoinQuery joins the crew roster so listings carry the member's name.
func (Booking) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s",
		crewModel.TableName,
		crewModel.TableName, crewModel.FieldID,
		TableName, FieldCrewID,
	)
}
