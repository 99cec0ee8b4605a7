package model

import (
	"studioops/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"
)

const (
	FieldID            = "id"
	FieldTitle         = "title"
	FieldDate          = "event_date"
	FieldTime          = "event_time"
	FieldStatus        = "status"
	FieldLocation      = "location"
	FieldDuration      = "duration"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldPackageType   = "package_type"
	FieldNotes         = "notes"
	FieldInquiryID     = "inquiry_id"
)

const (
	StatusScheduled      = "scheduled"
	StatusInProgress     = "in-progress"
	StatusCompleted      = "completed"
	StatusEdited         = "edited"
	StatusSentToCustomer = "sent-to-customer"
	StatusCancelled      = "cancelled"
)

type Event struct {
	ID            string  `db:"id"`
	Title         string  `db:"title"`
	Date          string  `db:"event_date"`
	Time          string  `db:"event_time"`
	Status        string  `db:"status"`
	Location      string  `db:"location"`
	Duration      string  `db:"duration"`
	CustomerName  string  `db:"customer_name"`
	CustomerEmail string  `db:"customer_email"`
	CustomerPhone string  `db:"customer_phone"`
	PackageType   string  `db:"package_type"`
	Notes         string  `db:"notes"`
	InquiryID     *string `db:"inquiry_id"`
	model.Metadata
}
