package model

import (
	"studioops/shared/model"
)

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID      = "id"
	FieldCaseID  = "case_id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldStatus  = "status"
)

// Inquiry is owned by the inquiry system; this service only reads it to
// link contact details into event drafts.
type Inquiry struct {
	ID      string `db:"id"`
	CaseID  string `db:"case_id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Status  string `db:"status"`
	model.Metadata
}
