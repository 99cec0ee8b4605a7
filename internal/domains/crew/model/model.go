package model

import (
	"studioops/shared/model"
)

const (
	TableName  = "crew_members"
	EntityName = "crew"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldRole     = "role"
	FieldIsActive = "is_active"
)

type Crew struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Role     string `db:"role"`
	IsActive bool   `db:"is_active"`
	model.Metadata
}
