package validator_test

import (
	"strings"
	"testing"

	"studioops/shared/validator"
)

type createEventPayload struct {
	Title  string `json:"title"      validate:"required,max=150"`
	Date   string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"event_time" validate:"required,datetime=15:04"`
	Status string `json:"status"     validate:"omitempty,oneof=scheduled completed cancelled"`
	Email  string `json:"email"      validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        createEventPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: createEventPayload{
				Title: "Sunset Shoot",
				Date:  "2026-06-01",
				Time:  "17:00",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: createEventPayload{
				Date: "2026-06-01",
				Time: "17:00",
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: createEventPayload{
				Title: "Sunset Shoot",
				Date:  "06/01/2026",
				Time:  "17:00",
			},
			expectError: true,
		},
		{
			name: "malformed time",
			data: createEventPayload{
				Title: "Sunset Shoot",
				Date:  "2026-06-01",
				Time:  "5pm",
			},
			expectError: true,
		},
		{
			name: "status outside the enum",
			data: createEventPayload{
				Title:  "Sunset Shoot",
				Date:   "2026-06-01",
				Time:   "17:00",
				Status: "invalid",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: createEventPayload{
				Title: "Sunset Shoot",
				Date:  "2026-06-01",
				Time:  "17:00",
				Email: "not-an-email",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid uuid",
			field:       "550e8400-e29b-41d4-a716-446655440000",
			tag:         "uuid",
			expectError: false,
		},
		{
			name:        "invalid uuid",
			field:       "not-a-uuid",
			tag:         "uuid",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"title":"Sunset Shoot","event_date":"2026-06-01","event_time":"17:00"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"title":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"title":"Sunset Shoot"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload createEventPayload

			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}
