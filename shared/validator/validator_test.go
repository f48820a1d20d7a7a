package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type guestStruct struct {
	Name    string `json:"name"     validate:"required,notblank,max=100"`
	Email   string `json:"email"    validate:"omitempty,email"`
	CheckIn string `json:"checkIn"  validate:"required,isodate"`
	Nights  int    `json:"nights"   validate:"gte=0,lte=30"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        guestStruct
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        guestStruct{Name: "Jane Doe", Email: "jane@example.com", CheckIn: "2024-06-01", Nights: 3},
			expectError: false,
		},
		{
			name:        "missing required name",
			data:        guestStruct{CheckIn: "2024-06-01"},
			expectError: true,
		},
		{
			name:        "blank name",
			data:        guestStruct{Name: "   ", CheckIn: "2024-06-01"},
			expectError: true,
		},
		{
			name:        "invalid email",
			data:        guestStruct{Name: "Jane", Email: "jane-at-example", CheckIn: "2024-06-01"},
			expectError: true,
		},
		{
			name:        "invalid date",
			data:        guestStruct{Name: "Jane", CheckIn: "06/01/2024"},
			expectError: true,
		},
		{
			name:        "nights out of range",
			data:        guestStruct{Name: "Jane", CheckIn: "2024-06-01", Nights: 45},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid iso date", field: "2024-05-01", tag: "isodate", expectError: false},
		{name: "invalid iso date", field: "2024-13-01", tag: "isodate", expectError: true},
		{name: "positive room number", field: 101, tag: "gt=0", expectError: false},
		{name: "zero room number", field: 0, tag: "gt=0", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Jane Doe","email":"jane@example.com","checkIn":"2024-06-01","nights":2}`,
			expectError: false,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"Jane Doe","email":"nope","checkIn":"2024-06-01"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Jane Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestStruct
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&guestStruct{CheckIn: "2024-06-01"})

	assert.EqualError(t, err, "name is required")

	err = validator.ValidateStruct(&guestStruct{Name: "Jane", CheckIn: "soon"})

	assert.EqualError(t, err, "checkIn must be a valid date (YYYY-MM-DD)")
}
