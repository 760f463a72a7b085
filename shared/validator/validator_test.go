package validator_test

import (
	"strings"
	"testing"

	"prism/shared/validator"
)

type slotTestStruct struct {
	RoomID      string `validate:"required,uuid"            json:"room_id"`
	BookingDate string `validate:"required,calendarday"     json:"booking_date"`
	FromTime    string `validate:"required,clock"           json:"from_time"`
	ToTime      string `validate:"required,clock"           json:"to_time"`
	Status      string `validate:"oneof=planning tentative confirmed cancelled" json:"status"`
}

func validSlot() *slotTestStruct {
	return &slotTestStruct{
		RoomID:      "5f5e1a52-58fd-4a5a-97c5-8a97b31801a4",
		BookingDate: "2025-12-10",
		FromTime:    "09:00",
		ToTime:      "12:00",
		Status:      "confirmed",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(s *slotTestStruct)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(s *slotTestStruct) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(s *slotTestStruct) { s.RoomID = "" },
			expectError: true,
		},
		{
			name:        "malformed uuid",
			mutate:      func(s *slotTestStruct) { s.RoomID = "not-a-uuid" },
			expectError: true,
		},
		{
			name:        "date in wrong layout",
			mutate:      func(s *slotTestStruct) { s.BookingDate = "10-12-2025" },
			expectError: true,
		},
		{
			name:        "date with impossible month",
			mutate:      func(s *slotTestStruct) { s.BookingDate = "2025-13-10" },
			expectError: true,
		},
		{
			name:        "clock with seconds",
			mutate:      func(s *slotTestStruct) { s.FromTime = "09:00:00" },
			expectError: true,
		},
		{
			name:        "clock past midnight",
			mutate:      func(s *slotTestStruct) { s.ToTime = "25:00" },
			expectError: true,
		},
		{
			name:        "unknown status",
			mutate:      func(s *slotTestStruct) { s.Status = "archived" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validSlot()
			tt.mutate(data)

			err := validator.ValidateStruct(data)

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
			name:        "valid calendar day",
			field:       "2025-12-25",
			tag:         "calendarday",
			expectError: false,
		},
		{
			name:        "calendar day with slashes",
			field:       "2025/12/25",
			tag:         "calendarday",
			expectError: true,
		},
		{
			name:        "valid clock",
			field:       "23:59",
			tag:         "clock",
			expectError: false,
		},
		{
			name:        "clock with minutes out of range",
			field:       "09:75",
			tag:         "clock",
			expectError: true,
		},
		{
			name:        "empty passes the empty tag",
			field:       "",
			tag:         "empty",
			expectError: false,
		},
		{
			name:        "non-empty fails the empty tag",
			field:       "something",
			tag:         "empty",
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

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"room_id":"5f5e1a52-58fd-4a5a-97c5-8a97b31801a4","booking_date":"2025-12-10","from_time":"09:00","to_time":"12:00","status":"tentative"}`,
			expectError: false,
		},
		{
			name:        "valid JSON failing validation",
			jsonBody:    `{"room_id":"5f5e1a52-58fd-4a5a-97c5-8a97b31801a4","booking_date":"tomorrow","from_time":"09:00","to_time":"12:00","status":"tentative"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"room_id":}`,
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
			reader := strings.NewReader(tt.jsonBody)
			var data slotTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
