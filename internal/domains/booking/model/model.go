package model

import (
	"time"

	"prism/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldEditorID     = "editor_id"
	FieldCustomerID   = "customer_id"
	FieldProjectID    = "project_id"
	FieldBookingDate  = "booking_date"
	FieldFromTime     = "from_time"
	FieldToTime       = "to_time"
	FieldStatus       = "status"
	FieldNotes        = "notes"
	FieldCancelReason = "cancel_reason"
)

type Booking struct {
	ID           string    `db:"id"`
	RoomID       string    `db:"room_id"`
	EditorID     string    `db:"editor_id"`
	CustomerID   string    `db:"customer_id"`
	ProjectID    string    `db:"project_id"`
	BookingDate  time.Time `db:"booking_date"`
	FromTime     string    `db:"from_time"`
	ToTime       string    `db:"to_time"`
	Status       string    `db:"status"`
	Notes        string    `db:"notes"`
	CancelReason string    `db:"cancel_reason"`
	model.Metadata
}
