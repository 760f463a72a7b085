package dto

import (
	"time"

	"prism/internal/domains/booking/model"
	"prism/internal/scheduling"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID      string `json:"room_id"      validate:"required,uuid"`
	EditorID    string `json:"editor_id"    validate:"omitempty,uuid"`
	CustomerID  string `json:"customer_id"  validate:"required,uuid"`
	ProjectID   string `json:"project_id"   validate:"required,uuid"`
	BookingDate string `json:"booking_date" validate:"required,calendarday"`
	FromTime    string `json:"from_time"    validate:"required,clock"`
	ToTime      string `json:"to_time"      validate:"required,clock"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
	Force       bool   `json:"force"`
}

func (c *CreateBookingRequest) Date() (time.Time, error) {
	return timezone.Parse(constant.CalendarDayFormat, c.BookingDate)
}

func (c *CreateBookingRequest) ToModel(user string, date time.Time) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		EditorID:    c.EditorID,
		CustomerID:  c.CustomerID,
		ProjectID:   c.ProjectID,
		BookingDate: date,
		FromTime:    c.FromTime,
		ToTime:      c.ToTime,
		Status:      constant.BookingStatusPlanning,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// CheckBookingRequest probes the calendar without writing anything.
type CheckBookingRequest struct {
	BookingID   string `json:"booking_id"   validate:"omitempty,uuid"`
	RoomID      string `json:"room_id"      validate:"required,uuid"`
	EditorID    string `json:"editor_id"    validate:"omitempty,uuid"`
	BookingDate string `json:"booking_date" validate:"required,calendarday"`
	FromTime    string `json:"from_time"    validate:"required,clock"`
	ToTime      string `json:"to_time"      validate:"required,clock"`
}

func (c *CheckBookingRequest) Date() (time.Time, error) {
	return timezone.Parse(constant.CalendarDayFormat, c.BookingDate)
}

type CheckBookingResponse struct {
	HasConflict bool                  `json:"has_conflict"`
	Conflicts   []scheduling.Conflict `json:"conflicts"`
}

// UpdateBookingRequest reschedules a booking. The service merges it over the
// stored row and re-runs the conflict check before writing.
type UpdateBookingRequest struct {
	RoomID      string `json:"room_id"      validate:"omitempty,uuid"`
	EditorID    string `json:"editor_id"    validate:"omitempty,uuid"`
	CustomerID  string `json:"customer_id"  validate:"omitempty,uuid"`
	ProjectID   string `json:"project_id"   validate:"omitempty,uuid"`
	BookingDate string `json:"booking_date" validate:"omitempty,calendarday"`
	FromTime    string `json:"from_time"    validate:"omitempty,clock"`
	ToTime      string `json:"to_time"      validate:"omitempty,clock"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
	Force       bool   `json:"force"`
}

type UpdateBookingStatusRequest struct {
	Status       string `json:"status"        validate:"required,oneof=planning tentative confirmed cancelled"`
	CancelReason string `json:"cancel_reason" validate:"omitempty,max=255"`
}

type BookingResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	EditorID     string `json:"editor_id,omitempty"`
	CustomerID   string `json:"customer_id"`
	ProjectID    string `json:"project_id"`
	BookingDate  string `json:"booking_date"`
	FromTime     string `json:"from_time"`
	ToTime       string `json:"to_time"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	CancelReason string `json:"cancel_reason,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.EditorID = model.EditorID
	r.CustomerID = model.CustomerID
	r.ProjectID = model.ProjectID
	r.BookingDate = timezone.Format(model.BookingDate, constant.CalendarDayFormat)
	r.FromTime = model.FromTime
	r.ToTime = model.ToTime
	r.Status = model.Status
	r.Notes = model.Notes
	r.CancelReason = model.CancelReason
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

// BookingEvent is the payload published on booking lifecycle changes.
type BookingEvent struct {
	Event       string `json:"event"`
	BookingID   string `json:"booking_id"`
	RoomID      string `json:"room_id"`
	EditorID    string `json:"editor_id,omitempty"`
	CustomerID  string `json:"customer_id"`
	ProjectID   string `json:"project_id"`
	BookingDate string `json:"booking_date"`
	FromTime    string `json:"from_time"`
	ToTime      string `json:"to_time"`
	Status      string `json:"status"`
	Actor       string `json:"actor"`
	OccurredAt  string `json:"occurred_at"`
}

func NewBookingEvent(event string, booking model.Booking, actor string) BookingEvent {
	return BookingEvent{
		Event:       event,
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		EditorID:    booking.EditorID,
		CustomerID:  booking.CustomerID,
		ProjectID:   booking.ProjectID,
		BookingDate: timezone.Format(booking.BookingDate, constant.CalendarDayFormat),
		FromTime:    booking.FromTime,
		ToTime:      booking.ToTime,
		Status:      booking.Status,
		Actor:       actor,
		OccurredAt:  timezone.Format(timezone.Now(), time.RFC3339),
	}
}
