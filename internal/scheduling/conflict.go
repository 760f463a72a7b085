// Package scheduling decides whether a proposed booking collides with the
// bookings and editor leaves already on the calendar. It is a pure in-memory
// check over snapshots supplied by the caller: it never reads storage and it
// never blocks anything itself. Whether a reported conflict stops the booking
// is the caller's policy.
package scheduling

import (
	"errors"
	"fmt"
	"time"

	"prism/shared/constant"
)

var (
	// ErrInvalidTimeRange is returned when a candidate's from-time is not
	// strictly before its to-time. Zero-duration bookings are invalid input,
	// not a conflict.
	ErrInvalidTimeRange = errors.New("from-time must be before to-time")
)

// ClockTime is a time of day expressed as minutes since midnight.
// Bookings are same-day only, so minutes within one day is all we need.
type ClockTime int

// ParseClock parses an "HH:MM" string into a ClockTime.
func ParseClock(value string) (ClockTime, error) {
	parsed, err := time.Parse(constant.ClockFormat, value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse clock time %q: %w", value, err)
	}

	return ClockTime(parsed.Hour()*60 + parsed.Minute()), nil
}

// String formats the ClockTime back to "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

type ConflictKind string

const (
	KindRoomDoubleBooking   ConflictKind = "room-double-booking"
	KindEditorDoubleBooking ConflictKind = "editor-double-booking"
	KindEditorOnLeave       ConflictKind = "editor-on-leave"
)

// Booking is the slice of a booking the checker cares about. EditorID may be
// empty: a booking with no editor assigned only competes for the room.
type Booking struct {
	ID        string
	RoomID    string
	EditorID  string
	Date      time.Time
	From      ClockTime
	To        ClockTime
	Cancelled bool
}

// Leave is an inclusive calendar-day range during which an editor is away.
type Leave struct {
	ID       string
	EditorID string
	FromDate time.Time
	ToDate   time.Time
}

// Conflict names one existing entity the candidate collides with. BookingID
// is set for double bookings, LeaveID for leave collisions.
type Conflict struct {
	Kind      ConflictKind `json:"kind"`
	BookingID string       `json:"booking_id,omitempty"`
	LeaveID   string       `json:"leave_id,omitempty"`
}

// CheckConflicts reports every collision between the candidate and the given
// bookings and leaves, so the caller can surface all of them at once instead
// of failing on the first. An empty slice means the candidate is clean.
//
// Two time ranges [a1,a2) and [b1,b2) collide iff a1 < b2 && b1 < a2: ranges
// that merely touch (one ends at 12:00, the next starts at 12:00) do not.
// Cancelled bookings and bookings on other days or other resources never
// count. Leave collisions ignore time of day: any booking on a leave day is
// a conflict.
func CheckConflicts(candidate Booking, roomBookings, editorBookings []Booking, leaves []Leave) ([]Conflict, error) {
	if candidate.From >= candidate.To {
		return nil, ErrInvalidTimeRange
	}

	conflicts := []Conflict{}

	for _, existing := range roomBookings {
		if !competes(candidate, existing) || existing.RoomID != candidate.RoomID {
			continue
		}

		if overlaps(candidate, existing) {
			conflicts = append(conflicts, Conflict{Kind: KindRoomDoubleBooking, BookingID: existing.ID})
		}
	}

	if candidate.EditorID == "" {
		return conflicts, nil
	}

	for _, existing := range editorBookings {
		if !competes(candidate, existing) || existing.EditorID != candidate.EditorID {
			continue
		}

		if overlaps(candidate, existing) {
			conflicts = append(conflicts, Conflict{Kind: KindEditorDoubleBooking, BookingID: existing.ID})
		}
	}

	for _, leave := range leaves {
		if leave.EditorID != candidate.EditorID {
			continue
		}

		if dateWithin(candidate.Date, leave.FromDate, leave.ToDate) {
			conflicts = append(conflicts, Conflict{Kind: KindEditorOnLeave, LeaveID: leave.ID})
		}
	}

	return conflicts, nil
}

// competes filters out bookings that can never conflict with the candidate:
// cancelled ones, the candidate itself (re-checks on update), and bookings on
// a different day.
func competes(candidate, existing Booking) bool {
	if existing.Cancelled {
		return false
	}

	if existing.ID != "" && existing.ID == candidate.ID {
		return false
	}

	return sameDay(candidate.Date, existing.Date)
}

func overlaps(a, b Booking) bool {
	return a.From < b.To && b.From < a.To
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// dateWithin reports whether day falls inside the inclusive [from, to] range,
// comparing calendar days only.
func dateWithin(day, from, to time.Time) bool {
	dy, dm, dd := day.Date()
	truncated := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)

	fy, fm, fd := from.Date()
	first := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)

	ty, tm, td := to.Date()
	last := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	return !truncated.Before(first) && !truncated.After(last)
}
