package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"prism/internal/scheduling"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func clock(t *testing.T, value string) scheduling.ClockTime {
	t.Helper()

	parsed, err := scheduling.ParseClock(value)
	assert.NoError(t, err)

	return parsed
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected scheduling.ClockTime
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:00", expected: 540},
		{name: "noon", input: "12:00", expected: 720},
		{name: "late evening", input: "23:59", expected: 1439},
		{name: "not a clock", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with seconds", input: "09:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scheduling.ParseClock(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
				assert.Equal(t, tt.input, result.String())
			}
		})
	}
}

func TestCheckConflicts_RoomOverlap(t *testing.T) {
	existing := scheduling.Booking{
		ID:     "existing",
		RoomID: "room-a",
		Date:   day("2025-12-16"),
		From:   clock(t, "09:00"),
		To:     clock(t, "12:00"),
	}

	tests := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{name: "overlapping tail", from: "11:00", to: "14:00", expected: 1},
		{name: "overlapping head", from: "07:00", to: "10:00", expected: 1},
		{name: "contained", from: "10:00", to: "11:00", expected: 1},
		{name: "containing", from: "08:00", to: "13:00", expected: 1},
		{name: "identical", from: "09:00", to: "12:00", expected: 1},
		{name: "touching end does not conflict", from: "12:00", to: "15:00", expected: 0},
		{name: "touching start does not conflict", from: "07:00", to: "09:00", expected: 0},
		{name: "disjoint after", from: "13:00", to: "15:00", expected: 0},
		{name: "disjoint before", from: "06:00", to: "08:00", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := scheduling.Booking{
				RoomID: "room-a",
				Date:   day("2025-12-16"),
				From:   clock(t, tt.from),
				To:     clock(t, tt.to),
			}

			conflicts, err := scheduling.CheckConflicts(candidate, []scheduling.Booking{existing}, nil, nil)

			assert.NoError(t, err)
			assert.Len(t, conflicts, tt.expected)

			if tt.expected > 0 {
				assert.Equal(t, scheduling.KindRoomDoubleBooking, conflicts[0].Kind)
				assert.Equal(t, "existing", conflicts[0].BookingID)
			}
		})
	}
}

func TestCheckConflicts_InvalidTimeRange(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{name: "zero duration", from: "10:00", to: "10:00"},
		{name: "reversed range", from: "14:00", to: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := scheduling.Booking{
				RoomID: "room-a",
				Date:   day("2025-12-16"),
				From:   clock(t, tt.from),
				To:     clock(t, tt.to),
			}

			conflicts, err := scheduling.CheckConflicts(candidate, nil, nil, nil)

			assert.ErrorIs(t, err, scheduling.ErrInvalidTimeRange)
			assert.Nil(t, conflicts)
		})
	}
}

func TestCheckConflicts_CancelledNeverConflicts(t *testing.T) {
	cancelled := scheduling.Booking{
		ID:        "cancelled",
		RoomID:    "room-a",
		Date:      day("2025-12-16"),
		From:      clock(t, "09:00"),
		To:        clock(t, "18:00"),
		Cancelled: true,
	}

	candidate := scheduling.Booking{
		RoomID: "room-a",
		Date:   day("2025-12-16"),
		From:   clock(t, "10:00"),
		To:     clock(t, "12:00"),
	}

	conflicts, err := scheduling.CheckConflicts(candidate, []scheduling.Booking{cancelled}, []scheduling.Booking{cancelled}, nil)

	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckConflicts_DifferentRoomOrDay(t *testing.T) {
	candidate := scheduling.Booking{
		RoomID:   "room-a",
		EditorID: "editor-1",
		Date:     day("2025-12-16"),
		From:     clock(t, "09:00"),
		To:       clock(t, "12:00"),
	}

	otherRoom := scheduling.Booking{
		ID:     "other-room",
		RoomID: "room-b",
		Date:   day("2025-12-16"),
		From:   clock(t, "09:00"),
		To:     clock(t, "12:00"),
	}

	otherDay := scheduling.Booking{
		ID:     "other-day",
		RoomID: "room-a",
		Date:   day("2025-12-17"),
		From:   clock(t, "09:00"),
		To:     clock(t, "12:00"),
	}

	conflicts, err := scheduling.CheckConflicts(candidate, []scheduling.Booking{otherRoom, otherDay}, nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckConflicts_EditorDoubleBooking(t *testing.T) {
	editorBusy := scheduling.Booking{
		ID:       "editor-busy",
		RoomID:   "room-b",
		EditorID: "editor-1",
		Date:     day("2025-12-16"),
		From:     clock(t, "10:00"),
		To:       clock(t, "13:00"),
	}

	candidate := scheduling.Booking{
		RoomID:   "room-a",
		EditorID: "editor-1",
		Date:     day("2025-12-16"),
		From:     clock(t, "09:00"),
		To:       clock(t, "11:00"),
	}

	conflicts, err := scheduling.CheckConflicts(candidate, nil, []scheduling.Booking{editorBusy}, nil)

	assert.NoError(t, err)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, scheduling.KindEditorDoubleBooking, conflicts[0].Kind)
	assert.Equal(t, "editor-busy", conflicts[0].BookingID)
}

func TestCheckConflicts_NoEditorSkipsEditorChecks(t *testing.T) {
	editorBusy := scheduling.Booking{
		ID:       "editor-busy",
		RoomID:   "room-b",
		EditorID: "editor-1",
		Date:     day("2025-12-16"),
		From:     clock(t, "09:00"),
		To:       clock(t, "12:00"),
	}

	leave := scheduling.Leave{
		ID:       "leave-1",
		EditorID: "editor-1",
		FromDate: day("2025-12-16"),
		ToDate:   day("2025-12-16"),
	}

	candidate := scheduling.Booking{
		RoomID: "room-a",
		Date:   day("2025-12-16"),
		From:   clock(t, "09:00"),
		To:     clock(t, "12:00"),
	}

	conflicts, err := scheduling.CheckConflicts(candidate, nil, []scheduling.Booking{editorBusy}, []scheduling.Leave{leave})

	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckConflicts_EditorOnLeave(t *testing.T) {
	leave := scheduling.Leave{
		ID:       "leave-1",
		EditorID: "editor-1",
		FromDate: day("2025-12-25"),
		ToDate:   day("2025-12-25"),
	}

	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{name: "booking on the leave day conflicts at any time", date: "2025-12-25", expected: 1},
		{name: "booking the day after does not conflict", date: "2025-12-26", expected: 0},
		{name: "booking the day before does not conflict", date: "2025-12-24", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := scheduling.Booking{
				RoomID:   "room-a",
				EditorID: "editor-1",
				Date:     day(tt.date),
				From:     clock(t, "22:00"),
				To:       clock(t, "23:00"),
			}

			conflicts, err := scheduling.CheckConflicts(candidate, nil, nil, []scheduling.Leave{leave})

			assert.NoError(t, err)
			assert.Len(t, conflicts, tt.expected)

			if tt.expected > 0 {
				assert.Equal(t, scheduling.KindEditorOnLeave, conflicts[0].Kind)
				assert.Equal(t, "leave-1", conflicts[0].LeaveID)
			}
		})
	}
}

func TestCheckConflicts_MultiDayLeaveRange(t *testing.T) {
	leave := scheduling.Leave{
		ID:       "leave-1",
		EditorID: "editor-1",
		FromDate: day("2025-12-20"),
		ToDate:   day("2025-12-22"),
	}

	for _, date := range []string{"2025-12-20", "2025-12-21", "2025-12-22"} {
		candidate := scheduling.Booking{
			RoomID:   "room-a",
			EditorID: "editor-1",
			Date:     day(date),
			From:     clock(t, "09:00"),
			To:       clock(t, "10:00"),
		}

		conflicts, err := scheduling.CheckConflicts(candidate, nil, nil, []scheduling.Leave{leave})

		assert.NoError(t, err)
		assert.Len(t, conflicts, 1, "date %s should conflict", date)
	}
}

func TestCheckConflicts_ReportsAllConflictsAtOnce(t *testing.T) {
	roomClash := scheduling.Booking{
		ID:     "room-clash",
		RoomID: "room-a",
		Date:   day("2025-12-16"),
		From:   clock(t, "09:00"),
		To:     clock(t, "12:00"),
	}

	editorClash := scheduling.Booking{
		ID:       "editor-clash",
		RoomID:   "room-b",
		EditorID: "editor-1",
		Date:     day("2025-12-16"),
		From:     clock(t, "10:00"),
		To:       clock(t, "13:00"),
	}

	leave := scheduling.Leave{
		ID:       "leave-1",
		EditorID: "editor-1",
		FromDate: day("2025-12-16"),
		ToDate:   day("2025-12-16"),
	}

	candidate := scheduling.Booking{
		RoomID:   "room-a",
		EditorID: "editor-1",
		Date:     day("2025-12-16"),
		From:     clock(t, "10:00"),
		To:       clock(t, "11:00"),
	}

	conflicts, err := scheduling.CheckConflicts(
		candidate,
		[]scheduling.Booking{roomClash},
		[]scheduling.Booking{editorClash},
		[]scheduling.Leave{leave},
	)

	assert.NoError(t, err)
	assert.Len(t, conflicts, 3)

	kinds := make([]scheduling.ConflictKind, 0, len(conflicts))
	for _, conflict := range conflicts {
		kinds = append(kinds, conflict.Kind)
	}

	assert.Contains(t, kinds, scheduling.KindRoomDoubleBooking)
	assert.Contains(t, kinds, scheduling.KindEditorDoubleBooking)
	assert.Contains(t, kinds, scheduling.KindEditorOnLeave)
}

func TestCheckConflicts_SkipsSelfOnRecheck(t *testing.T) {
	existing := scheduling.Booking{
		ID:     "booking-1",
		RoomID: "room-a",
		Date:   day("2025-12-16"),
		From:   clock(t, "09:00"),
		To:     clock(t, "12:00"),
	}

	// Re-checking an already-persisted booking against a snapshot that
	// contains it must not report the booking against itself.
	conflicts, err := scheduling.CheckConflicts(existing, []scheduling.Booking{existing}, nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}
