package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"prism/config"
	kafkaMocks "prism/infras/kafka/mocks"
	"prism/infras/otel/mocks"
	bookingMocks "prism/internal/domains/booking/mocks"
	"prism/internal/domains/booking/model"
	"prism/internal/domains/booking/model/dto"
	"prism/internal/domains/booking/service"
	leaveMocks "prism/internal/domains/leave/mocks"
	leaveModel "prism/internal/domains/leave/model"
	"prism/internal/scheduling"
	cacheMocks "prism/shared/cache/mocks"
	"prism/shared/constant"
	"prism/shared/failure"
)

const (
	testRoomID     = "5f5e1a52-58fd-4a5a-97c5-8a97b31801a4"
	testEditorID   = "8b8274dd-87f9-4adc-a0f0-9e3bca2ef92b"
	testCustomerID = "3c6b18f8-40cf-4f0e-a2ad-58e27e81e6c5"
	testProjectID  = "cbf85a70-7acd-4d31-976f-1a1cbab12fe2"
	testBookingID  = "1df3a7bc-a2f1-4ae7-a4cf-7b2ae56ad3b5"
)

type bookingMockSet struct {
	repo   *bookingMocks.MockBooking
	leaves *leaveMocks.MockLeave
	cache  *cacheMocks.MockRedisCache
	kafka  *kafkaMocks.MockClient
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := bookingMockSet{
		repo:   bookingMocks.NewMockBooking(ctrl),
		leaves: leaveMocks.NewMockLeave(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		kafka:  kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.leaves, cfg, set.cache, set.kafka, mocks.NewOtel())

	return svc, set
}

// allowAsyncSideEffects tolerates the cache invalidation and event publish
// that run on their own goroutines after a write.
func allowAsyncSideEffects(set bookingMockSet) {
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func storedBooking(id, fromTime, toTime string) model.Booking {
	return model.Booking{
		ID:          id,
		RoomID:      testRoomID,
		EditorID:    testEditorID,
		CustomerID:  testCustomerID,
		ProjectID:   testProjectID,
		BookingDate: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		FromTime:    fromTime,
		ToTime:      toTime,
		Status:      constant.BookingStatusConfirmed,
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		RoomID:      testRoomID,
		EditorID:    testEditorID,
		CustomerID:  testCustomerID,
		ProjectID:   testProjectID,
		BookingDate: "2025-12-10",
		FromTime:    "09:00",
		ToTime:      "12:00",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "clean calendar",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return(nil, nil)
				set.repo.EXPECT().
					GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.leaves.EXPECT().
					GetCovering(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				allowAsyncSideEffects(set)
			},
			wantErr: false,
		},
		{
			name: "room conflict rejected",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return([]model.Booking{storedBooking("existing", "11:00", "14:00")}, nil)
				set.repo.EXPECT().
					GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.leaves.EXPECT().
					GetCovering(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "touching slots do not conflict",
			req: dto.CreateBookingRequest{
				RoomID:      testRoomID,
				EditorID:    testEditorID,
				CustomerID:  testCustomerID,
				ProjectID:   testProjectID,
				BookingDate: "2025-12-10",
				FromTime:    "12:00",
				ToTime:      "15:00",
			},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return([]model.Booking{storedBooking("existing", "09:00", "12:00")}, nil)
				set.repo.EXPECT().
					GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
					Return([]model.Booking{storedBooking("existing", "09:00", "12:00")}, nil)
				set.leaves.EXPECT().
					GetCovering(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				allowAsyncSideEffects(set)
			},
			wantErr: false,
		},
		{
			name: "cancelled booking does not block the slot",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				cancelled := storedBooking("existing", "09:00", "12:00")
				cancelled.Status = constant.BookingStatusCancelled

				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return([]model.Booking{cancelled}, nil)
				set.repo.EXPECT().
					GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.leaves.EXPECT().
					GetCovering(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				allowAsyncSideEffects(set)
			},
			wantErr: false,
		},
		{
			name: "editor on leave rejected",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return(nil, nil)
				set.repo.EXPECT().
					GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.leaves.EXPECT().
					GetCovering(gomock.Any(), testEditorID, gomock.Any()).
					Return([]leaveModel.EditorLeave{
						{
							ID:       "leave-1",
							EditorID: testEditorID,
							FromDate: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
							ToDate:   time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
						},
					}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "force overrides a conflict",
			req: dto.CreateBookingRequest{
				RoomID:      testRoomID,
				EditorID:    testEditorID,
				CustomerID:  testCustomerID,
				ProjectID:   testProjectID,
				BookingDate: "2025-12-10",
				FromTime:    "09:00",
				ToTime:      "12:00",
				Force:       true,
			},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return([]model.Booking{storedBooking("existing", "11:00", "14:00")}, nil)
				set.repo.EXPECT().
					GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.leaves.EXPECT().
					GetCovering(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				allowAsyncSideEffects(set)
			},
			wantErr: false,
		},
		{
			name: "inverted time range rejected",
			req: dto.CreateBookingRequest{
				RoomID:      testRoomID,
				EditorID:    testEditorID,
				CustomerID:  testCustomerID,
				ProjectID:   testProjectID,
				BookingDate: "2025-12-10",
				FromTime:    "15:00",
				ToTime:      "12:00",
			},
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return(nil, nil)
				set.repo.EXPECT().
					GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
				set.leaves.EXPECT().
					GetCovering(gomock.Any(), testEditorID, gomock.Any()).
					Return(nil, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestBookingService_Check(t *testing.T) {
	req := dto.CheckBookingRequest{
		RoomID:      testRoomID,
		EditorID:    testEditorID,
		BookingDate: "2025-12-10",
		FromTime:    "09:00",
		ToTime:      "12:00",
	}

	t.Run("reports every conflict without writing", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
			Return([]model.Booking{storedBooking("room-clash", "11:00", "14:00")}, nil)
		set.repo.EXPECT().
			GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
			Return([]model.Booking{storedBooking("editor-clash", "10:00", "11:00")}, nil)
		set.leaves.EXPECT().
			GetCovering(gomock.Any(), testEditorID, gomock.Any()).
			Return([]leaveModel.EditorLeave{
				{
					ID:       "leave-1",
					EditorID: testEditorID,
					FromDate: time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC),
					ToDate:   time.Date(2025, 12, 11, 0, 0, 0, 0, time.UTC),
				},
			}, nil)

		res, err := svc.Check(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.HasConflict)
		assert.Len(t, res.Conflicts, 3)
	})

	t.Run("self is excluded on reschedule probe", func(t *testing.T) {
		svc, set := newBookingService(t)

		probe := req
		probe.BookingID = testBookingID

		set.repo.EXPECT().
			GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
			Return([]model.Booking{storedBooking(testBookingID, "09:00", "12:00")}, nil)
		set.repo.EXPECT().
			GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
			Return([]model.Booking{storedBooking(testBookingID, "09:00", "12:00")}, nil)
		set.leaves.EXPECT().
			GetCovering(gomock.Any(), testEditorID, gomock.Any()).
			Return(nil, nil)

		res, err := svc.Check(context.Background(), probe)

		assert.NoError(t, err)
		assert.False(t, res.HasConflict)
		assert.Empty(t, res.Conflicts)
	})

	t.Run("clean slot", func(t *testing.T) {
		svc, set := newBookingService(t)

		probe := req
		probe.FromTime = "12:00"
		probe.ToTime = "15:00"

		set.repo.EXPECT().
			GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
			Return([]model.Booking{storedBooking("existing", "09:00", "12:00")}, nil)
		set.repo.EXPECT().
			GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
			Return([]model.Booking{storedBooking("existing", "09:00", "12:00")}, nil)
		set.leaves.EXPECT().
			GetCovering(gomock.Any(), testEditorID, gomock.Any()).
			Return(nil, nil)

		res, err := svc.Check(context.Background(), probe)

		assert.NoError(t, err)
		assert.False(t, res.HasConflict)
	})

	t.Run("scheduling invalid range is a bad request", func(t *testing.T) {
		svc, set := newBookingService(t)

		probe := req
		probe.FromTime = "12:00"
		probe.ToTime = "12:00"

		set.repo.EXPECT().
			GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
			Return(nil, nil)
		set.repo.EXPECT().
			GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
			Return(nil, nil)
		set.leaves.EXPECT().
			GetCovering(gomock.Any(), testEditorID, gomock.Any()).
			Return(nil, nil)

		_, err := svc.Check(context.Background(), probe)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), scheduling.ErrInvalidTimeRange.Error())
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		req      dto.UpdateBookingStatusRequest
		wantErr  bool
		wantCode int
		noWrite  bool
	}{
		{
			name:   "planning to tentative",
			stored: constant.BookingStatusPlanning,
			req:    dto.UpdateBookingStatusRequest{Status: constant.BookingStatusTentative},
		},
		{
			name:   "tentative to confirmed",
			stored: constant.BookingStatusTentative,
			req:    dto.UpdateBookingStatusRequest{Status: constant.BookingStatusConfirmed},
		},
		{
			name:     "confirmed back to planning rejected",
			stored:   constant.BookingStatusConfirmed,
			req:      dto.UpdateBookingStatusRequest{Status: constant.BookingStatusPlanning},
			wantErr:  true,
			wantCode: 409,
			noWrite:  true,
		},
		{
			name:     "same status rejected",
			stored:   constant.BookingStatusTentative,
			req:      dto.UpdateBookingStatusRequest{Status: constant.BookingStatusTentative},
			wantErr:  true,
			wantCode: 409,
			noWrite:  true,
		},
		{
			name:   "cancel with reason",
			stored: constant.BookingStatusConfirmed,
			req: dto.UpdateBookingStatusRequest{
				Status:       constant.BookingStatusCancelled,
				CancelReason: "client pushed the session",
			},
		},
		{
			name:     "cancel without reason rejected",
			stored:   constant.BookingStatusConfirmed,
			req:      dto.UpdateBookingStatusRequest{Status: constant.BookingStatusCancelled},
			wantErr:  true,
			wantCode: 400,
			noWrite:  true,
		},
		{
			name:     "cancelled is terminal",
			stored:   constant.BookingStatusCancelled,
			req:      dto.UpdateBookingStatusRequest{Status: constant.BookingStatusConfirmed},
			wantErr:  true,
			wantCode: 409,
			noWrite:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)

			stored := storedBooking(testBookingID, "09:00", "12:00")
			stored.Status = tt.stored

			set.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(stored, nil)

			if !tt.noWrite {
				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				allowAsyncSideEffects(set)
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, testBookingID)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_CreateReportsConflictDetails(t *testing.T) {
	svc, set := newBookingService(t)

	existing := storedBooking("existing", "11:00", "14:00")

	set.repo.EXPECT().
		GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
		Return([]model.Booking{existing}, nil)
	set.repo.EXPECT().
		GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
		Return([]model.Booking{existing}, nil)
	set.leaves.EXPECT().
		GetCovering(gomock.Any(), testEditorID, gomock.Any()).
		Return(nil, nil)

	err := svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:      testRoomID,
		EditorID:    testEditorID,
		CustomerID:  testCustomerID,
		ProjectID:   testProjectID,
		BookingDate: "2025-12-10",
		FromTime:    "09:00",
		ToTime:      "12:00",
	})

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 409, fail.Code)

	conflicts, ok := fail.Details.([]scheduling.Conflict)
	require.True(t, ok, "expected the error to carry the conflict list")
	require.Len(t, conflicts, 2)
	assert.Equal(t, scheduling.KindRoomDoubleBooking, conflicts[0].Kind)
	assert.Equal(t, "existing", conflicts[0].BookingID)
	assert.Equal(t, scheduling.KindEditorDoubleBooking, conflicts[1].Kind)
	assert.Equal(t, "existing", conflicts[1].BookingID)
}

func TestBookingService_Update(t *testing.T) {
	t.Run("cancelled booking cannot be rescheduled", func(t *testing.T) {
		svc, set := newBookingService(t)

		stored := storedBooking(testBookingID, "09:00", "12:00")
		stored.Status = constant.BookingStatusCancelled

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{FromTime: "10:00"}, testBookingID)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("reschedule re-runs the conflict check", func(t *testing.T) {
		svc, set := newBookingService(t)

		stored := storedBooking(testBookingID, "09:00", "12:00")
		stored.Status = constant.BookingStatusConfirmed

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)
		set.repo.EXPECT().
			GetForRoomOnDate(gomock.Any(), testRoomID, gomock.Any()).
			Return([]model.Booking{storedBooking("other", "13:00", "16:00")}, nil)
		set.repo.EXPECT().
			GetForEditorOnDate(gomock.Any(), testEditorID, gomock.Any()).
			Return(nil, nil)
		set.leaves.EXPECT().
			GetCovering(gomock.Any(), testEditorID, gomock.Any()).
			Return(nil, nil)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{FromTime: "14:00", ToTime: "17:00"}, testBookingID)

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, 409, fail.Code)

		conflicts, ok := fail.Details.([]scheduling.Conflict)
		require.True(t, ok, "expected the error to carry the conflict list")
		require.Len(t, conflicts, 1)
		assert.Equal(t, scheduling.KindRoomDoubleBooking, conflicts[0].Kind)
		assert.Equal(t, "other", conflicts[0].BookingID)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		svc, _ := newBookingService(t)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{}, testBookingID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("missing booking", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), testBookingID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful delete", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		allowAsyncSideEffects(set)

		err := svc.Delete(context.Background(), testBookingID)

		assert.NoError(t, err)
	})
}
