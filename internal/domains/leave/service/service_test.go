package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"prism/config"
	"prism/infras/otel/mocks"
	leaveMocks "prism/internal/domains/leave/mocks"
	"prism/internal/domains/leave/model"
	"prism/internal/domains/leave/model/dto"
	"prism/internal/domains/leave/service"
	cacheMocks "prism/shared/cache/mocks"
	"prism/shared/constant"
	"prism/shared/failure"
)

const testEditorID = "8b8274dd-87f9-4adc-a0f0-9e3bca2ef92b"

func newLeaveService(t *testing.T) (service.Leave, *leaveMocks.MockLeave, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := leaveMocks.NewMockLeave(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, redis, mocks.NewOtel()), repo, redis
}

func TestLeaveService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateLeaveRequest
		setupMock func(repo *leaveMocks.MockLeave, redis *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "valid range",
			req: dto.CreateLeaveRequest{
				EditorID: testEditorID,
				FromDate: "2025-12-24",
				ToDate:   "2025-12-26",
				Reason:   "Christmas break",
			},
			setupMock: func(repo *leaveMocks.MockLeave, redis *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, leave model.EditorLeave) error {
						assert.Equal(t, testEditorID, leave.EditorID)
						assert.Equal(t, "Christmas break", leave.Reason)
						assert.False(t, leave.ToDate.Before(leave.FromDate))

						return nil
					})
				redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "single day leave",
			req: dto.CreateLeaveRequest{
				EditorID: testEditorID,
				FromDate: "2025-12-25",
				ToDate:   "2025-12-25",
			},
			setupMock: func(repo *leaveMocks.MockLeave, redis *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "inverted range rejected",
			req: dto.CreateLeaveRequest{
				EditorID: testEditorID,
				FromDate: "2025-12-26",
				ToDate:   "2025-12-24",
			},
			setupMock: func(repo *leaveMocks.MockLeave, redis *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "malformed date rejected",
			req: dto.CreateLeaveRequest{
				EditorID: testEditorID,
				FromDate: "24/12/2025",
				ToDate:   "2025-12-26",
			},
			setupMock: func(repo *leaveMocks.MockLeave, redis *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, redis := newLeaveService(t)
			tt.setupMock(repo, redis)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestLeaveService_Delete(t *testing.T) {
	t.Run("missing leave", func(t *testing.T) {
		svc, repo, _ := newLeaveService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "leave-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful delete", func(t *testing.T) {
		svc, repo, redis := newLeaveService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "leave-1")

		assert.NoError(t, err)
	})
}
