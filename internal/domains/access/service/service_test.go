package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"prism/config"
	"prism/infras/otel/mocks"
	accessMocks "prism/internal/domains/access/mocks"
	"prism/internal/domains/access/model"
	"prism/internal/domains/access/model/dto"
	"prism/internal/domains/access/policy"
	"prism/internal/domains/access/service"
	"prism/shared/cache"
	cacheMocks "prism/shared/cache/mocks"
	"prism/shared/constant"
	"prism/shared/failure"
)

const (
	testUserID = "9f5e1a52-58fd-4a5a-97c5-8a97b31801a4"
	testRowID  = "1df3a7bc-a2f1-4ae7-a4cf-7b2ae56ad3b5"
)

func newAccessService(t *testing.T, adminBypass bool) (service.Access, *accessMocks.MockAccess, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := accessMocks.NewMockAccess(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Policy.AdminBypassesGrants = adminBypass

	return service.New(repo, cfg, redis, mocks.NewOtel()), repo, redis
}

func TestAccessService_Upsert(t *testing.T) {
	req := dto.UpsertAccessRequest{
		UserID:    testUserID,
		Module:    "bookings",
		CanView:   true,
		CanCreate: true,
	}

	tests := []struct {
		name      string
		req       dto.UpsertAccessRequest
		setupMock func(repo *accessMocks.MockAccess, redis *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "new pair inserts a row",
			req:  req,
			setupMock: func(repo *accessMocks.MockAccess, redis *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row model.ModuleAccess) error {
						assert.Equal(t, testUserID, row.UserID)
						assert.Equal(t, "bookings", row.Module)
						assert.True(t, row.CanView)
						assert.False(t, row.CanDelete)

						return nil
					})
				redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "existing pair updates in place",
			req:  req,
			setupMock: func(repo *accessMocks.MockAccess, redis *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown module rejected",
			req: dto.UpsertAccessRequest{
				UserID: testUserID,
				Module: "payroll",
			},
			setupMock: func(repo *accessMocks.MockAccess, redis *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, redis := newAccessService(t, true)
			tt.setupMock(repo, redis)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Upsert(ctx, tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestAccessService_CanPerform(t *testing.T) {
	grantRows := []model.ModuleAccess{
		{UserID: testUserID, Module: "bookings", CanView: true, CanCreate: true},
		{UserID: testUserID, Module: "chalans", CanView: true},
	}

	tests := []struct {
		name        string
		role        string
		module      string
		action      policy.Action
		adminBypass bool
		rows        []model.ModuleAccess
		want        bool
	}{
		{
			name:   "granted action allowed",
			role:   constant.RoleGST,
			module: "bookings",
			action: policy.ActionCreate,
			rows:   grantRows,
			want:   true,
		},
		{
			name:   "missing grant denied",
			role:   constant.RoleGST,
			module: "chalans",
			action: policy.ActionCreate,
			rows:   grantRows,
			want:   false,
		},
		{
			name:   "no row for module denied",
			role:   constant.RoleNonGST,
			module: "reports",
			action: policy.ActionView,
			rows:   grantRows,
			want:   false,
		},
		{
			name:        "admin bypasses a restrictive row",
			role:        constant.RoleAdmin,
			module:      "chalans",
			action:      policy.ActionDelete,
			adminBypass: true,
			rows:        grantRows,
			want:        true,
		},
		{
			name:        "admin without bypass honours the row",
			role:        constant.RoleAdmin,
			module:      "chalans",
			action:      policy.ActionDelete,
			adminBypass: false,
			rows:        grantRows,
			want:        false,
		},
		{
			name:   "unknown module denied for everyone",
			role:   constant.RoleAdmin,
			module: "payroll",
			action: policy.ActionView,
			rows:   nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, redis := newAccessService(t, tt.adminBypass)

			redis.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(cache.Nil)
			repo.EXPECT().
				GetForUser(gomock.Any(), testUserID).
				Return(tt.rows, nil)
			redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			subject := policy.Subject{ID: testUserID, Role: tt.role}
			allowed, err := svc.CanPerform(context.Background(), subject, tt.module, tt.action)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestAccessService_Delete(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		svc, repo, _ := newAccessService(t, true)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ModuleAccess{}, nil)

		err := svc.Delete(context.Background(), testRowID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful delete clears the user grant cache", func(t *testing.T) {
		svc, repo, redis := newAccessService(t, true)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ModuleAccess{ID: testRowID, UserID: testUserID, Module: "bookings"}, nil)
		repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), testRowID)

		assert.NoError(t, err)
	})
}
