package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"prism/config"
	"prism/infras/otel/mocks"
	userMocks "prism/internal/domains/user/mocks"
	"prism/internal/domains/user/model"
	"prism/internal/domains/user/model/dto"
	"prism/internal/domains/user/service"
	cacheMocks "prism/shared/cache/mocks"
	"prism/shared/constant"
	"prism/shared/failure"
	"prism/shared/password"
)

const testCompanyID = "5f5e1a52-58fd-4a5a-97c5-8a97b31801a4"

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, redis, mocks.NewOtel()), repo, redis
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Username:    "new_editor",
		Password:    "a long password",
		SecurityPin: "4321",
		Role:        constant.RoleGST,
		CompanyID:   testCompanyID,
	}

	t.Run("stores hashed credentials", func(t *testing.T) {
		svc, repo, redis := newUserService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, "new_editor", user.Username)
				assert.NotEqual(t, "a long password", user.Password)
				assert.NoError(t, password.Verify("a long password", user.Password))
				assert.NoError(t, password.Verify("4321", user.SecurityPin))
				assert.True(t, user.Active)

				return nil
			})
		redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("username already taken", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
