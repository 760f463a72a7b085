package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"prism/config"
	kafkaMocks "prism/infras/kafka/mocks"
	"prism/infras/otel/mocks"
	s3Mocks "prism/infras/s3/mocks"
	chalanMocks "prism/internal/domains/chalan/mocks"
	"prism/internal/domains/chalan/model"
	"prism/internal/domains/chalan/model/dto"
	"prism/internal/domains/chalan/service"
	"prism/shared/cache"
	cacheMocks "prism/shared/cache/mocks"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/failure"
)

const (
	testChalanID   = "0b8274dd-87f9-4adc-a0f0-9e3bca2ef92b"
	testCustomerID = "5f5e1a52-58fd-4a5a-97c5-8a97b31801a4"
	testProjectID  = "cbf85a70-7acd-4d31-976f-1a1cbab12fe2"
)

type chalanMockSet struct {
	repo    *chalanMocks.MockChalan
	cache   *cacheMocks.MockRedisCache
	kafka   *kafkaMocks.MockClient
	storage *s3Mocks.MockS3
}

func newChalanService(t *testing.T) (service.Chalan, chalanMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := chalanMockSet{
		repo:    chalanMocks.NewMockChalan(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, cfg, set.cache, set.kafka, set.storage, mocks.NewOtel())

	return svc, set
}

// allowAsyncSideEffects covers the archive upload, event publish, and cache
// invalidation that run on their own goroutines after a write.
func allowAsyncSideEffects(set chalanMockSet) {
	set.storage.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://archive.example.com/chalan.json", nil).
		AnyTimes()
	set.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestChalanService_Create(t *testing.T) {
	req := dto.CreateChalanRequest{
		CustomerID: testCustomerID,
		ProjectID:  testProjectID,
		IssueDate:  "2025-11-20",
		Items: []dto.ItemRequest{
			{Description: "Color grading", Quantity: 8, Rate: 1500},
			{Description: "Sound mix", Quantity: 2, Rate: 2750},
		},
	}

	t.Run("numbering and amounts are computed server side", func(t *testing.T) {
		svc, set := newChalanService(t)

		set.repo.EXPECT().
			NextSequence(gomock.Any(), 2025).
			Return(7, nil)

		var inserted model.Chalan
		var insertedItems []model.Item

		set.repo.EXPECT().
			InsertWithItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, chalan model.Chalan, items []model.Item) error {
				inserted = chalan
				insertedItems = items

				return nil
			})
		allowAsyncSideEffects(set)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "CHN-2025-0007", inserted.ChalanNumber)
		assert.InDelta(t, 17500.0, inserted.TotalAmount, 0.001)
		assert.Len(t, insertedItems, 2)
		assert.InDelta(t, 12000.0, insertedItems[0].Amount, 0.001)
		assert.InDelta(t, 5500.0, insertedItems[1].Amount, 0.001)
	})

	t.Run("bad issue date", func(t *testing.T) {
		svc, _ := newChalanService(t)

		bad := req
		bad.IssueDate = "20-11-2025"

		err := svc.Create(context.Background(), bad)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("sequence lookup failure", func(t *testing.T) {
		svc, set := newChalanService(t)

		set.repo.EXPECT().
			NextSequence(gomock.Any(), 2025).
			Return(0, errors.New("database error"))

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestChalanService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		stored    model.Chalan
		setupMock func(set chalanMockSet, stored model.Chalan)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful cancel",
			stored: model.Chalan{ID: testChalanID, ChalanNumber: "CHN-2025-0001"},
			setupMock: func(set chalanMockSet, stored model.Chalan) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)
				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name:   "already cancelled",
			stored: model.Chalan{ID: testChalanID, ChalanNumber: "CHN-2025-0001", IsCancelled: true},
			setupMock: func(set chalanMockSet, stored model.Chalan) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:   "chalan not found",
			stored: model.Chalan{},
			setupMock: func(set chalanMockSet, stored model.Chalan) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newChalanService(t)
			tt.setupMock(set, tt.stored)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, dto.CancelChalanRequest{CancelReason: "duplicate entry"}, testChalanID)

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

func TestChalanService_Get(t *testing.T) {
	t.Run("assembles chalan with its items", func(t *testing.T) {
		svc, set := newChalanService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Chalan{
				ID:           testChalanID,
				ChalanNumber: "CHN-2025-0001",
				CustomerID:   testCustomerID,
				ProjectID:    testProjectID,
				TotalAmount:  17500,
			}, nil)
		set.repo.EXPECT().
			GetItems(gomock.Any(), testChalanID).
			Return([]model.Item{
				{ID: "item-1", ChalanID: testChalanID, Description: "Color grading", Quantity: 8, Rate: 1500, Amount: 12000},
			}, nil)
		set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), testChalanID)

		assert.NoError(t, err)
		assert.Equal(t, "CHN-2025-0001", res.ChalanNumber)
		assert.Len(t, res.Items, 1)
		assert.InDelta(t, 12000.0, res.Items[0].Amount, 0.001)
	})

	t.Run("missing chalan", func(t *testing.T) {
		svc, set := newChalanService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Chalan{}, nil)

		_, err := svc.Get(context.Background(), testChalanID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestChalanService_GetAll(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		svc, set := newChalanService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			Times(2)
		set.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Chalan{
				{ID: "c1", ChalanNumber: "CHN-2025-0001"},
				{ID: "c2", ChalanNumber: "CHN-2025-0002"},
			}, nil)
		set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Chalans, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})
}
