package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/profitlens/storefront-analytics-api/infrastructure/repository/mocks"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
)

const testStoreID = "stArQL7x9mKp"

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestService_CreateStore(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateStoreRequest
		validate func(t *testing.T, created *domain.Store)
	}{
		{
			name: "store gets a generated id and defaults",
			req: &domain.CreateStoreRequest{
				Name:       "Demo Store",
				Platform:   "shopify",
				ShopDomain: "demo-store.myshopify.com",
			},
			validate: func(t *testing.T, created *domain.Store) {
				assert.Len(t, created.ID, 12)
				assert.Equal(t, "USD", created.Currency)
				assert.True(t, created.Active)
			},
		},
		{
			name: "explicit currency is kept",
			req: &domain.CreateStoreRequest{
				Name:     "Loja BR",
				Platform: "shopify",
				Currency: "BRL",
			},
			validate: func(t *testing.T, created *domain.Store) {
				assert.Equal(t, "BRL", created.Currency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeRepo := mocks.NewMockStoreRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)

			storeRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

			service := NewService(storeRepo, orderRepo)

			created, err := service.CreateStore(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.req.Name, created.Name)
			tt.validate(t, created)
		})
	}
}

func TestService_GetStore(t *testing.T) {
	t.Run("existing store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)

		storeRepo.EXPECT().
			GetByID(gomock.Any(), testStoreID).
			Return(&domain.Store{ID: testStoreID, Name: "Demo Store"}, nil)

		service := NewService(storeRepo, orderRepo)

		store, err := service.GetStore(context.Background(), testStoreID)
		require.NoError(t, err)
		assert.Equal(t, testStoreID, store.ID)
	})

	t.Run("unknown store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)

		storeRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		service := NewService(storeRepo, orderRepo)

		store, err := service.GetStore(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)
		assert.Nil(t, store)
	})
}

func TestService_UpdateStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)

	existing := &domain.Store{
		ID:         testStoreID,
		Name:       "Old Name",
		Platform:   "shopify",
		ShopDomain: "old.myshopify.com",
		Currency:   "USD",
		Active:     true,
	}

	storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(existing, nil)
	storeRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, store *domain.Store) error {
			assert.Equal(t, "New Name", store.Name)
			assert.Equal(t, "old.myshopify.com", store.ShopDomain, "untouched fields are kept")
			assert.False(t, store.Active)
			return nil
		})

	service := NewService(storeRepo, orderRepo)

	updated, err := service.UpdateStore(context.Background(), testStoreID, &domain.UpdateStoreRequest{
		Name:   stringPtr("New Name"),
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestService_IngestOrders(t *testing.T) {
	processedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	orders := []*domain.Order{
		{
			PlatformOrderID: "1001",
			TotalPrice:      decimal.NewFromFloat(59.90),
			Currency:        "USD",
			ProcessedAt:     processedAt,
		},
	}

	t.Run("batch is saved and last sync stamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)

		storeRepo.EXPECT().
			GetByID(gomock.Any(), testStoreID).
			Return(&domain.Store{ID: testStoreID, Active: true}, nil)
		orderRepo.EXPECT().
			UpsertBatch(gomock.Any(), testStoreID, orders).
			Return(1, nil)
		storeRepo.EXPECT().
			SetLastSyncAt(gomock.Any(), testStoreID, gomock.Any()).
			Return(nil)

		service := NewService(storeRepo, orderRepo)

		saved, err := service.IngestOrders(context.Background(), testStoreID, orders)
		require.NoError(t, err)
		assert.Equal(t, 1, saved)
	})

	t.Run("last sync stamp failure does not fail the ingest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)

		storeRepo.EXPECT().
			GetByID(gomock.Any(), testStoreID).
			Return(&domain.Store{ID: testStoreID, Active: true}, nil)
		orderRepo.EXPECT().
			UpsertBatch(gomock.Any(), testStoreID, orders).
			Return(1, nil)
		storeRepo.EXPECT().
			SetLastSyncAt(gomock.Any(), testStoreID, gomock.Any()).
			Return(assert.AnError)

		service := NewService(storeRepo, orderRepo)

		saved, err := service.IngestOrders(context.Background(), testStoreID, orders)
		require.NoError(t, err)
		assert.Equal(t, 1, saved)
	})

	t.Run("unknown store aborts before the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)

		storeRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		service := NewService(storeRepo, orderRepo)

		saved, err := service.IngestOrders(context.Background(), "missing", orders)
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)
		assert.Zero(t, saved)
	})
}
