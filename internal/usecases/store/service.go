package store

import (
	"context"
	"fmt"
	"time"

	"github.com/profitlens/storefront-analytics-api/infrastructure/repository"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
	"github.com/profitlens/storefront-analytics-api/pkg/utils"
)

// Manager handles store registration and raw order ingestion.
type Manager interface {
	CreateStore(ctx context.Context, req *domain.CreateStoreRequest) (*domain.Store, error)
	GetStore(ctx context.Context, storeID string) (*domain.Store, error)
	ListStores(ctx context.Context, onlyActive bool) ([]*domain.Store, error)
	UpdateStore(ctx context.Context, storeID string, req *domain.UpdateStoreRequest) (*domain.Store, error)

	// IngestOrders upserts a batch of synchronized orders for the store and
	// stamps the store's last sync time. Returns the number of orders written.
	IngestOrders(ctx context.Context, storeID string, orders []*domain.Order) (int, error)
}

type Service struct {
	storeRepository repository.StoreRepository
	orderRepository repository.OrderRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
) Manager {
	return &Service{
		storeRepository: storeRepo,
		orderRepository: orderRepo,
	}
}

func (s *Service) CreateStore(ctx context.Context, req *domain.CreateStoreRequest) (*domain.Store, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate store id: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	store := &domain.Store{
		ID:         id,
		Name:       req.Name,
		Platform:   req.Platform,
		ShopDomain: req.ShopDomain,
		Currency:   currency,
		Active:     true,
	}

	if err := s.storeRepository.Insert(ctx, store); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id": store.ID,
		"platform": store.Platform,
	}).Info("store registered")

	return store, nil
}

func (s *Service) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	return store, nil
}

func (s *Service) ListStores(ctx context.Context, onlyActive bool) ([]*domain.Store, error) {
	return s.storeRepository.List(ctx, onlyActive)
}

func (s *Service) UpdateStore(ctx context.Context, storeID string, req *domain.UpdateStoreRequest) (*domain.Store, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.ShopDomain != nil {
		store.ShopDomain = *req.ShopDomain
	}
	if req.Currency != nil {
		store.Currency = *req.Currency
	}
	if req.Active != nil {
		store.Active = *req.Active
	}

	if err := s.storeRepository.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Service) IngestOrders(ctx context.Context, storeID string, orders []*domain.Order) (int, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return 0, err
	}

	saved, err := s.orderRepository.UpsertBatch(ctx, store.ID, orders)
	if err != nil {
		return 0, err
	}

	if err := s.storeRepository.SetLastSyncAt(ctx, store.ID, time.Now().UTC()); err != nil {
		// The batch is already committed, so only log the bookkeeping failure.
		log.ForContext(ctx).WithField("store_id", store.ID).Warnf("failed to stamp last sync: %v", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id": store.ID,
		"orders":   saved,
	}).Info("order batch ingested")

	return saved, nil
}
