package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/profitlens/storefront-analytics-api/infrastructure/database/postgres"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
)

const (
	storesTable = "stores s"
)

type StoreRepository interface {
	Insert(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, storeID string) (*domain.Store, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) error
	SetLastSyncAt(ctx context.Context, storeID string, syncedAt time.Time) error
}

type storeRepository struct {
	conn postgres.Conn
}

func NewStoreRepository(conn postgres.Conn) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) Insert(ctx context.Context, store *domain.Store) error {
	query, args, err := squirrel.
		Insert("stores").
		Columns("id", "name", "platform", "shop_domain", "currency", "active").
		Values(
			store.ID,
			store.Name,
			store.Platform,
			store.ShopDomain,
			store.Currency,
			store.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *storeRepository) GetByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select("s.id, s.name, s.platform, s.shop_domain, s.currency, s.active, s.last_sync_at, s.created_at, s.updated_at").
		From(storesTable).
		Where(squirrel.Eq{"s.id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	store, err := r.scanStore(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan store: %w", err)
	}

	return store, nil
}

func (r *storeRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Store, error) {
	builder := squirrel.
		Select("s.id, s.name, s.platform, s.shop_domain, s.currency, s.active, s.last_sync_at, s.created_at, s.updated_at").
		From(storesTable).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"s.active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := r.scanStoreRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) Update(ctx context.Context, store *domain.Store) error {
	query, args, err := squirrel.
		Update("stores").
		Set("name", store.Name).
		Set("shop_domain", store.ShopDomain).
		Set("currency", store.Currency).
		Set("active", store.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": store.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrStoreNotFound
	}

	return nil
}

func (r *storeRepository) SetLastSyncAt(ctx context.Context, storeID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("stores").
		Set("last_sync_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *storeRepository) scanStore(row *sql.Row) (*domain.Store, error) {
	store := &domain.Store{}
	var lastSyncAt sql.NullTime

	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Platform,
		&store.ShopDomain,
		&store.Currency,
		&store.Active,
		&lastSyncAt,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastSyncAt.Valid {
		store.LastSyncAt = &lastSyncAt.Time
	}

	return store, nil
}

func (r *storeRepository) scanStoreRows(rows *sql.Rows) (*domain.Store, error) {
	store := &domain.Store{}
	var lastSyncAt sql.NullTime

	err := rows.Scan(
		&store.ID,
		&store.Name,
		&store.Platform,
		&store.ShopDomain,
		&store.Currency,
		&store.Active,
		&lastSyncAt,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastSyncAt.Valid {
		store.LastSyncAt = &lastSyncAt.Time
	}

	return store, nil
}
