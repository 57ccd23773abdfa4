package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/profitlens/storefront-analytics-api/infrastructure/database/postgres"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
)

const (
	variantsTable = "product_variants pv"
)

type VariantRepository interface {
	UpsertBatch(ctx context.Context, storeID string, variants []*domain.ProductVariant) error
	ListByStore(ctx context.Context, storeID string) ([]*domain.ProductVariant, error)
	UpdateCOGS(ctx context.Context, storeID, variantID string, cogs decimal.Decimal) error
	BulkUpdateCOGS(ctx context.Context, storeID string, updates []*domain.VariantCostUpdate) (int, error)
	COGSTotal(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (decimal.Decimal, error)
}

type variantRepository struct {
	conn postgres.Conn
}

func NewVariantRepository(conn postgres.Conn) VariantRepository {
	return &variantRepository{
		conn: conn,
	}
}

func (r *variantRepository) UpsertBatch(ctx context.Context, storeID string, variants []*domain.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("product_variants").
		Columns("id", "store_id", "platform_variant_id", "title", "sku", "price", "cost_of_goods_sold", "synced_at")

	now := time.Now().UTC()

	for _, variant := range variants {
		var price, cogs decimal.NullDecimal
		if variant.Price != nil {
			price = decimal.NullDecimal{Decimal: *variant.Price, Valid: true}
		}
		if variant.CostOfGoodsSold != nil {
			cogs = decimal.NullDecimal{Decimal: *variant.CostOfGoodsSold, Valid: true}
		}

		query = query.Values(
			uuid.NewString(),
			storeID,
			variant.PlatformVariantID,
			variant.Title,
			variant.SKU,
			price,
			cogs,
			now,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (store_id, platform_variant_id) DO UPDATE SET
			title = EXCLUDED.title,
			sku = EXCLUDED.sku,
			price = EXCLUDED.price,
			cost_of_goods_sold = COALESCE(EXCLUDED.cost_of_goods_sold, product_variants.cost_of_goods_sold),
			synced_at = EXCLUDED.synced_at
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *variantRepository) ListByStore(ctx context.Context, storeID string) ([]*domain.ProductVariant, error) {
	query, args, err := squirrel.
		Select("pv.id, pv.store_id, pv.platform_variant_id, pv.title, pv.sku, pv.price, pv.cost_of_goods_sold, pv.synced_at").
		From(variantsTable).
		Where(squirrel.Eq{"pv.store_id": storeID}).
		OrderBy("pv.platform_variant_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	variants := make([]*domain.ProductVariant, 0)
	for rows.Next() {
		variant, err := r.scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, variant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return variants, nil
}

func (r *variantRepository) UpdateCOGS(ctx context.Context, storeID, variantID string, cogs decimal.Decimal) error {
	query, args, err := squirrel.
		Update("product_variants").
		Set("cost_of_goods_sold", cogs).
		Set("synced_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": variantID, "store_id": storeID}).
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
		return domain.ErrCostNotFound
	}

	return nil
}

// BulkUpdateCOGS applies many COGS updates in one transaction. Returns the
// number of variants actually touched.
func (r *variantRepository) BulkUpdateCOGS(ctx context.Context, storeID string, updates []*domain.VariantCostUpdate) (int, error) {
	updated := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, update := range updates {
			query, args, err := squirrel.
				Update("product_variants").
				Set("cost_of_goods_sold", update.COGS).
				Set("synced_at", time.Now().UTC()).
				Where(squirrel.Eq{"id": update.VariantID, "store_id": storeID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to update variant %s: %w", update.VariantID, err)
			}

			rowsAffected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get affected rows: %w", err)
			}

			updated += int(rowsAffected)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// COGSTotal sums quantity * cost_of_goods_sold for the line items of
// non-cancelled orders processed inside [windowStart, windowEnd). Line items
// without a matching variant contribute zero.
func (r *variantRepository) COGSTotal(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(li.quantity * COALESCE(pv.cost_of_goods_sold, 0)), 0)").
		From("line_items li").
		Join("orders o ON li.order_id = o.id").
		LeftJoin("product_variants pv ON li.platform_variant_id = pv.platform_variant_id AND pv.store_id = o.store_id").
		Where(squirrel.Eq{"o.store_id": storeID}).
		Where(squirrel.GtOrEq{"o.processed_at": windowStart}).
		Where(squirrel.Lt{"o.processed_at": windowEnd}).
		Where(squirrel.Eq{"o.cancelled_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan cogs total: %w", err)
	}

	return total, nil
}

func (r *variantRepository) scanVariant(rows *sql.Rows) (*domain.ProductVariant, error) {
	variant := &domain.ProductVariant{}
	var title, sku sql.NullString
	var price, cogs decimal.NullDecimal

	err := rows.Scan(
		&variant.ID,
		&variant.StoreID,
		&variant.PlatformVariantID,
		&title,
		&sku,
		&price,
		&cogs,
		&variant.SyncedAt,
	)
	if err != nil {
		return nil, err
	}

	if title.Valid {
		variant.Title = &title.String
	}
	if sku.Valid {
		variant.SKU = &sku.String
	}
	if price.Valid {
		variant.Price = &price.Decimal
	}
	if cogs.Valid {
		variant.CostOfGoodsSold = &cogs.Decimal
	}

	return variant, nil
}
