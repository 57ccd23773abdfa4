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
	ordersTable = "orders o"
)

type OrderRepository interface {
	UpsertBatch(ctx context.Context, storeID string, orders []*domain.Order) (int, error)
	ListByStoreAndWindow(ctx context.Context, storeID string, windowStart, windowEnd time.Time) ([]*domain.Order, error)
	RevenueTotals(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (*domain.OrderTotals, error)
	UpdateShippingCost(ctx context.Context, storeID, orderID string, cost decimal.Decimal) error
}

type orderRepository struct {
	conn postgres.Conn
}

func NewOrderRepository(conn postgres.Conn) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// UpsertBatch writes a batch of orders and their line items atomically.
// Orders are keyed by (store_id, platform_order_id) so replays of the same
// batch are idempotent.
func (r *orderRepository) UpsertBatch(ctx context.Context, storeID string, orders []*domain.Order) (int, error) {
	saved := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, order := range orders {
			orderID, err := r.upsertOrder(ctx, tx, storeID, order)
			if err != nil {
				return fmt.Errorf("failed to upsert order %s: %w", order.PlatformOrderID, err)
			}

			for _, item := range order.LineItems {
				if err := r.upsertLineItem(ctx, tx, orderID, item); err != nil {
					return fmt.Errorf("failed to upsert line item %s: %w", item.PlatformLineItemID, err)
				}
			}

			saved++
		}

		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, err
	}

	return saved, nil
}

func (r *orderRepository) upsertOrder(ctx context.Context, tx *sql.Tx, storeID string, order *domain.Order) (string, error) {
	var shippingCost decimal.NullDecimal
	if order.ActualShippingCost != nil {
		shippingCost = decimal.NullDecimal{Decimal: *order.ActualShippingCost, Valid: true}
	}

	var cancelledAt sql.NullTime
	if order.CancelledAt != nil {
		cancelledAt = sql.NullTime{Time: *order.CancelledAt, Valid: true}
	}

	query, args, err := squirrel.
		Insert("orders").
		Columns(
			"id", "store_id", "platform_order_id", "order_number",
			"total_price", "total_discount", "refunded_amount", "actual_shipping_cost",
			"currency", "financial_status", "cancelled_at", "processed_at", "synced_at",
		).
		Values(
			uuid.NewString(),
			storeID,
			order.PlatformOrderID,
			order.OrderNumber,
			order.TotalPrice,
			order.TotalDiscount,
			order.RefundedAmount,
			shippingCost,
			order.Currency,
			order.FinancialStatus,
			cancelledAt,
			order.ProcessedAt,
			time.Now().UTC(),
		).
		Suffix(`
			ON CONFLICT (store_id, platform_order_id) DO UPDATE SET
				order_number = EXCLUDED.order_number,
				total_price = EXCLUDED.total_price,
				total_discount = EXCLUDED.total_discount,
				refunded_amount = EXCLUDED.refunded_amount,
				actual_shipping_cost = COALESCE(EXCLUDED.actual_shipping_cost, orders.actual_shipping_cost),
				currency = EXCLUDED.currency,
				financial_status = EXCLUDED.financial_status,
				cancelled_at = EXCLUDED.cancelled_at,
				processed_at = EXCLUDED.processed_at,
				synced_at = EXCLUDED.synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var orderID string
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&orderID); err != nil {
		return "", err
	}

	return orderID, nil
}

func (r *orderRepository) upsertLineItem(ctx context.Context, tx *sql.Tx, orderID string, item *domain.LineItem) error {
	query, args, err := squirrel.
		Insert("line_items").
		Columns("id", "order_id", "platform_line_item_id", "platform_variant_id", "title", "sku", "quantity", "price").
		Values(
			uuid.NewString(),
			orderID,
			item.PlatformLineItemID,
			item.PlatformVariantID,
			item.Title,
			item.SKU,
			item.Quantity,
			item.Price,
		).
		Suffix(`
			ON CONFLICT (order_id, platform_line_item_id) DO UPDATE SET
				platform_variant_id = EXCLUDED.platform_variant_id,
				title = EXCLUDED.title,
				sku = EXCLUDED.sku,
				quantity = EXCLUDED.quantity,
				price = EXCLUDED.price
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// ListByStoreAndWindow returns non-cancelled orders processed inside the
// half-open window [windowStart, windowEnd).
func (r *orderRepository) ListByStoreAndWindow(ctx context.Context, storeID string, windowStart, windowEnd time.Time) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select(`o.id, o.store_id, o.platform_order_id, o.order_number,
			o.total_price, o.total_discount, o.refunded_amount, o.actual_shipping_cost,
			o.currency, o.financial_status, o.cancelled_at, o.processed_at, o.synced_at`).
		From(ordersTable).
		Where(squirrel.Eq{"o.store_id": storeID}).
		Where(squirrel.GtOrEq{"o.processed_at": windowStart}).
		Where(squirrel.Lt{"o.processed_at": windowEnd}).
		Where(squirrel.Eq{"o.cancelled_at": nil}).
		OrderBy("o.processed_at ASC").
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

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return orders, nil
}

// RevenueTotals aggregates revenue figures over the half-open window,
// skipping cancelled orders.
func (r *orderRepository) RevenueTotals(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (*domain.OrderTotals, error) {
	query, args, err := squirrel.
		Select(`COALESCE(SUM(o.total_price), 0),
			COALESCE(SUM(o.total_discount), 0),
			COALESCE(SUM(o.refunded_amount), 0),
			COALESCE(SUM(o.actual_shipping_cost), 0),
			COUNT(o.id)`).
		From(ordersTable).
		Where(squirrel.Eq{"o.store_id": storeID}).
		Where(squirrel.GtOrEq{"o.processed_at": windowStart}).
		Where(squirrel.Lt{"o.processed_at": windowEnd}).
		Where(squirrel.Eq{"o.cancelled_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	totals := &domain.OrderTotals{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&totals.GrossRevenue,
		&totals.TotalDiscounts,
		&totals.TotalRefunds,
		&totals.TotalShipping,
		&totals.OrderCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan order totals: %w", err)
	}

	return totals, nil
}

func (r *orderRepository) UpdateShippingCost(ctx context.Context, storeID, orderID string, cost decimal.Decimal) error {
	query, args, err := squirrel.
		Update("orders").
		Set("actual_shipping_cost", cost).
		Set("synced_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": orderID, "store_id": storeID}).
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
		return domain.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) scanOrder(rows *sql.Rows) (*domain.Order, error) {
	order := &domain.Order{}
	var shippingCost decimal.NullDecimal
	var financialStatus sql.NullString
	var cancelledAt sql.NullTime

	err := rows.Scan(
		&order.ID,
		&order.StoreID,
		&order.PlatformOrderID,
		&order.OrderNumber,
		&order.TotalPrice,
		&order.TotalDiscount,
		&order.RefundedAmount,
		&shippingCost,
		&order.Currency,
		&financialStatus,
		&cancelledAt,
		&order.ProcessedAt,
		&order.SyncedAt,
	)
	if err != nil {
		return nil, err
	}

	if shippingCost.Valid {
		order.ActualShippingCost = &shippingCost.Decimal
	}
	if financialStatus.Valid {
		order.FinancialStatus = &financialStatus.String
	}
	if cancelledAt.Valid {
		order.CancelledAt = &cancelledAt.Time
	}

	return order, nil
}
