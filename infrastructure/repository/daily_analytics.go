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
	dailyAnalyticsTable = "daily_sales_analytics dsa"
)

type DailyAnalyticsRepository interface {
	SaveOrUpdate(ctx context.Context, row *domain.DailySalesAnalytics) error
	GetByStoreAndDate(ctx context.Context, storeID string, date time.Time) (*domain.DailySalesAnalytics, error)
	GetByDateRange(ctx context.Context, storeID string, startDate, endDate time.Time) ([]*domain.DailySalesAnalytics, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type dailyAnalyticsRepository struct {
	conn postgres.Conn
}

func NewDailyAnalyticsRepository(conn postgres.Conn) DailyAnalyticsRepository {
	return &dailyAnalyticsRepository{
		conn: conn,
	}
}

// SaveOrUpdate upserts the analytics row for (store_id, date). Recomputing a
// day always lands on the same row.
func (r *dailyAnalyticsRepository) SaveOrUpdate(ctx context.Context, row *domain.DailySalesAnalytics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("daily_sales_analytics").
		Columns("store_id", "date", "total_sales", "total_orders", "average_order_value", "profit").
		Values(
			row.StoreID,
			row.Date.Format(time.DateOnly),
			row.TotalSales,
			row.TotalOrders,
			row.AverageOrderValue,
			row.Profit,
		).
		Suffix(`
			ON CONFLICT (store_id, date) DO UPDATE SET
				total_sales = EXCLUDED.total_sales,
				total_orders = EXCLUDED.total_orders,
				average_order_value = EXCLUDED.average_order_value,
				profit = EXCLUDED.profit,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *dailyAnalyticsRepository) GetByStoreAndDate(ctx context.Context, storeID string, date time.Time) (*domain.DailySalesAnalytics, error) {
	query, args, err := squirrel.
		Select("dsa.id, dsa.store_id, dsa.date, dsa.total_sales, dsa.total_orders, dsa.average_order_value, dsa.profit, dsa.created_at, dsa.updated_at").
		From(dailyAnalyticsTable).
		Where(squirrel.Eq{"dsa.store_id": storeID, "dsa.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	entry := &domain.DailySalesAnalytics{}
	err = row.Scan(
		&entry.ID,
		&entry.StoreID,
		&entry.Date,
		&entry.TotalSales,
		&entry.TotalOrders,
		&entry.AverageOrderValue,
		&entry.Profit,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan analytics row: %w", err)
	}

	return entry, nil
}

// GetByDateRange returns rows with date in [startDate, endDate], ordered by
// date ascending. Missing days are simply absent.
func (r *dailyAnalyticsRepository) GetByDateRange(ctx context.Context, storeID string, startDate, endDate time.Time) ([]*domain.DailySalesAnalytics, error) {
	query, args, err := squirrel.
		Select("dsa.id, dsa.store_id, dsa.date, dsa.total_sales, dsa.total_orders, dsa.average_order_value, dsa.profit, dsa.created_at, dsa.updated_at").
		From(dailyAnalyticsTable).
		Where(squirrel.Eq{"dsa.store_id": storeID}).
		Where(squirrel.GtOrEq{"dsa.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dsa.date": endDate.Format(time.DateOnly)}).
		OrderBy("dsa.date ASC").
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

	entries := make([]*domain.DailySalesAnalytics, 0)
	for rows.Next() {
		entry := &domain.DailySalesAnalytics{}
		err := rows.Scan(
			&entry.ID,
			&entry.StoreID,
			&entry.Date,
			&entry.TotalSales,
			&entry.TotalOrders,
			&entry.AverageOrderValue,
			&entry.Profit,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analytics row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

func (r *dailyAnalyticsRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("daily_sales_analytics").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}
