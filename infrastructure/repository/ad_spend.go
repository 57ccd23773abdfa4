package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/profitlens/storefront-analytics-api/infrastructure/database/postgres"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
)

const (
	adSpendsTable = "ad_spends ads"
)

type AdSpendRepository interface {
	SaveOrUpdateBatch(ctx context.Context, storeID string, entries []*domain.AdSpend) error
	ListByDateRange(ctx context.Context, storeID string, startDate, endDate time.Time) ([]*domain.AdSpend, error)
	SumByWindow(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (decimal.Decimal, error)
}

type adSpendRepository struct {
	conn postgres.Conn
}

func NewAdSpendRepository(conn postgres.Conn) AdSpendRepository {
	return &adSpendRepository{
		conn: conn,
	}
}

// SaveOrUpdateBatch upserts ad spend entries keyed by (store_id, platform,
// date, campaign_name) so re-imports overwrite instead of double counting.
func (r *adSpendRepository) SaveOrUpdateBatch(ctx context.Context, storeID string, entries []*domain.AdSpend) error {
	if len(entries) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_spends").
		Columns("store_id", "platform", "date", "spend", "campaign_name")

	for _, entry := range entries {
		campaignName := ""
		if entry.CampaignName != nil {
			campaignName = *entry.CampaignName
		}

		query = query.Values(
			storeID,
			entry.Platform,
			entry.Date.Format(time.DateOnly),
			entry.Spend,
			campaignName,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (store_id, platform, date, campaign_name) DO UPDATE SET
			spend = EXCLUDED.spend,
			updated_at = NOW()
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

func (r *adSpendRepository) ListByDateRange(ctx context.Context, storeID string, startDate, endDate time.Time) ([]*domain.AdSpend, error) {
	query, args, err := squirrel.
		Select("ads.id, ads.store_id, ads.platform, ads.date, ads.spend, ads.campaign_name, ads.created_at, ads.updated_at").
		From(adSpendsTable).
		Where(squirrel.Eq{"ads.store_id": storeID}).
		Where(squirrel.GtOrEq{"ads.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ads.date": endDate.Format(time.DateOnly)}).
		OrderBy("ads.date ASC", "ads.platform ASC").
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

	entries := make([]*domain.AdSpend, 0)
	for rows.Next() {
		entry := &domain.AdSpend{}
		var campaignName string

		err := rows.Scan(
			&entry.ID,
			&entry.StoreID,
			&entry.Platform,
			&entry.Date,
			&entry.Spend,
			&campaignName,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ad spend: %w", err)
		}

		if campaignName != "" {
			entry.CampaignName = &campaignName
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

// SumByWindow totals ad spend with date in the half-open window
// [windowStart, windowEnd).
func (r *adSpendRepository) SumByWindow(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(ads.spend), 0)").
		From(adSpendsTable).
		Where(squirrel.Eq{"ads.store_id": storeID}).
		Where(squirrel.GtOrEq{"ads.date": windowStart.Format(time.DateOnly)}).
		Where(squirrel.Lt{"ads.date": windowEnd.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan ad spend total: %w", err)
	}

	return total, nil
}
