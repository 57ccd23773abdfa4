package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/profitlens/storefront-analytics-api/infrastructure/database/postgres"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
)

const (
	otherCostsTable = "other_costs oc"
)

type OtherCostRepository interface {
	Insert(ctx context.Context, cost *domain.OtherCost) error
	Update(ctx context.Context, cost *domain.OtherCost) error
	Delete(ctx context.Context, storeID string, costID int64) error
	List(ctx context.Context, storeID string) ([]*domain.OtherCost, error)
	SumForWindow(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (decimal.Decimal, error)
}

type otherCostRepository struct {
	conn postgres.Conn
}

func NewOtherCostRepository(conn postgres.Conn) OtherCostRepository {
	return &otherCostRepository{
		conn: conn,
	}
}

func (r *otherCostRepository) Insert(ctx context.Context, cost *domain.OtherCost) error {
	var endDate interface{}
	if cost.EndDate != nil {
		endDate = cost.EndDate.Format(time.DateOnly)
	}

	query, args, err := squirrel.
		Insert("other_costs").
		Columns("store_id", "category", "description", "amount", "start_date", "end_date", "frequency").
		Values(
			cost.StoreID,
			cost.Category,
			cost.Description,
			cost.Amount,
			cost.StartDate.Format(time.DateOnly),
			endDate,
			cost.Frequency,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&cost.ID, &cost.CreatedAt, &cost.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *otherCostRepository) Update(ctx context.Context, cost *domain.OtherCost) error {
	var endDate interface{}
	if cost.EndDate != nil {
		endDate = cost.EndDate.Format(time.DateOnly)
	}

	query, args, err := squirrel.
		Update("other_costs").
		Set("category", cost.Category).
		Set("description", cost.Description).
		Set("amount", cost.Amount).
		Set("start_date", cost.StartDate.Format(time.DateOnly)).
		Set("end_date", endDate).
		Set("frequency", cost.Frequency).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cost.ID, "store_id": cost.StoreID}).
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

func (r *otherCostRepository) Delete(ctx context.Context, storeID string, costID int64) error {
	query, args, err := squirrel.
		Delete("other_costs").
		Where(squirrel.Eq{"id": costID, "store_id": storeID}).
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

func (r *otherCostRepository) List(ctx context.Context, storeID string) ([]*domain.OtherCost, error) {
	query, args, err := squirrel.
		Select("oc.id, oc.store_id, oc.category, oc.description, oc.amount, oc.start_date, oc.end_date, oc.frequency, oc.created_at, oc.updated_at").
		From(otherCostsTable).
		Where(squirrel.Eq{"oc.store_id": storeID}).
		OrderBy("oc.start_date ASC").
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

	costs := make([]*domain.OtherCost, 0)
	for rows.Next() {
		cost := &domain.OtherCost{}
		var description sql.NullString
		var endDate sql.NullTime

		err := rows.Scan(
			&cost.ID,
			&cost.StoreID,
			&cost.Category,
			&description,
			&cost.Amount,
			&cost.StartDate,
			&endDate,
			&cost.Frequency,
			&cost.CreatedAt,
			&cost.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan other cost: %w", err)
		}

		if description.Valid {
			cost.Description = &description.String
		}
		if endDate.Valid {
			cost.EndDate = &endDate.Time
		}

		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return costs, nil
}

// SumForWindow totals the costs applicable to the half-open window
// [windowStart, windowEnd): one-time costs whose start_date falls inside the
// window, plus every recurring cost whose active period overlaps it.
func (r *otherCostRepository) SumForWindow(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (decimal.Decimal, error) {
	startStr := windowStart.Format(time.DateOnly)
	endStr := windowEnd.Format(time.DateOnly)

	oneTimeSQL, oneTimeArgs, err := squirrel.
		Select("COALESCE(SUM(oc.amount), 0)").
		From(otherCostsTable).
		Where(squirrel.Eq{"oc.store_id": storeID, "oc.frequency": domain.FrequencyOneTime}).
		Where(squirrel.GtOrEq{"oc.start_date": startStr}).
		Where(squirrel.Lt{"oc.start_date": endStr}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build query: %w", err)
	}

	var oneTimeTotal decimal.Decimal
	if err := r.conn.QueryRow(ctx, oneTimeSQL, oneTimeArgs...).Scan(&oneTimeTotal); err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan one-time cost total: %w", err)
	}

	recurringSQL, recurringArgs, err := squirrel.
		Select("COALESCE(SUM(oc.amount), 0)").
		From(otherCostsTable).
		Where(squirrel.Eq{"oc.store_id": storeID}).
		Where(squirrel.NotEq{"oc.frequency": domain.FrequencyOneTime}).
		Where(squirrel.Lt{"oc.start_date": endStr}).
		Where(squirrel.Or{
			squirrel.Eq{"oc.end_date": nil},
			squirrel.GtOrEq{"oc.end_date": startStr},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build query: %w", err)
	}

	var recurringTotal decimal.Decimal
	if err := r.conn.QueryRow(ctx, recurringSQL, recurringArgs...).Scan(&recurringTotal); err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan recurring cost total: %w", err)
	}

	return oneTimeTotal.Add(recurringTotal), nil
}
