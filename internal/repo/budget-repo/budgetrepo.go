package budgetrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/domain"
	"github.com/rentix/rentix/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Budget, error) {
	query := `
        SELECT id, user_id, total_rentals, total_spend, monthly_spend, last_rental_at
        FROM budgets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var budget domain.Budget
	err := row.Scan(&budget.ID, &budget.UserID, &budget.TotalRentals, &budget.TotalSpend, &budget.MonthlySpend, &budget.LastRentalAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user budget", zap.Error(err))
		return nil, err
	}
	return &budget, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Budget, error) {
	query := `
        INSERT INTO budgets (user_id, total_rentals, total_spend, monthly_spend)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, total_rentals, total_spend, monthly_spend, last_rental_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var budget domain.Budget
	err := row.Scan(&budget.ID, &budget.UserID, &budget.TotalRentals, &budget.TotalSpend, &budget.MonthlySpend, &budget.LastRentalAt)
	if err != nil {
		zap.L().Error("failed to create user budget", zap.Error(err))
		return nil, err
	}
	return &budget, nil
}

func (r *Repository) Delete(ctx context.Context, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1`, userID)
	if err != nil {
		zap.L().Error("failed to delete user budget", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AppendRental records a rental line item and bumps the aggregates in one
// transaction. The aggregates are maintained incrementally, never
// recomputed from the items. Returns nil when the user has no budget row.
func (r *Repository) AppendRental(ctx context.Context, userID int, item *domain.RentalItem) (*domain.Budget, error) {
	var updated domain.Budget
	insertQuery := `
		INSERT INTO rental_items (budget_id, vehicle_id, start_date, end_date, months, monthly_fee, total_cost, contracted_km_year, extra_km, extra_costs)
		SELECT b.id, $2, $3, $4, $5, $6, $7, $8, $9, $10
		FROM budgets b
		WHERE b.user_id = $1
		RETURNING id
	`
	updateQuery := `
		UPDATE budgets
		SET total_rentals = total_rentals + 1,
			total_spend = total_spend + $2,
			monthly_spend = monthly_spend + $3,
			last_rental_at = now()
		WHERE user_id = $1
		RETURNING id, user_id, total_rentals, total_spend, monthly_spend, last_rental_at
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertQuery,
			userID, item.VehicleID, item.StartDate, item.EndDate, item.Months,
			item.MonthlyFee, item.TotalCost, item.ContractedKmYear, item.ExtraKm, item.ExtraCosts,
		).Scan(&item.ID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return pgx.ErrNoRows
			}
			zap.L().Error("failed to append rental item", zap.Error(err))
			return err
		}

		row := r.db.QueryRow(ctx, updateQuery, userID, item.TotalCost, item.MonthlyFee)
		if err := row.Scan(&updated.ID, &updated.UserID, &updated.TotalRentals, &updated.TotalSpend, &updated.MonthlySpend, &updated.LastRentalAt); err != nil {
			zap.L().Error("failed to update budget aggregates", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) ListItems(ctx context.Context, userID int) ([]domain.RentalItem, error) {
	query := `
		SELECT ri.id, ri.budget_id, ri.vehicle_id, ri.start_date, ri.end_date, ri.months, ri.monthly_fee, ri.total_cost, ri.contracted_km_year, ri.extra_km, ri.extra_costs
		FROM rental_items ri
		JOIN budgets b ON b.id = ri.budget_id
		WHERE b.user_id = $1
		ORDER BY ri.start_date
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list rental items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		var item domain.RentalItem
		err := rows.Scan(&item.ID, &item.BudgetID, &item.VehicleID, &item.StartDate, &item.EndDate, &item.Months, &item.MonthlyFee, &item.TotalCost, &item.ContractedKmYear, &item.ExtraKm, &item.ExtraCosts)
		if err != nil {
			zap.L().Error("failed to scan rental item", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// RentalSummary reports how many line items the user's budget holds and
// the latest contract end date. found is false when no budget row exists.
func (r *Repository) RentalSummary(ctx context.Context, userID int) (count int, latestEnd *time.Time, found bool, err error) {
	query := `
		SELECT COUNT(ri.id), MAX(ri.end_date)
		FROM budgets b
		LEFT JOIN rental_items ri ON ri.budget_id = b.id
		WHERE b.user_id = $1
		GROUP BY b.id
	`
	err = r.db.QueryRow(ctx, query, userID).Scan(&count, &latestEnd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil, false, nil
		}
		zap.L().Error("failed to summarize rentals", zap.Error(err))
		return 0, nil, false, err
	}
	return count, latestEnd, true, nil
}
