package vehiclerepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/domain"
	"github.com/rentix/rentix/internal/pg"
)

// ReservationTTL is how long a reserved vehicle stays off the market
// before the sweep returns it.
const ReservationTTL = "15 minutes"

const selectColumns = `id, name, year, horsepower, mileage, fuel_type, vehicle_type, price, image_url, owner_id, state, reserved_until`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT ` + selectColumns + ` FROM vehicles WHERE owner_id IS NULL AND state = 'available'`
	var args []any

	if filter.NameContains != "" {
		args = append(args, "%"+filter.NameContains+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.MinYear > 0 {
		args = append(args, filter.MinYear)
		query += fmt.Sprintf(" AND year >= $%d", len(args))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	if filter.MinMileage > 0 {
		args = append(args, filter.MinMileage)
		query += fmt.Sprintf(" AND mileage >= $%d", len(args))
	}

	switch filter.SortOrder {
	case domain.SortNewest:
		query += " ORDER BY year DESC"
	case domain.SortMileageAsc:
		query += " ORDER BY mileage ASC"
	case domain.SortMileageDesc:
		query += " ORDER BY mileage DESC"
	case domain.SortFeeAsc:
		query += " ORDER BY price ASC"
	case domain.SortFeeDesc:
		query += " ORDER BY price DESC"
	default:
		query += " ORDER BY id"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to search vehicles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		err := rows.Scan(&v.ID, &v.Name, &v.Year, &v.Horsepower, &v.Mileage, &v.FuelType, &v.VehicleType, &v.Price, &v.ImageURL, &v.OwnerID, &v.State, &v.ReservedUntil)
		if err != nil {
			zap.L().Error("failed to scan vehicle", zap.Error(err))
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	query := `SELECT ` + selectColumns + ` FROM vehicles WHERE id = $1`
	var v domain.Vehicle
	err := r.db.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.Name, &v.Year, &v.Horsepower, &v.Mileage, &v.FuelType, &v.VehicleType, &v.Price, &v.ImageURL, &v.OwnerID, &v.State, &v.ReservedUntil)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find vehicle", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

// Reserve marks an available vehicle reserved for the next 15 minutes.
// Returns false when the vehicle is no longer on the market.
func (r *Repository) Reserve(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE vehicles
		SET state = 'reserved', reserved_until = now() + interval '` + ReservationTTL + `'
		WHERE id = $1 AND state = 'available' AND owner_id IS NULL
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to reserve vehicle", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ReleaseExpired returns every vehicle whose reservation window has
// passed to the market. Runs from the sweeper, not per request.
func (r *Repository) ReleaseExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE vehicles
		SET state = 'available', reserved_until = NULL
		WHERE state = 'reserved' AND reserved_until <= now()
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("failed to release expired reservations", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) RentTo(ctx context.Context, userID, vehicleID int) (bool, error) {
	query := `
		UPDATE vehicles
		SET owner_id = $1, state = 'rented', reserved_until = NULL
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, userID, vehicleID)
	if err != nil {
		zap.L().Error("failed to rent vehicle", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ReleaseOwned unassigns every vehicle owned by the user, returning them
// to the market. Used when an account with past rentals is deleted.
func (r *Repository) ReleaseOwned(ctx context.Context, userID int) (int64, error) {
	query := `
		UPDATE vehicles
		SET owner_id = NULL, state = 'available'
		WHERE owner_id = $1
	`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to release owned vehicles", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
