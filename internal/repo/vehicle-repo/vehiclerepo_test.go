package vehiclerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/rentix/rentix/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func vehicleColumns() []string {
	return []string{"id", "name", "year", "horsepower", "mileage", "fuel_type", "vehicle_type", "price", "image_url", "owner_id", "state", "reserved_until"}
}

func TestRepository_FindAvailable(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		filter    domain.VehicleFilter
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:   "No filter lists available vehicles by id",
			filter: domain.VehicleFilter{},
			mockSetup: func() {
				rows := pgxmock.NewRows(vehicleColumns()).
					AddRow(1, "Seat Leon", 2021, 130, 25000, "gasoline", "compact", 320.0, "", nil, domain.VehicleAvailable, nil).
					AddRow(2, "Renault Clio", 2019, 90, 60000, "diesel", "compact", 250.0, "", nil, domain.VehicleAvailable, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + selectColumns + ` FROM vehicles WHERE owner_id IS NULL AND state = 'available' ORDER BY id`)).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Filter narrows by name, year, price, mileage",
			filter: domain.VehicleFilter{
				NameContains: "leon",
				MinYear:      2020,
				MaxPrice:     400,
				MinMileage:   10000,
				SortOrder:    domain.SortFeeAsc,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows(vehicleColumns()).
					AddRow(1, "Seat Leon", 2021, 130, 25000, "gasoline", "compact", 320.0, "", nil, domain.VehicleAvailable, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM vehicles WHERE owner_id IS NULL AND state = 'available' AND name ILIKE $1 AND year >= $2 AND price <= $3 AND mileage >= $4 ORDER BY price ASC`)).
					WithArgs("%leon%", 2020, 400.0, 10000).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name:   "No matches yields empty slice, not an error",
			filter: domain.VehicleFilter{NameContains: "ferrari"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM vehicles WHERE owner_id IS NULL AND state = 'available' AND name ILIKE $1 ORDER BY id`)).
					WithArgs("%ferrari%").
					WillReturnRows(pgxmock.NewRows(vehicleColumns()))
			},
			count: 0,
		},
		{
			name:   "Database error",
			filter: domain.VehicleFilter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + selectColumns + ` FROM vehicles WHERE owner_id IS NULL AND state = 'available' ORDER BY id`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			vehicles, err := repo.FindAvailable(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, vehicles, tt.count)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Vehicle found", func(t *testing.T) {
		reservedUntil := time.Now().Add(10 * time.Minute)
		rows := pgxmock.NewRows(vehicleColumns()).
			AddRow(3, "Fiat 500", 2022, 70, 5000, "hybrid", "city", 280.0, "", nil, domain.VehicleReserved, &reservedUntil)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM vehicles WHERE id = $1`)).
			WithArgs(3).
			WillReturnRows(rows)

		v, err := repo.FindByID(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Fiat 500", v.Name)
		assert.Equal(t, domain.VehicleReserved, v.State)
		assert.NotNil(t, v.ReservedUntil)
	})

	t.Run("Vehicle missing returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM vehicles WHERE id = $1`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		v, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestRepository_Reserve(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		vehicleID int
		mockSetup func()
		expectOk  bool
		expectErr bool
	}{
		{
			name:      "Available vehicle reserved",
			vehicleID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE vehicles`)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOk: true,
		},
		{
			name:      "Already gone yields no rows",
			vehicleID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE vehicles`)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOk: false,
		},
		{
			name:      "Database error",
			vehicleID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE vehicles`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.Reserve(context.Background(), tt.vehicleID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectOk, ok)
			}
		})
	}
}

func TestRepository_ReleaseExpired(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE vehicles`)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	released, err := repo.ReleaseExpired(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), released)
}

func TestRepository_RentTo(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE vehicles`)).
		WithArgs(7, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.RentTo(context.Background(), 7, 1)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_ReleaseOwned(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE vehicles`)).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	released, err := repo.ReleaseOwned(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), released)
}
