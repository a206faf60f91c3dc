package domain

import "time"

type VehicleState string

const (
	VehicleAvailable VehicleState = "available"
	VehicleReserved  VehicleState = "reserved"
	VehicleRented    VehicleState = "rented"
)

type Vehicle struct {
	ID            int          `db:"id"`
	Name          string       `db:"name"`
	Year          int          `db:"year"`
	Horsepower    int          `db:"horsepower"`
	Mileage       int          `db:"mileage"`
	FuelType      string       `db:"fuel_type"`
	VehicleType   string       `db:"vehicle_type"`
	Price         float64      `db:"price"`
	ImageURL      string       `db:"image_url"`
	OwnerID       *int         `db:"owner_id"`
	State         VehicleState `db:"state"`
	ReservedUntil *time.Time   `db:"reserved_until"`
}

// VehicleFilter narrows the catalog search. Zero values mean "no constraint".
type VehicleFilter struct {
	NameContains string
	MinYear      int
	MaxPrice     float64
	MinMileage   int
	SortOrder    string
}

const (
	SortNewest      = "newest"
	SortMileageAsc  = "mileage-asc"
	SortMileageDesc = "mileage-desc"
	SortFeeAsc      = "fee-asc"
	SortFeeDesc     = "fee-desc"
)

type User struct {
	ID           int        `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	Active       bool       `db:"active"`
	DeletedAt    *time.Time `db:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Budget struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	TotalRentals int        `db:"total_rentals"`
	TotalSpend   float64    `db:"total_spend"`
	MonthlySpend float64    `db:"monthly_spend"`
	LastRentalAt *time.Time `db:"last_rental_at"`
}

type RentalItem struct {
	ID               int       `db:"id"`
	BudgetID         int       `db:"budget_id"`
	VehicleID        int       `db:"vehicle_id"`
	StartDate        time.Time `db:"start_date"`
	EndDate          time.Time `db:"end_date"`
	Months           int       `db:"months"`
	MonthlyFee       float64   `db:"monthly_fee"`
	TotalCost        float64   `db:"total_cost"`
	ContractedKmYear int       `db:"contracted_km_year"`
	ExtraKm          int       `db:"extra_km"`
	ExtraCosts       float64   `db:"extra_costs"`
}

// PendingRenting is a hold on a vehicle tied to an anonymous browser
// session. The store expires it on its own after a fixed TTL.
type PendingRenting struct {
	SessionID  string    `json:"sessionId"`
	VehicleID  int       `json:"vehicleId"`
	Months     int       `json:"months"`
	MonthlyFee float64   `json:"monthlyFee"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RentalActivity classifies a user's rental history for the
// account-deletion policy.
type RentalActivity int

const (
	RentalActivityNone RentalActivity = iota
	RentalActivityActive
	RentalActivityPast
)

type VerificationCode struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
}
