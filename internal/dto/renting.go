package dto

// PendingRentingRequest carries the renting terms for both the
// anonymous hold and the direct create route.
type PendingRentingRequest struct {
	VehicleID  int     `json:"idVehiculo"`
	Months     int     `json:"meses"`
	MonthlyFee float64 `json:"cuota"`
	Total      float64 `json:"total"`
}

type CheckPendingsResponse struct {
	Pending bool `json:"pendiente"`
}
