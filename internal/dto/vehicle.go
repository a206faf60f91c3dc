package dto

import "github.com/rentix/rentix/internal/domain"

type VehicleResponse struct {
	ID          int     `json:"_id"`
	Name        string  `json:"nombre"`
	Year        int     `json:"anyo"`
	Price       float64 `json:"precio"`
	Mileage     int     `json:"kilometros"`
	Horsepower  int     `json:"cv"`
	ImageURL    string  `json:"urlImagen"`
	VehicleType string  `json:"tipoVehiculo"`
	FuelType    string  `json:"combustible"`
}

func NewVehicleResponse(vehicle *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          vehicle.ID,
		Name:        vehicle.Name,
		Year:        vehicle.Year,
		Price:       vehicle.Price,
		Mileage:     vehicle.Mileage,
		Horsepower:  vehicle.Horsepower,
		ImageURL:    vehicle.ImageURL,
		VehicleType: vehicle.VehicleType,
		FuelType:    vehicle.FuelType,
	}
}

func NewVehicleListResponse(vehicles []domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, NewVehicleResponse(&vehicles[i]))
	}
	return out
}
