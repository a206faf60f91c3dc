// Package dto defines the wire shapes of the public API. Field names
// follow the published contract and are kept in Spanish.
package dto

import (
	"time"

	"github.com/rentix/rentix/internal/domain"
)

type RegisterRequest struct {
	Username string `json:"nombreUsuario"`
	Email    string `json:"correo"`
	Password string `json:"contrasenya"`
}

type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contrasenya"`
}

type OAuthRequest struct {
	AccessToken string `json:"accessToken"`
}

type ValidationRequest struct {
	Username string `json:"nombreUsuario"`
	Email    string `json:"correo"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type BudgetResponse struct {
	TotalRentals int        `json:"totalAlquileres"`
	TotalSpend   float64    `json:"gastoTotal"`
	MonthlySpend float64    `json:"gastoMensual"`
	LastRentalAt *time.Time `json:"ultimoAlquiler,omitempty"`
}

type RentalItemResponse struct {
	VehicleID        int       `json:"idVehiculo"`
	StartDate        time.Time `json:"fechaInicio"`
	EndDate          time.Time `json:"fechaFin"`
	Months           int       `json:"meses"`
	MonthlyFee       float64   `json:"cuota"`
	TotalCost        float64   `json:"total"`
	ContractedKmYear int       `json:"kmAnyoContratados"`
	ExtraKm          int       `json:"kmExtra"`
	ExtraCosts       float64   `json:"costesExtra"`
}

type ProfileResponse struct {
	Username string               `json:"nombreUsuario"`
	Email    string               `json:"correo"`
	Budget   BudgetResponse       `json:"presupuesto"`
	Rentals  []RentalItemResponse `json:"alquileres"`
}

func NewProfileResponse(user *domain.User, budget *domain.Budget, items []domain.RentalItem) ProfileResponse {
	rentals := make([]RentalItemResponse, 0, len(items))
	for _, item := range items {
		rentals = append(rentals, RentalItemResponse{
			VehicleID:        item.VehicleID,
			StartDate:        item.StartDate,
			EndDate:          item.EndDate,
			Months:           item.Months,
			MonthlyFee:       item.MonthlyFee,
			TotalCost:        item.TotalCost,
			ContractedKmYear: item.ContractedKmYear,
			ExtraKm:          item.ExtraKm,
			ExtraCosts:       item.ExtraCosts,
		})
	}
	return ProfileResponse{
		Username: user.Username,
		Email:    user.Email,
		Budget: BudgetResponse{
			TotalRentals: budget.TotalRentals,
			TotalSpend:   budget.TotalSpend,
			MonthlySpend: budget.MonthlySpend,
			LastRentalAt: budget.LastRentalAt,
		},
		Rentals: rentals,
	}
}
