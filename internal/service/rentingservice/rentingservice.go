package rentingservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
)

type VehicleService interface {
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)
	Reserve(ctx context.Context, id int) error
	RentTo(ctx context.Context, userID, vehicleID int) error
}

type BudgetService interface {
	AppendRental(ctx context.Context, userID, vehicleID, months int, monthlyFee, total float64) (*domain.Budget, error)
}

type PendingRepo interface {
	Create(ctx context.Context, pending *domain.PendingRenting) error
	FindBySession(ctx context.Context, sessionID string) (*domain.PendingRenting, error)
	DeleteBySession(ctx context.Context, sessionID string) (bool, error)
}

type Service struct {
	vehicleService VehicleService
	budgetService  BudgetService
	pendingRepo    PendingRepo
}

func New(vehicleService VehicleService, budgetService BudgetService, pendingRepo PendingRepo) *Service {
	return &Service{
		vehicleService: vehicleService,
		budgetService:  budgetService,
		pendingRepo:    pendingRepo,
	}
}

// PlaceHold parks a renting on the session and reserves the vehicle.
// The hold and the reservation are written to different stores in
// sequence, so the vehicle flip can still fail after the hold exists;
// the hold then expires on its own and the sweeper frees the vehicle.
func (s *Service) PlaceHold(ctx context.Context, sessionID string, vehicleID, months int, monthlyFee, total float64) error {
	if _, err := s.vehicleService.GetByID(ctx, vehicleID); err != nil {
		return err
	}

	existing, err := s.pendingRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return apperrors.Wrap(err, "could not check pending rentings")
	}
	if existing != nil {
		return apperrors.Conflict("there is already a renting in process for this session")
	}

	pending := &domain.PendingRenting{
		SessionID:  sessionID,
		VehicleID:  vehicleID,
		Months:     months,
		MonthlyFee: monthlyFee,
		Total:      total,
	}
	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		return apperrors.Wrap(err, "could not store the pending renting")
	}

	if err := s.vehicleService.Reserve(ctx, vehicleID); err != nil {
		zap.L().Warn("hold stored but vehicle reservation failed",
			zap.String("sessionID", sessionID),
			zap.Int("vehicleID", vehicleID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// CheckHold reports whether the session still has a live hold.
func (s *Service) CheckHold(ctx context.Context, sessionID string) (bool, error) {
	pending, err := s.pendingRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return false, apperrors.Wrap(err, "could not check pending rentings")
	}
	return pending != nil, nil
}

// Confirm turns the session's hold into a finished renting: the budget
// takes the line item, the vehicle moves to the user, the hold is
// dropped. Each step can fail independently of the previous ones.
func (s *Service) Confirm(ctx context.Context, sessionID string, userID int) error {
	pending, err := s.pendingRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return apperrors.Wrap(err, "could not check pending rentings")
	}
	if pending == nil {
		return apperrors.Internal("no pending rentings were found, please start over")
	}

	if _, err := s.budgetService.AppendRental(ctx, userID, pending.VehicleID, pending.Months, pending.MonthlyFee, pending.Total); err != nil {
		return err
	}

	if err := s.vehicleService.RentTo(ctx, userID, pending.VehicleID); err != nil {
		return err
	}

	if _, err := s.pendingRepo.DeleteBySession(ctx, sessionID); err != nil {
		zap.L().Warn("renting confirmed but hold not removed",
			zap.String("sessionID", sessionID),
			zap.Error(err),
		)
	}
	return nil
}

// CreateDirect rents a vehicle to an authenticated user without a
// prior hold.
func (s *Service) CreateDirect(ctx context.Context, userID, vehicleID, months int, monthlyFee, total float64) error {
	vehicle, err := s.vehicleService.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.State == domain.VehicleRented {
		return apperrors.Conflict("the vehicle is already rented")
	}

	if _, err := s.budgetService.AppendRental(ctx, userID, vehicleID, months, monthlyFee, total); err != nil {
		return err
	}
	return s.vehicleService.RentTo(ctx, userID, vehicleID)
}
