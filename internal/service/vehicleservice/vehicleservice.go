package vehicleservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
)

type VehicleRepo interface {
	FindAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	FindByID(ctx context.Context, id int) (*domain.Vehicle, error)
	Reserve(ctx context.Context, id int) (bool, error)
	RentTo(ctx context.Context, userID, vehicleID int) (bool, error)
	ReleaseOwned(ctx context.Context, userID int) (int64, error)
}

type Service struct {
	vehicleRepo VehicleRepo
}

func New(vehicleRepo VehicleRepo) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
	}
}

// List returns every vehicle currently open for renting. An empty
// catalogue is reported as not found, matching the public API contract.
func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.FindAvailable(ctx, domain.VehicleFilter{})
	if err != nil {
		zap.L().Error("failed to list vehicles", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not fetch vehicles")
	}
	if len(vehicles) == 0 {
		return nil, apperrors.NotFound("there are no vehicles available")
	}
	return vehicles, nil
}

// Search applies the filter; no matches is reported as not found rather
// than an empty list.
func (s *Service) Search(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.FindAvailable(ctx, filter)
	if err != nil {
		zap.L().Error("failed to search vehicles", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not fetch vehicles")
	}
	if len(vehicles) == 0 {
		return nil, apperrors.NotFound("no vehicles matched the requested filters")
	}
	return vehicles, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get vehicle", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not fetch the vehicle")
	}
	if vehicle == nil {
		return nil, apperrors.NotFound("could not find the requested vehicle")
	}
	return vehicle, nil
}

// Reserve flips the vehicle to reserved; losing the race to another
// session is a conflict, not a server fault.
func (s *Service) Reserve(ctx context.Context, id int) error {
	ok, err := s.vehicleRepo.Reserve(ctx, id)
	if err != nil {
		zap.L().Error("failed to reserve vehicle", zap.Error(err))
		return apperrors.Wrap(err, "could not reserve the vehicle")
	}
	if !ok {
		return apperrors.Conflict("the vehicle is no longer available")
	}
	return nil
}

func (s *Service) RentTo(ctx context.Context, userID, vehicleID int) error {
	ok, err := s.vehicleRepo.RentTo(ctx, userID, vehicleID)
	if err != nil {
		zap.L().Error("failed to rent vehicle", zap.Error(err))
		return apperrors.Wrap(err, "could not rent the vehicle")
	}
	if !ok {
		return apperrors.Internal("the vehicle could not be handed over")
	}
	return nil
}

// ReleaseOwned frees every vehicle held by the user. Used when an
// account is removed.
func (s *Service) ReleaseOwned(ctx context.Context, userID int) (int64, error) {
	released, err := s.vehicleRepo.ReleaseOwned(ctx, userID)
	if err != nil {
		zap.L().Error("failed to release owned vehicles", zap.Error(err))
		return 0, apperrors.Wrap(err, "could not release the user's vehicles")
	}
	return released, nil
}
