package budgetservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
)

// ContractedKmPerYear is the default mileage allowance written on every
// new rental line item.
const ContractedKmPerYear = 20000

type BudgetRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Budget, error)
	Create(ctx context.Context, userID int) (*domain.Budget, error)
	Delete(ctx context.Context, userID int) (bool, error)
	AppendRental(ctx context.Context, userID int, item *domain.RentalItem) (*domain.Budget, error)
	ListItems(ctx context.Context, userID int) ([]domain.RentalItem, error)
	RentalSummary(ctx context.Context, userID int) (count int, latestEnd *time.Time, found bool, err error)
}

type Service struct {
	budgetRepo BudgetRepo
}

func New(budgetRepo BudgetRepo) *Service {
	return &Service{
		budgetRepo: budgetRepo,
	}
}

func (s *Service) GetBudget(ctx context.Context, userID int) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get budget", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not fetch the budget")
	}
	if budget == nil {
		return nil, apperrors.NotFound("there is no budget for the current user")
	}
	return budget, nil
}

func (s *Service) CreateBudget(ctx context.Context, userID int) (*domain.Budget, error) {
	budget, err := s.budgetRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create budget", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not create the budget")
	}
	return budget, nil
}

func (s *Service) DeleteBudget(ctx context.Context, userID int) error {
	if _, err := s.budgetRepo.Delete(ctx, userID); err != nil {
		zap.L().Error("failed to delete budget", zap.Error(err))
		return apperrors.Wrap(err, "could not delete the budget")
	}
	return nil
}

// AppendRental writes a line item with the contract window starting now
// and ending months calendar months later, then bumps the aggregates.
func (s *Service) AppendRental(ctx context.Context, userID, vehicleID, months int, monthlyFee, total float64) (*domain.Budget, error) {
	start := time.Now()
	item := &domain.RentalItem{
		VehicleID:        vehicleID,
		StartDate:        start,
		EndDate:          start.AddDate(0, months, 0),
		Months:           months,
		MonthlyFee:       monthlyFee,
		TotalCost:        total,
		ContractedKmYear: ContractedKmPerYear,
	}

	budget, err := s.budgetRepo.AppendRental(ctx, userID, item)
	if err != nil {
		zap.L().Error("failed to append rental", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not modify the budget")
	}
	if budget == nil {
		return nil, apperrors.Internal("no budget found to add the vehicle to")
	}
	return budget, nil
}

func (s *Service) ListItems(ctx context.Context, userID int) ([]domain.RentalItem, error) {
	items, err := s.budgetRepo.ListItems(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list rental items", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not fetch rented vehicles")
	}
	return items, nil
}

// RentalActivity drives the account-deletion policy: NONE when the user
// never rented, ACTIVE while any contract is still running, PAST
// otherwise.
func (s *Service) RentalActivity(ctx context.Context, userID int) (domain.RentalActivity, error) {
	count, latestEnd, found, err := s.budgetRepo.RentalSummary(ctx, userID)
	if err != nil {
		zap.L().Error("failed to check rental activity", zap.Error(err))
		return domain.RentalActivityNone, apperrors.Wrap(err, "could not check active rentals")
	}
	if !found {
		return domain.RentalActivityNone, apperrors.Internal("no budget found while checking active rentals")
	}
	if count == 0 || latestEnd == nil {
		return domain.RentalActivityNone, nil
	}
	if !latestEnd.Before(time.Now()) {
		return domain.RentalActivityActive, nil
	}
	return domain.RentalActivityPast, nil
}
