package rentingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockVehicleService, *MockBudgetService, *MockPendingRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vehicleService := NewMockVehicleService(ctrl)
	budgetService := NewMockBudgetService(ctrl)
	pendingRepo := NewMockPendingRepo(ctrl)
	service := New(vehicleService, budgetService, pendingRepo)
	return service, vehicleService, budgetService, pendingRepo
}

func TestService_PlaceHold(t *testing.T) {
	service, vehicleService, _, pendingRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Hold placed and vehicle reserved", func(t *testing.T) {
		vehicleService.EXPECT().GetByID(ctx, 3).Return(&domain.Vehicle{ID: 3}, nil)
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(nil, nil)
		pendingRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, pending *domain.PendingRenting) error {
				assert.Equal(t, "sess-1", pending.SessionID)
				assert.Equal(t, 3, pending.VehicleID)
				assert.Equal(t, 12, pending.Months)
				return nil
			})
		vehicleService.EXPECT().Reserve(ctx, 3).Return(nil)

		err := service.PlaceHold(ctx, "sess-1", 3, 12, 300, 3600)
		assert.NoError(t, err)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		vehicleService.EXPECT().GetByID(ctx, 99).Return(nil, apperrors.NotFound("could not find the requested vehicle"))

		err := service.PlaceHold(ctx, "sess-1", 99, 12, 300, 3600)
		assert.Equal(t, 404, apperrors.StatusOf(err))
	})

	t.Run("Session already holds a renting", func(t *testing.T) {
		vehicleService.EXPECT().GetByID(ctx, 3).Return(&domain.Vehicle{ID: 3}, nil)
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(&domain.PendingRenting{SessionID: "sess-1"}, nil)

		err := service.PlaceHold(ctx, "sess-1", 3, 12, 300, 3600)
		assert.Equal(t, 409, apperrors.StatusOf(err))
	})

	t.Run("Reservation lost after the hold was stored", func(t *testing.T) {
		vehicleService.EXPECT().GetByID(ctx, 3).Return(&domain.Vehicle{ID: 3}, nil)
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(nil, nil)
		pendingRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		vehicleService.EXPECT().Reserve(ctx, 3).Return(apperrors.Conflict("the vehicle is no longer available"))

		err := service.PlaceHold(ctx, "sess-1", 3, 12, 300, 3600)
		assert.Equal(t, 409, apperrors.StatusOf(err))
	})
}

func TestService_CheckHold(t *testing.T) {
	service, _, _, pendingRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Hold exists", func(t *testing.T) {
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(&domain.PendingRenting{SessionID: "sess-1"}, nil)

		exists, err := service.CheckHold(ctx, "sess-1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Hold expired", func(t *testing.T) {
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(nil, nil)

		exists, err := service.CheckHold(ctx, "sess-1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Store error", func(t *testing.T) {
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(nil, errors.New("connection refused"))

		_, err := service.CheckHold(ctx, "sess-1")
		assert.Error(t, err)
	})
}

func TestService_Confirm(t *testing.T) {
	service, vehicleService, budgetService, pendingRepo := NewMock(t)
	ctx := context.Background()

	pending := &domain.PendingRenting{
		SessionID:  "sess-1",
		VehicleID:  3,
		Months:     12,
		MonthlyFee: 300,
		Total:      3600,
	}

	t.Run("Hold turned into a renting", func(t *testing.T) {
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(pending, nil)
		budgetService.EXPECT().AppendRental(ctx, 1, 3, 12, 300.0, 3600.0).Return(&domain.Budget{ID: 1}, nil)
		vehicleService.EXPECT().RentTo(ctx, 1, 3).Return(nil)
		pendingRepo.EXPECT().DeleteBySession(ctx, "sess-1").Return(true, nil)

		assert.NoError(t, service.Confirm(ctx, "sess-1", 1))
	})

	t.Run("Hold already expired", func(t *testing.T) {
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(nil, nil)

		err := service.Confirm(ctx, "sess-1", 1)
		assert.Equal(t, 500, apperrors.StatusOf(err))
	})

	t.Run("Budget update fails before the handover", func(t *testing.T) {
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(pending, nil)
		budgetService.EXPECT().AppendRental(ctx, 1, 3, 12, 300.0, 3600.0).Return(nil, errors.New("database error"))

		assert.Error(t, service.Confirm(ctx, "sess-1", 1))
	})

	t.Run("Handover fails after the budget update", func(t *testing.T) {
		pendingRepo.EXPECT().FindBySession(ctx, "sess-1").Return(pending, nil)
		budgetService.EXPECT().AppendRental(ctx, 1, 3, 12, 300.0, 3600.0).Return(&domain.Budget{ID: 1}, nil)
		vehicleService.EXPECT().RentTo(ctx, 1, 3).Return(apperrors.Internal("the vehicle could not be handed over"))

		assert.Error(t, service.Confirm(ctx, "sess-1", 1))
	})
}

func TestService_CreateDirect(t *testing.T) {
	service, vehicleService, budgetService, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Direct renting", func(t *testing.T) {
		vehicleService.EXPECT().GetByID(ctx, 3).Return(&domain.Vehicle{ID: 3, State: domain.VehicleAvailable}, nil)
		budgetService.EXPECT().AppendRental(ctx, 1, 3, 12, 300.0, 3600.0).Return(&domain.Budget{ID: 1}, nil)
		vehicleService.EXPECT().RentTo(ctx, 1, 3).Return(nil)

		assert.NoError(t, service.CreateDirect(ctx, 1, 3, 12, 300, 3600))
	})

	t.Run("Vehicle already rented", func(t *testing.T) {
		vehicleService.EXPECT().GetByID(ctx, 3).Return(&domain.Vehicle{ID: 3, State: domain.VehicleRented}, nil)

		err := service.CreateDirect(ctx, 1, 3, 12, 300, 3600)
		assert.Equal(t, 409, apperrors.StatusOf(err))
	})
}
