package vehicleservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockVehicleRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vehicleRepo := NewMockVehicleRepo(ctrl)
	service := New(vehicleRepo)
	return service, vehicleRepo
}

func TestService_List(t *testing.T) {
	service, vehicleRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Vehicles available", func(t *testing.T) {
		vehicleRepo.EXPECT().
			FindAvailable(ctx, domain.VehicleFilter{}).
			Return([]domain.Vehicle{{ID: 1, Name: "Seat Ibiza"}}, nil)

		vehicles, err := service.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, vehicles, 1)
	})

	t.Run("Empty catalogue is not found", func(t *testing.T) {
		vehicleRepo.EXPECT().FindAvailable(ctx, domain.VehicleFilter{}).Return([]domain.Vehicle{}, nil)

		vehicles, err := service.List(ctx)
		assert.Error(t, err)
		assert.Nil(t, vehicles)
		assert.Equal(t, 404, apperrors.StatusOf(err))
	})

	t.Run("Repository error", func(t *testing.T) {
		vehicleRepo.EXPECT().FindAvailable(ctx, domain.VehicleFilter{}).Return(nil, errors.New("database error"))

		_, err := service.List(ctx)
		assert.Error(t, err)
		assert.Equal(t, 500, apperrors.StatusOf(err))
	})
}

func TestService_Search(t *testing.T) {
	service, vehicleRepo := NewMock(t)
	ctx := context.Background()

	filter := domain.VehicleFilter{NameContains: "ibiza", SortOrder: domain.SortFeeAsc}

	t.Run("Matches found", func(t *testing.T) {
		vehicleRepo.EXPECT().
			FindAvailable(ctx, filter).
			Return([]domain.Vehicle{{ID: 1, Name: "Seat Ibiza"}}, nil)

		vehicles, err := service.Search(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, vehicles, 1)
	})

	t.Run("No matches is not found", func(t *testing.T) {
		vehicleRepo.EXPECT().FindAvailable(ctx, filter).Return([]domain.Vehicle{}, nil)

		_, err := service.Search(ctx, filter)
		assert.Equal(t, 404, apperrors.StatusOf(err))
	})
}

func TestService_GetByID(t *testing.T) {
	service, vehicleRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Vehicle found", func(t *testing.T) {
		vehicleRepo.EXPECT().FindByID(ctx, 3).Return(&domain.Vehicle{ID: 3}, nil)

		vehicle, err := service.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, vehicle.ID)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		vehicleRepo.EXPECT().FindByID(ctx, 99).Return(nil, nil)

		vehicle, err := service.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, vehicle)
		assert.Equal(t, 404, apperrors.StatusOf(err))
	})
}

func TestService_Reserve(t *testing.T) {
	service, vehicleRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Reservation wins", func(t *testing.T) {
		vehicleRepo.EXPECT().Reserve(ctx, 3).Return(true, nil)

		assert.NoError(t, service.Reserve(ctx, 3))
	})

	t.Run("Vehicle already taken", func(t *testing.T) {
		vehicleRepo.EXPECT().Reserve(ctx, 3).Return(false, nil)

		err := service.Reserve(ctx, 3)
		assert.Error(t, err)
		assert.Equal(t, 409, apperrors.StatusOf(err))
	})

	t.Run("Repository error", func(t *testing.T) {
		vehicleRepo.EXPECT().Reserve(ctx, 3).Return(false, errors.New("database error"))

		assert.Error(t, service.Reserve(ctx, 3))
	})
}

func TestService_RentTo(t *testing.T) {
	service, vehicleRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Handover succeeds", func(t *testing.T) {
		vehicleRepo.EXPECT().RentTo(ctx, 1, 3).Return(true, nil)

		assert.NoError(t, service.RentTo(ctx, 1, 3))
	})

	t.Run("Nothing to hand over", func(t *testing.T) {
		vehicleRepo.EXPECT().RentTo(ctx, 1, 3).Return(false, nil)

		err := service.RentTo(ctx, 1, 3)
		assert.Error(t, err)
		assert.Equal(t, 500, apperrors.StatusOf(err))
	})
}

func TestService_ReleaseOwned(t *testing.T) {
	service, vehicleRepo := NewMock(t)
	ctx := context.Background()

	vehicleRepo.EXPECT().ReleaseOwned(ctx, 1).Return(int64(2), nil)

	released, err := service.ReleaseOwned(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), released)
}
