package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/repositories"
)

type LocationRepository struct {
	mock.Mock
}

func (r *LocationRepository) GetLocationById(ctx context.Context, exec repositories.Executor,
	locationId string,
) (models.Location, error) {
	args := r.Called(ctx, exec, locationId)
	return args.Get(0).(models.Location), args.Error(1)
}

func (r *LocationRepository) GetLocationByExternalId(ctx context.Context, exec repositories.Executor,
	externalId string,
) (models.Location, error) {
	args := r.Called(ctx, exec, externalId)
	return args.Get(0).(models.Location), args.Error(1)
}

func (r *LocationRepository) ListLocationsOfPartner(ctx context.Context, exec repositories.Executor,
	partnerId string,
) ([]models.Location, error) {
	args := r.Called(ctx, exec, partnerId)
	return args.Get(0).([]models.Location), args.Error(1)
}

func (r *LocationRepository) ListCountryIso3Codes(ctx context.Context, exec repositories.Executor) ([]string, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]string), args.Error(1)
}

func (r *LocationRepository) AreExternalIdsNotUnique(ctx context.Context, exec repositories.Executor,
	partnerId string, externalIds []string,
) (bool, error) {
	args := r.Called(ctx, exec, partnerId, externalIds)
	return args.Bool(0), args.Error(1)
}

func (r *LocationRepository) CreateLocation(ctx context.Context, exec repositories.Executor,
	location models.Location,
) error {
	args := r.Called(ctx, exec, location)
	return args.Error(0)
}

func (r *LocationRepository) UpdateLocation(ctx context.Context, exec repositories.Executor,
	location models.Location,
) error {
	args := r.Called(ctx, exec, location)
	return args.Error(0)
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, exec repositories.Executor,
	locationId string,
) error {
	args := r.Called(ctx, exec, locationId)
	return args.Error(0)
}
