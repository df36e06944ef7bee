package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/repositories"
)

type PartnerRepository struct {
	mock.Mock
}

func (r *PartnerRepository) GetPartnerById(ctx context.Context, exec repositories.Executor,
	partnerId string,
) (models.Partner, error) {
	args := r.Called(ctx, exec, partnerId)
	return args.Get(0).(models.Partner), args.Error(1)
}

func (r *PartnerRepository) GetPartnerByClientId(ctx context.Context, exec repositories.Executor,
	clientId string,
) (models.Partner, error) {
	args := r.Called(ctx, exec, clientId)
	return args.Get(0).(models.Partner), args.Error(1)
}

func (r *PartnerRepository) ListPartners(ctx context.Context, exec repositories.Executor,
	filters models.PartnerFilters, pagination models.Pagination,
) (models.PartnerListPage, error) {
	args := r.Called(ctx, exec, filters, pagination)
	return args.Get(0).(models.PartnerListPage), args.Error(1)
}

func (r *PartnerRepository) CreatePartner(ctx context.Context, exec repositories.Executor,
	partner models.Partner,
) error {
	args := r.Called(ctx, exec, partner)
	return args.Error(0)
}

func (r *PartnerRepository) UpdatePartner(ctx context.Context, exec repositories.Executor,
	partner models.Partner,
) error {
	args := r.Called(ctx, exec, partner)
	return args.Error(0)
}

func (r *PartnerRepository) DeletePartner(ctx context.Context, exec repositories.Executor,
	partnerId string,
) error {
	args := r.Called(ctx, exec, partnerId)
	return args.Error(0)
}
