package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/IliyanIlievPH/partner-management/models"
)

type CustomerProfileRepository struct {
	mock.Mock
}

func (r *CustomerProfileRepository) CreateContactIfNotExists(ctx context.Context,
	contact models.PartnerContact,
) (models.PartnerContactErrorCode, error) {
	args := r.Called(ctx, contact)
	return args.Get(0).(models.PartnerContactErrorCode), args.Error(1)
}

func (r *CustomerProfileRepository) UpdateContact(ctx context.Context,
	contact models.PartnerContact,
) (models.PartnerContactErrorCode, error) {
	args := r.Called(ctx, contact)
	return args.Get(0).(models.PartnerContactErrorCode), args.Error(1)
}

func (r *CustomerProfileRepository) DeleteContact(ctx context.Context,
	locationId string,
) (models.PartnerContactErrorCode, error) {
	args := r.Called(ctx, locationId)
	return args.Get(0).(models.PartnerContactErrorCode), args.Error(1)
}
