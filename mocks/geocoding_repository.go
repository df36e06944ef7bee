package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type GeocodingRepository struct {
	mock.Mock
}

func (r *GeocodingRepository) GetCountryIso3Code(ctx context.Context,
	latitude, longitude float64,
) (*string, error) {
	args := r.Called(ctx, latitude, longitude)
	return args.Get(0).(*string), args.Error(1)
}
