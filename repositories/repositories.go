package repositories

import (
	"github.com/IliyanIlievPH/partner-management/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter            ExecutorGetter
	PartnerRepository         PartnerRepository
	LocationRepository        LocationRepository
	CustomerProfileRepository CustomerProfileRepository
	GeocodingRepository       GeocodingRepository
	HealthRepository          HealthRepository
}

func NewRepositories(
	pool *pgxpool.Pool,
	customerProfileConfig infra.CustomerProfileConfig,
	geocodingConfig infra.GeocodingConfig,
) Repositories {
	return Repositories{
		ExecutorGetter:            NewExecutorGetter(pool),
		PartnerRepository:         PartnerRepositoryPostgresql{},
		LocationRepository:        LocationRepositoryPostgresql{},
		CustomerProfileRepository: NewCustomerProfileRepository(customerProfileConfig),
		GeocodingRepository:       NewGeocodingRepository(geocodingConfig),
		HealthRepository:          HealthRepositoryPostgresql{},
	}
}
