package usecases

import (
	"github.com/IliyanIlievPH/partner-management/repositories"
	"github.com/IliyanIlievPH/partner-management/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
}

func NewUsecases(repositories repositories.Repositories) Usecases {
	return Usecases{
		Repositories: repositories,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLocationUsecase() *LocationUsecase {
	return &LocationUsecase{
		executorFactory:           usecases.NewExecutorFactory(),
		locationRepository:        usecases.Repositories.LocationRepository,
		customerProfileRepository: usecases.Repositories.CustomerProfileRepository,
		geocodingRepository:       usecases.Repositories.GeocodingRepository,
	}
}

func (usecases *Usecases) NewPartnerUsecase() *PartnerUsecase {
	return &PartnerUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		partnerRepository:  usecases.Repositories.PartnerRepository,
		locationRepository: usecases.Repositories.LocationRepository,
		locationUsecase:    usecases.NewLocationUsecase(),
	}
}

func (usecases *Usecases) NewHealthUsecase() HealthUsecase {
	return HealthUsecase{
		executorFactory:  usecases.NewExecutorFactory(),
		healthRepository: usecases.Repositories.HealthRepository,
	}
}
