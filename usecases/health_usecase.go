package usecases

import (
	"context"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/repositories"
	"github.com/IliyanIlievPH/partner-management/usecases/executor_factory"
)

type HealthUsecase struct {
	executorFactory  executor_factory.ExecutorFactory
	healthRepository repositories.HealthRepository
}

func (u *HealthUsecase) GetHealthStatus(ctx context.Context) models.HealthStatus {
	err := u.healthRepository.Liveness(ctx, u.executorFactory.NewExecutor())
	return models.HealthStatus{
		Statuses: []models.HealthItemStatus{
			{Name: models.DatabaseHealthItemName, Status: err == nil},
		},
	}
}

func (u *HealthUsecase) Liveness(ctx context.Context) error {
	return u.healthRepository.Liveness(ctx, u.executorFactory.NewExecutor())
}
