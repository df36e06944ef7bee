package usecases

import (
	"context"
	"log/slog"
	"time"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/pure_utils"
	"github.com/IliyanIlievPH/partner-management/repositories"
	"github.com/IliyanIlievPH/partner-management/usecases/executor_factory"
	"github.com/IliyanIlievPH/partner-management/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hashicorp/go-set/v2"
)

type PartnerUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	partnerRepository  repositories.PartnerRepository
	locationRepository repositories.LocationRepository
	locationUsecase    *LocationUsecase
}

func (usecase *PartnerUsecase) ListPartners(
	ctx context.Context,
	filters models.PartnerFilters,
	pagination models.Pagination,
) (models.PartnerListPage, error) {
	exec := usecase.executorFactory.NewExecutor()
	page, err := usecase.partnerRepository.ListPartners(ctx, exec, filters,
		pagination.WithDefaults())
	if err != nil {
		return models.PartnerListPage{}, err
	}

	for i := range page.Partners {
		locations, err := usecase.locationRepository.ListLocationsOfPartner(
			ctx, exec, page.Partners[i].Id)
		if err != nil {
			return models.PartnerListPage{}, err
		}
		page.Partners[i].Locations = locations
	}
	return page, nil
}

func (usecase *PartnerUsecase) GetPartnerById(ctx context.Context, partnerId string) (models.Partner, error) {
	exec := usecase.executorFactory.NewExecutor()

	partner, err := usecase.partnerRepository.GetPartnerById(ctx, exec, partnerId)
	if err != nil {
		return models.Partner{}, err
	}
	partner.Locations, err = usecase.locationRepository.ListLocationsOfPartner(ctx, exec, partner.Id)
	return partner, err
}

func (usecase *PartnerUsecase) GetPartnerByClientId(ctx context.Context, clientId string) (models.Partner, error) {
	exec := usecase.executorFactory.NewExecutor()

	partner, err := usecase.partnerRepository.GetPartnerByClientId(ctx, exec, clientId)
	if err != nil {
		return models.Partner{}, err
	}
	partner.Locations, err = usecase.locationRepository.ListLocationsOfPartner(ctx, exec, partner.Id)
	return partner, err
}

func (usecase *PartnerUsecase) GetPartnerByLocationId(ctx context.Context, locationId string) (models.Partner, error) {
	exec := usecase.executorFactory.NewExecutor()

	location, err := usecase.locationRepository.GetLocationById(ctx, exec, locationId)
	if err != nil {
		return models.Partner{}, err
	}
	partner, err := usecase.partnerRepository.GetPartnerById(ctx, exec, location.PartnerId)
	if err != nil {
		return models.Partner{}, err
	}
	partner.Locations, err = usecase.locationRepository.ListLocationsOfPartner(ctx, exec, partner.Id)
	return partner, err
}

// CreatePartner registers a new partner together with its locations. The
// contact person data is pushed to the customer profile service before
// anything is persisted locally, so a failed registration leaves no trace.
func (usecase *PartnerUsecase) CreatePartner(ctx context.Context, partner models.Partner) (models.Partner, error) {
	logger := utils.LoggerFromContext(ctx)

	if partner.ClientId != nil {
		if err := usecase.checkClientIdAvailable(ctx, *partner.ClientId, ""); err != nil {
			return models.Partner{}, err
		}
	}

	partner.Id = uuid.NewString()
	partner.CreatedAt = time.Now()

	locations, err := usecase.locationUsecase.CreateLocationsForNewPartner(ctx, partner)
	if err != nil {
		return models.Partner{}, err
	}
	partner.Locations = locations

	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		if err := usecase.partnerRepository.CreatePartner(ctx, tx, partner); err != nil {
			return err
		}
		for _, location := range partner.Locations {
			if err := usecase.locationRepository.CreateLocation(ctx, tx, location); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Partner{}, err
	}

	logger.InfoContext(ctx, "Partner created",
		slog.String("partner_id", partner.Id),
		slog.String("name", partner.Name))
	return partner, nil
}

// UpdatePartner replaces the partner's scalar attributes and reconciles its
// location set against the submitted one. The remote contact person sync
// happens before the local write, so a failed sync leaves the stored state
// untouched.
func (usecase *PartnerUsecase) UpdatePartner(ctx context.Context, partner models.Partner) (models.Partner, error) {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	existing, err := usecase.partnerRepository.GetPartnerById(ctx, exec, partner.Id)
	if err != nil {
		return models.Partner{}, err
	}
	if partner.ClientId != nil {
		if err := usecase.checkClientIdAvailable(ctx, *partner.ClientId, partner.Id); err != nil {
			return models.Partner{}, err
		}
	}

	partner.CreatedBy = existing.CreatedBy
	partner.CreatedAt = existing.CreatedAt

	existingLocations, err := usecase.locationRepository.ListLocationsOfPartner(ctx, exec, partner.Id)
	if err != nil {
		return models.Partner{}, err
	}

	processedLocations, err := usecase.locationUsecase.ReconcileLocations(
		ctx, partner, partner.Locations, existingLocations)
	if err != nil {
		return models.Partner{}, err
	}
	partner.Locations = processedLocations

	existingIds := set.From(pure_utils.Map(existingLocations,
		func(l models.Location) string { return l.Id }))
	processedIds := set.From(pure_utils.Map(processedLocations,
		func(l models.Location) string { return l.Id }))

	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		if err := usecase.partnerRepository.UpdatePartner(ctx, tx, partner); err != nil {
			return err
		}
		for _, location := range existingLocations {
			if !processedIds.Contains(location.Id) {
				if err := usecase.locationRepository.DeleteLocation(ctx, tx, location.Id); err != nil {
					return err
				}
			}
		}
		for _, location := range processedLocations {
			if existingIds.Contains(location.Id) {
				if err := usecase.locationRepository.UpdateLocation(ctx, tx, location); err != nil {
					return err
				}
			} else {
				if err := usecase.locationRepository.CreateLocation(ctx, tx, location); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return models.Partner{}, err
	}

	logger.InfoContext(ctx, "Partner updated",
		slog.String("partner_id", partner.Id),
		slog.String("name", partner.Name))
	return partner, nil
}

// DeletePartner removes the partner and all of its locations. The contact
// person records are cleaned up afterwards, best effort: the partner is
// gone either way.
func (usecase *PartnerUsecase) DeletePartner(ctx context.Context, partnerId string) error {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	partner, err := usecase.partnerRepository.GetPartnerById(ctx, exec, partnerId)
	if err != nil {
		return err
	}
	locations, err := usecase.locationRepository.ListLocationsOfPartner(ctx, exec, partnerId)
	if err != nil {
		return err
	}

	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		return usecase.partnerRepository.DeletePartner(ctx, tx, partnerId)
	})
	if err != nil {
		return err
	}

	usecase.locationUsecase.DeleteContactsForLocations(ctx, locations)

	logger.InfoContext(ctx, "Partner deleted",
		slog.String("partner_id", partner.Id),
		slog.String("name", partner.Name))
	return nil
}

func (usecase *PartnerUsecase) checkClientIdAvailable(ctx context.Context, clientId, selfId string) error {
	exec := usecase.executorFactory.NewExecutor()

	holder, err := usecase.partnerRepository.GetPartnerByClientId(ctx, exec, clientId)
	if errors.Is(err, models.NotFoundError) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder.Id != selfId {
		return models.ErrPartnerClientIdAlreadyExists
	}
	return nil
}
