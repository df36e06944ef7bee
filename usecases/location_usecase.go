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

	"github.com/google/uuid"
	"github.com/hashicorp/go-set/v2"
	"github.com/mmcloughlin/geohash"
	"golang.org/x/sync/errgroup"
)

type LocationUsecase struct {
	executorFactory           executor_factory.ExecutorFactory
	locationRepository        repositories.LocationRepository
	customerProfileRepository repositories.CustomerProfileRepository
	geocodingRepository       repositories.GeocodingRepository
}

func (usecase *LocationUsecase) GetLocationById(ctx context.Context, locationId string) (models.Location, error) {
	exec := usecase.executorFactory.NewExecutor()
	return usecase.locationRepository.GetLocationById(ctx, exec, locationId)
}

func (usecase *LocationUsecase) GetLocationByExternalId(ctx context.Context, externalId string) (models.Location, error) {
	exec := usecase.executorFactory.NewExecutor()
	return usecase.locationRepository.GetLocationByExternalId(ctx, exec, externalId)
}

func (usecase *LocationUsecase) GetCountryIso3CodeForAllLocations(ctx context.Context) ([]string, error) {
	exec := usecase.executorFactory.NewExecutor()
	return usecase.locationRepository.ListCountryIso3Codes(ctx, exec)
}

// CreateLocationsForNewPartner prepares and registers the contact person of
// every location of a freshly created partner: assigns ids, enriches the
// coordinates and pushes the contact person data to the customer profile
// service. The registration batch fails as a unit. No location is persisted
// here; the caller stores the returned set.
func (usecase *LocationUsecase) CreateLocationsForNewPartner(
	ctx context.Context,
	partner models.Partner,
) ([]models.Location, error) {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	externalIds := pure_utils.Map(partner.Locations,
		func(l models.Location) string { return l.ExternalId })
	notUnique, err := usecase.locationRepository.AreExternalIdsNotUnique(
		ctx, exec, partner.Id, externalIds)
	if err != nil {
		return nil, err
	}
	if notUnique {
		return nil, models.ErrLocationExternalIdNotUnique
	}

	createdLocations := make([]models.Location, len(partner.Locations))
	for i, location := range partner.Locations {
		location.Id = uuid.NewString()
		location.PartnerId = partner.Id
		location.CreatedBy = partner.CreatedBy
		location.CreatedAt = time.Now()
		if err := usecase.enrichLocation(ctx, &location); err != nil {
			return nil, err
		}

		logger.InfoContext(ctx, "Location creating",
			slog.String("location_id", location.Id),
			slog.String("external_id", location.ExternalId))

		createdLocations[i] = location
	}

	createResults, err := usecase.syncContacts(ctx, createdLocations,
		usecase.customerProfileRepository.CreateContactIfNotExists)
	if err != nil {
		return nil, err
	}
	if failed(createResults) {
		return nil, models.NewContactSyncError(models.ErrContactRegistrationFailed, createResults)
	}

	return createdLocations, nil
}

// ReconcileLocations turns the partner's submitted location set into the
// minimal create/update/delete partition against the previously stored set,
// and propagates every change to the customer profile service. Matching is
// done by location id: a submitted location without a known id is a
// creation, an existing location absent from the submitted set is a
// deletion, everything else is an update.
//
// Contact updates and creations are each awaited as a batch and fail as a
// unit, updates first. Contact deletions are best effort and never fail the
// reconciliation. The returned set contains the updated then the created
// locations, enriched and ready to be persisted by the caller.
func (usecase *LocationUsecase) ReconcileLocations(
	ctx context.Context,
	partner models.Partner,
	submittedLocations []models.Location,
	existingLocations []models.Location,
) ([]models.Location, error) {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	externalIds := pure_utils.Map(submittedLocations,
		func(l models.Location) string { return l.ExternalId })
	notUnique, err := usecase.locationRepository.AreExternalIdsNotUnique(
		ctx, exec, partner.Id, externalIds)
	if err != nil {
		return nil, err
	}
	if notUnique {
		return nil, models.ErrLocationExternalIdNotUnique
	}

	existingById := make(map[string]models.Location, len(existingLocations))
	for _, location := range existingLocations {
		existingById[location.Id] = location
	}
	submittedIds := set.From(pure_utils.Map(submittedLocations,
		func(l models.Location) string { return l.Id }))

	deletedLocations := make([]models.Location, 0)
	for _, location := range existingLocations {
		if !submittedIds.Contains(location.Id) {
			deletedLocations = append(deletedLocations, location)
		}
	}

	updatedLocations := make([]models.Location, 0, len(submittedLocations))
	createdLocations := make([]models.Location, 0)
	for _, location := range submittedLocations {
		existing, known := existingById[location.Id]
		if location.Id == "" || !known {
			location.Id = uuid.NewString()
			location.PartnerId = partner.Id
			location.CreatedBy = partner.CreatedBy
			location.CreatedAt = time.Now()
			createdLocations = append(createdLocations, location)
			continue
		}

		// the creator and creation timestamp are immutable once set
		location.PartnerId = partner.Id
		location.CreatedBy = existing.CreatedBy
		location.CreatedAt = existing.CreatedAt
		updatedLocations = append(updatedLocations, location)
	}

	// deletions are scheduled first and merely awaited last
	deleteGroup, deleteCtx := errgroup.WithContext(ctx)
	for _, location := range deletedLocations {
		logger.InfoContext(ctx, "Location deleting",
			slog.String("location_id", location.Id),
			slog.String("external_id", location.ExternalId))

		deleteGroup.Go(func() error {
			errorCode, err := usecase.customerProfileRepository.DeleteContact(deleteCtx, location.Id)
			if err != nil {
				logger.WarnContext(ctx, "Contact person deletion failed",
					slog.String("location_id", location.Id),
					slog.String("error", err.Error()))
			} else if !errorCode.IsSuccess() {
				logger.WarnContext(ctx, "Contact person deletion refused",
					slog.String("location_id", location.Id),
					slog.String("error_code", string(errorCode)))
			}
			return nil
		})
	}

	for i := range updatedLocations {
		if err := usecase.enrichLocation(ctx, &updatedLocations[i]); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "Location updating",
			slog.String("location_id", updatedLocations[i].Id),
			slog.String("external_id", updatedLocations[i].ExternalId))
	}
	for i := range createdLocations {
		if err := usecase.enrichLocation(ctx, &createdLocations[i]); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "Location creating",
			slog.String("location_id", createdLocations[i].Id),
			slog.String("external_id", createdLocations[i].ExternalId))
	}

	updateResults, err := usecase.syncContacts(ctx, updatedLocations,
		usecase.customerProfileRepository.UpdateContact)
	if err != nil {
		return nil, err
	}
	if failed(updateResults) {
		return nil, models.NewContactSyncError(models.ErrContactUpdateFailed, updateResults)
	}

	createResults, err := usecase.syncContacts(ctx, createdLocations,
		usecase.customerProfileRepository.CreateContactIfNotExists)
	if err != nil {
		return nil, err
	}
	if failed(createResults) {
		return nil, models.NewContactSyncError(models.ErrContactRegistrationFailed, createResults)
	}

	_ = deleteGroup.Wait()

	processedLocations := make([]models.Location, 0, len(updatedLocations)+len(createdLocations))
	processedLocations = append(processedLocations, updatedLocations...)
	processedLocations = append(processedLocations, createdLocations...)
	return processedLocations, nil
}

// DeleteContactsForLocations removes the contact person records of the given
// locations from the customer profile service, best effort.
func (usecase *LocationUsecase) DeleteContactsForLocations(
	ctx context.Context,
	locations []models.Location,
) {
	logger := utils.LoggerFromContext(ctx)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, location := range locations {
		group.Go(func() error {
			errorCode, err := usecase.customerProfileRepository.DeleteContact(groupCtx, location.Id)
			if err != nil {
				logger.WarnContext(ctx, "Contact person deletion failed",
					slog.String("location_id", location.Id),
					slog.String("error", err.Error()))
			} else if !errorCode.IsSuccess() {
				logger.WarnContext(ctx, "Contact person deletion refused",
					slog.String("location_id", location.Id),
					slog.String("error_code", string(errorCode)))
			}
			return nil
		})
	}
	_ = group.Wait()
}

// enrichLocation recomputes the geohash and the country code of a location
// from its coordinates. Both derived fields are cleared when either
// coordinate is absent, so a location never carries stale derived data. A
// country lookup miss is not an error.
func (usecase *LocationUsecase) enrichLocation(ctx context.Context, location *models.Location) error {
	if !location.HasCoordinates() {
		location.Geohash = nil
		location.CountryIso3Code = nil
		return nil
	}

	hash := geohash.EncodeWithPrecision(*location.Latitude, *location.Longitude,
		models.GeohashPrecision)
	location.Geohash = &hash

	countryCode, err := usecase.geocodingRepository.GetCountryIso3Code(
		ctx, *location.Latitude, *location.Longitude)
	if err != nil {
		return err
	}
	location.CountryIso3Code = countryCode
	return nil
}

// syncContacts issues one customer profile call per location, all launched
// together and awaited as a batch. Per-call outcomes are reported in the
// result slice so that the caller can evaluate the batch as a whole; an
// error is only returned on transport failures.
func (usecase *LocationUsecase) syncContacts(
	ctx context.Context,
	locations []models.Location,
	call func(ctx context.Context, contact models.PartnerContact) (models.PartnerContactErrorCode, error),
) ([]models.ContactSyncResult, error) {
	results := make([]models.ContactSyncResult, len(locations))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, location := range locations {
		group.Go(func() error {
			errorCode, err := call(groupCtx, models.PartnerContact{
				LocationId:  location.Id,
				FirstName:   location.ContactPerson.FirstName,
				LastName:    location.ContactPerson.LastName,
				Email:       location.ContactPerson.Email,
				PhoneNumber: location.ContactPerson.PhoneNumber,
			})
			if err != nil {
				return err
			}
			results[i] = models.ContactSyncResult{ErrorCode: errorCode, Location: location}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func failed(results []models.ContactSyncResult) bool {
	for _, result := range results {
		if !result.ErrorCode.IsSuccess() {
			return true
		}
	}
	return false
}
