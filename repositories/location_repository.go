package repositories

import (
	"context"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"
)

type LocationRepository interface {
	GetLocationById(ctx context.Context, exec Executor, locationId string) (models.Location, error)
	GetLocationByExternalId(ctx context.Context, exec Executor, externalId string) (models.Location, error)
	ListLocationsOfPartner(ctx context.Context, exec Executor, partnerId string) ([]models.Location, error)
	ListCountryIso3Codes(ctx context.Context, exec Executor) ([]string, error)
	AreExternalIdsNotUnique(ctx context.Context, exec Executor, partnerId string,
		externalIds []string) (bool, error)
	CreateLocation(ctx context.Context, exec Executor, location models.Location) error
	UpdateLocation(ctx context.Context, exec Executor, location models.Location) error
	DeleteLocation(ctx context.Context, exec Executor, locationId string) error
}

type LocationRepositoryPostgresql struct{}

func (repo LocationRepositoryPostgresql) GetLocationById(
	ctx context.Context,
	exec Executor,
	locationId string,
) (models.Location, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectLocationColumns...).
			From(dbmodels.TABLE_LOCATIONS).
			Where(squirrel.Eq{"id": locationId}),
		dbmodels.AdaptLocation,
	)
}

func (repo LocationRepositoryPostgresql) GetLocationByExternalId(
	ctx context.Context,
	exec Executor,
	externalId string,
) (models.Location, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectLocationColumns...).
			From(dbmodels.TABLE_LOCATIONS).
			Where(squirrel.Eq{"external_id": externalId}).
			OrderBy("created_at DESC").
			Limit(1),
		dbmodels.AdaptLocation,
	)
}

func (repo LocationRepositoryPostgresql) ListLocationsOfPartner(
	ctx context.Context,
	exec Executor,
	partnerId string,
) ([]models.Location, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectLocationColumns...).
			From(dbmodels.TABLE_LOCATIONS).
			Where(squirrel.Eq{"partner_id": partnerId}).
			OrderBy("created_at"),
		dbmodels.AdaptLocation,
	)
}

func (repo LocationRepositoryPostgresql) ListCountryIso3Codes(
	ctx context.Context,
	exec Executor,
) ([]string, error) {
	query, args, err := NewQueryBuilder().
		Select("DISTINCT country_iso3_code").
		From(dbmodels.TABLE_LOCATIONS).
		Where("country_iso3_code IS NOT NULL").
		OrderBy("country_iso3_code").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error listing country codes")
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, errors.Wrap(err, "error scanning country code")
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// AreExternalIdsNotUnique reports whether the given external ids cannot be
// used for the partner's locations: either the list itself contains
// duplicates, or one of the ids is already taken by a location of another
// partner.
func (repo LocationRepositoryPostgresql) AreExternalIdsNotUnique(
	ctx context.Context,
	exec Executor,
	partnerId string,
	externalIds []string,
) (bool, error) {
	if set.From(externalIds).Size() != len(externalIds) {
		return true, nil
	}

	query, args, err := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_LOCATIONS).
		Where(squirrel.NotEq{"partner_id": partnerId}).
		Where("external_id = ANY(?)", externalIds).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "can't build sql query")
	}

	var count int
	if err := exec.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, errors.Wrap(err, "error checking external id uniqueness")
	}
	return count > 0, nil
}

func (repo LocationRepositoryPostgresql) CreateLocation(
	ctx context.Context,
	exec Executor,
	location models.Location,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_LOCATIONS).
			Columns(
				"id",
				"partner_id",
				"external_id",
				"name",
				"address",
				"latitude",
				"longitude",
				"geohash",
				"country_iso3_code",
				"accounting_integration_code",
				"contact_first_name",
				"contact_last_name",
				"contact_email",
				"contact_phone_number",
				"created_by",
				"created_at",
			).
			Values(
				location.Id,
				location.PartnerId,
				location.ExternalId,
				location.Name,
				location.Address,
				location.Latitude,
				location.Longitude,
				location.Geohash,
				location.CountryIso3Code,
				location.AccountingIntegrationCode,
				location.ContactPerson.FirstName,
				location.ContactPerson.LastName,
				location.ContactPerson.Email,
				location.ContactPerson.PhoneNumber,
				location.CreatedBy,
				location.CreatedAt,
			),
	)
}

func (repo LocationRepositoryPostgresql) UpdateLocation(
	ctx context.Context,
	exec Executor,
	location models.Location,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_LOCATIONS).
			Set("external_id", location.ExternalId).
			Set("name", location.Name).
			Set("address", location.Address).
			Set("latitude", location.Latitude).
			Set("longitude", location.Longitude).
			Set("geohash", location.Geohash).
			Set("country_iso3_code", location.CountryIso3Code).
			Set("accounting_integration_code", location.AccountingIntegrationCode).
			Set("contact_first_name", location.ContactPerson.FirstName).
			Set("contact_last_name", location.ContactPerson.LastName).
			Set("contact_email", location.ContactPerson.Email).
			Set("contact_phone_number", location.ContactPerson.PhoneNumber).
			Where(squirrel.Eq{"id": location.Id}),
	)
}

func (repo LocationRepositoryPostgresql) DeleteLocation(
	ctx context.Context,
	exec Executor,
	locationId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_LOCATIONS).
			Where(squirrel.Eq{"id": locationId}),
	)
}
