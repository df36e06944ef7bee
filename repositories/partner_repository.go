package repositories

import (
	"context"
	"fmt"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
)

type PartnerRepository interface {
	GetPartnerById(ctx context.Context, exec Executor, partnerId string) (models.Partner, error)
	GetPartnerByClientId(ctx context.Context, exec Executor, clientId string) (models.Partner, error)
	ListPartners(ctx context.Context, exec Executor, filters models.PartnerFilters,
		pagination models.Pagination) (models.PartnerListPage, error)
	CreatePartner(ctx context.Context, exec Executor, partner models.Partner) error
	UpdatePartner(ctx context.Context, exec Executor, partner models.Partner) error
	DeletePartner(ctx context.Context, exec Executor, partnerId string) error
}

type PartnerRepositoryPostgresql struct{}

func (repo PartnerRepositoryPostgresql) GetPartnerById(
	ctx context.Context,
	exec Executor,
	partnerId string,
) (models.Partner, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPartnerColumns...).
			From(dbmodels.TABLE_PARTNERS).
			Where(squirrel.Eq{"id": partnerId}),
		dbmodels.AdaptPartner,
	)
}

func (repo PartnerRepositoryPostgresql) GetPartnerByClientId(
	ctx context.Context,
	exec Executor,
	clientId string,
) (models.Partner, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPartnerColumns...).
			From(dbmodels.TABLE_PARTNERS).
			Where(squirrel.Eq{"client_id": clientId}),
		dbmodels.AdaptPartner,
	)
}

func (repo PartnerRepositoryPostgresql) ListPartners(
	ctx context.Context,
	exec Executor,
	filters models.PartnerFilters,
	pagination models.Pagination,
) (models.PartnerListPage, error) {
	applyFilters := func(query squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filters.Name != nil {
			query = query.Where(squirrel.ILike{"name": fmt.Sprintf("%%%s%%", *filters.Name)})
		}
		if filters.Vertical != nil {
			query = query.Where(squirrel.Eq{"business_vertical": string(*filters.Vertical)})
		}
		return query
	}

	countQuery, countArgs, err := applyFilters(
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_PARTNERS),
	).ToSql()
	if err != nil {
		return models.PartnerListPage{}, errors.Wrap(err, "can't build sql query")
	}

	var totalCount int
	if err := exec.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return models.PartnerListPage{}, errors.Wrap(err, "error counting partners")
	}

	partners, err := SqlToListOfModels(
		ctx,
		exec,
		applyFilters(
			NewQueryBuilder().
				Select(dbmodels.SelectPartnerColumns...).
				From(dbmodels.TABLE_PARTNERS),
		).
			OrderBy("created_at DESC").
			Offset(uint64(pagination.Offset())).
			Limit(uint64(pagination.PageSize)),
		dbmodels.AdaptPartner,
	)
	if err != nil {
		return models.PartnerListPage{}, err
	}

	return models.PartnerListPage{
		Partners:   partners,
		TotalCount: totalCount,
	}, nil
}

func (repo PartnerRepositoryPostgresql) CreatePartner(
	ctx context.Context,
	exec Executor,
	partner models.Partner,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_PARTNERS).
			Columns(
				"id",
				"name",
				"description",
				"business_vertical",
				"client_id",
				"amount_in_tokens",
				"amount_in_currency",
				"use_global_currency_rate",
				"created_by",
				"created_at",
			).
			Values(
				partner.Id,
				partner.Name,
				partner.Description,
				string(partner.BusinessVertical),
				partner.ClientId,
				partner.AmountInTokens,
				partner.AmountInCurrency,
				partner.UseGlobalCurrencyRate,
				partner.CreatedBy,
				partner.CreatedAt,
			),
	)
}

func (repo PartnerRepositoryPostgresql) UpdatePartner(
	ctx context.Context,
	exec Executor,
	partner models.Partner,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_PARTNERS).
			Set("name", partner.Name).
			Set("description", partner.Description).
			Set("business_vertical", string(partner.BusinessVertical)).
			Set("client_id", partner.ClientId).
			Set("amount_in_tokens", partner.AmountInTokens).
			Set("amount_in_currency", partner.AmountInCurrency).
			Set("use_global_currency_rate", partner.UseGlobalCurrencyRate).
			Where(squirrel.Eq{"id": partner.Id}),
	)
}

func (repo PartnerRepositoryPostgresql) DeletePartner(
	ctx context.Context,
	exec Executor,
	partnerId string,
) error {
	// locations are removed by the on delete cascade on locations.partner_id
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_PARTNERS).
			Where(squirrel.Eq{"id": partnerId}),
	)
}
