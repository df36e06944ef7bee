package dto

import (
	"time"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/pure_utils"
	"github.com/guregu/null/v5"
)

type Partner struct {
	Id                    string      `json:"id"`
	Name                  string      `json:"name"`
	Description           string      `json:"description"`
	BusinessVertical      string      `json:"business_vertical"`
	ClientId              null.String `json:"client_id"`
	AmountInTokens        string      `json:"amount_in_tokens"`
	AmountInCurrency      null.Float  `json:"amount_in_currency"`
	UseGlobalCurrencyRate bool        `json:"use_global_currency_rate"`
	CreatedBy             string      `json:"created_by"`
	CreatedAt             time.Time   `json:"created_at"`
	Locations             []Location  `json:"locations"`
}

func AdaptPartnerDto(partner models.Partner) Partner {
	return Partner{
		Id:                    partner.Id,
		Name:                  partner.Name,
		Description:           partner.Description,
		BusinessVertical:      string(partner.BusinessVertical),
		ClientId:              null.StringFromPtr(partner.ClientId),
		AmountInTokens:        partner.AmountInTokens,
		AmountInCurrency:      null.FloatFromPtr(partner.AmountInCurrency),
		UseGlobalCurrencyRate: partner.UseGlobalCurrencyRate,
		CreatedBy:             partner.CreatedBy,
		CreatedAt:             partner.CreatedAt,
		Locations:             pure_utils.Map(partner.Locations, AdaptLocationDto),
	}
}

type PartnerBody struct {
	Name                  string         `json:"name" binding:"required,max=50"`
	Description           string         `json:"description" binding:"max=1000"`
	BusinessVertical      string         `json:"business_vertical" binding:"required"`
	ClientId              null.String    `json:"client_id"`
	AmountInTokens        string         `json:"amount_in_tokens"`
	AmountInCurrency      null.Float     `json:"amount_in_currency"`
	UseGlobalCurrencyRate bool           `json:"use_global_currency_rate"`
	CreatedBy             string         `json:"created_by" binding:"required"`
	Locations             []LocationBody `json:"locations" binding:"required,min=1,dive"`
}

func AdaptPartnerBody(body PartnerBody) (models.Partner, error) {
	vertical, err := models.BusinessVerticalFrom(body.BusinessVertical)
	if err != nil {
		return models.Partner{}, err
	}

	locations, err := pure_utils.MapErr(body.Locations, AdaptLocationBody)
	if err != nil {
		return models.Partner{}, err
	}

	return models.Partner{
		Name:                  body.Name,
		Description:           body.Description,
		BusinessVertical:      vertical,
		ClientId:              body.ClientId.Ptr(),
		AmountInTokens:        body.AmountInTokens,
		AmountInCurrency:      body.AmountInCurrency.Ptr(),
		UseGlobalCurrencyRate: body.UseGlobalCurrencyRate,
		CreatedBy:             body.CreatedBy,
		Locations:             locations,
	}, nil
}

type PartnerListPage struct {
	Partners   []Partner `json:"partners"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"current_page"`
	PageSize   int       `json:"page_size"`
}

func AdaptPartnerListPage(page models.PartnerListPage, pagination models.Pagination) PartnerListPage {
	return PartnerListPage{
		Partners:   pure_utils.Map(page.Partners, AdaptPartnerDto),
		TotalCount: page.TotalCount,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}
}
