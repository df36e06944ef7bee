package dbmodels

import (
	"time"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/utils"
)

type DBPartner struct {
	Id                    string    `db:"id"`
	Name                  string    `db:"name"`
	Description           string    `db:"description"`
	BusinessVertical      string    `db:"business_vertical"`
	ClientId              *string   `db:"client_id"`
	AmountInTokens        string    `db:"amount_in_tokens"`
	AmountInCurrency      *float64  `db:"amount_in_currency"`
	UseGlobalCurrencyRate bool      `db:"use_global_currency_rate"`
	CreatedBy             string    `db:"created_by"`
	CreatedAt             time.Time `db:"created_at"`
}

const TABLE_PARTNERS = "partners"

var SelectPartnerColumns = utils.ColumnList[DBPartner]()

func AdaptPartner(db DBPartner) (models.Partner, error) {
	return models.Partner{
		Id:                    db.Id,
		Name:                  db.Name,
		Description:           db.Description,
		BusinessVertical:      models.BusinessVertical(db.BusinessVertical),
		ClientId:              db.ClientId,
		AmountInTokens:        db.AmountInTokens,
		AmountInCurrency:      db.AmountInCurrency,
		UseGlobalCurrencyRate: db.UseGlobalCurrencyRate,
		CreatedBy:             db.CreatedBy,
		CreatedAt:             db.CreatedAt,
	}, nil
}
