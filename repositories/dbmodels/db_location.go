package dbmodels

import (
	"time"

	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/utils"
)

type DBLocation struct {
	Id                        string    `db:"id"`
	PartnerId                 string    `db:"partner_id"`
	ExternalId                string    `db:"external_id"`
	Name                      string    `db:"name"`
	Address                   string    `db:"address"`
	Latitude                  *float64  `db:"latitude"`
	Longitude                 *float64  `db:"longitude"`
	Geohash                   *string   `db:"geohash"`
	CountryIso3Code           *string   `db:"country_iso3_code"`
	AccountingIntegrationCode string    `db:"accounting_integration_code"`
	ContactFirstName          string    `db:"contact_first_name"`
	ContactLastName           string    `db:"contact_last_name"`
	ContactEmail              string    `db:"contact_email"`
	ContactPhoneNumber        string    `db:"contact_phone_number"`
	CreatedBy                 string    `db:"created_by"`
	CreatedAt                 time.Time `db:"created_at"`
}

const TABLE_LOCATIONS = "locations"

var SelectLocationColumns = utils.ColumnList[DBLocation]()

func AdaptLocation(db DBLocation) (models.Location, error) {
	return models.Location{
		Id:                        db.Id,
		PartnerId:                 db.PartnerId,
		ExternalId:                db.ExternalId,
		Name:                      db.Name,
		Address:                   db.Address,
		Latitude:                  db.Latitude,
		Longitude:                 db.Longitude,
		Geohash:                   db.Geohash,
		CountryIso3Code:           db.CountryIso3Code,
		AccountingIntegrationCode: db.AccountingIntegrationCode,
		ContactPerson: models.ContactPerson{
			FirstName:   db.ContactFirstName,
			LastName:    db.ContactLastName,
			Email:       db.ContactEmail,
			PhoneNumber: db.ContactPhoneNumber,
		},
		CreatedBy: db.CreatedBy,
		CreatedAt: db.CreatedAt,
	}, nil
}
