package dto

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/IliyanIlievPH/partner-management/models"
)

type Location struct {
	Id                        string      `json:"id"`
	PartnerId                 string      `json:"partner_id"`
	ExternalId                string      `json:"external_id"`
	Name                      string      `json:"name"`
	Address                   string      `json:"address"`
	Latitude                  null.Float  `json:"latitude"`
	Longitude                 null.Float  `json:"longitude"`
	Geohash                   null.String `json:"geohash"`
	CountryIso3Code           null.String `json:"country_iso3_code"`
	AccountingIntegrationCode string      `json:"accounting_integration_code"`
	ContactPerson             Contact     `json:"contact_person"`
	CreatedBy                 string      `json:"created_by"`
	CreatedAt                 time.Time   `json:"created_at"`
}

type Contact struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func AdaptLocationDto(location models.Location) Location {
	return Location{
		Id:                        location.Id,
		PartnerId:                 location.PartnerId,
		ExternalId:                location.ExternalId,
		Name:                      location.Name,
		Address:                   location.Address,
		Latitude:                  null.FloatFromPtr(location.Latitude),
		Longitude:                 null.FloatFromPtr(location.Longitude),
		Geohash:                   null.StringFromPtr(location.Geohash),
		CountryIso3Code:           null.StringFromPtr(location.CountryIso3Code),
		AccountingIntegrationCode: location.AccountingIntegrationCode,
		ContactPerson: Contact{
			FirstName:   location.ContactPerson.FirstName,
			LastName:    location.ContactPerson.LastName,
			Email:       location.ContactPerson.Email,
			PhoneNumber: location.ContactPerson.PhoneNumber,
		},
		CreatedBy: location.CreatedBy,
		CreatedAt: location.CreatedAt,
	}
}

type LocationBody struct {
	Id                        null.String `json:"id"`
	ExternalId                string      `json:"external_id" binding:"required,max=80"`
	Name                      string      `json:"name" binding:"required,min=3,max=100"`
	Address                   string      `json:"address" binding:"required,max=100"`
	Latitude                  null.Float  `json:"latitude"`
	Longitude                 null.Float  `json:"longitude"`
	AccountingIntegrationCode null.String `json:"accounting_integration_code" binding:"omitempty,max=80"`
	ContactPerson             ContactBody `json:"contact_person" binding:"required"`
}

type ContactBody struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,max=50"`
}

func AdaptLocationBody(body LocationBody) (models.Location, error) {
	// null.Float is opaque to the binding validator, so the coordinate
	// constraints live here instead of in struct tags.
	if body.Latitude.Valid != body.Longitude.Valid {
		return models.Location{}, errors.Wrap(models.BadParameterError,
			"latitude and longitude must be submitted together")
	}
	if lat := body.Latitude.ValueOrZero(); body.Latitude.Valid && (lat < -90 || lat > 90) {
		return models.Location{}, errors.Wrap(models.BadParameterError,
			"latitude must be between -90 and 90")
	}
	if lng := body.Longitude.ValueOrZero(); body.Longitude.Valid && (lng < -180 || lng > 180) {
		return models.Location{}, errors.Wrap(models.BadParameterError,
			"longitude must be between -180 and 180")
	}

	accountingIntegrationCode := body.AccountingIntegrationCode.ValueOrZero()
	if accountingIntegrationCode == "" {
		accountingIntegrationCode = models.DefaultAccountingIntegrationCode
	}

	return models.Location{
		Id:                        body.Id.ValueOrZero(),
		ExternalId:                body.ExternalId,
		Name:                      body.Name,
		Address:                   body.Address,
		Latitude:                  body.Latitude.Ptr(),
		Longitude:                 body.Longitude.Ptr(),
		AccountingIntegrationCode: accountingIntegrationCode,
		ContactPerson: models.ContactPerson{
			FirstName:   body.ContactPerson.FirstName,
			LastName:    body.ContactPerson.LastName,
			Email:       body.ContactPerson.Email,
			PhoneNumber: body.ContactPerson.PhoneNumber,
		},
	}, nil
}
