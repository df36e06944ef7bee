package models

import "time"

// GeohashPrecision is the number of characters of the geohash derived for a
// location with determined coordinates.
const GeohashPrecision = 9

// DefaultAccountingIntegrationCode is recorded for locations whose partner
// has no accounting system connected.
const DefaultAccountingIntegrationCode = "000000"

type ContactPerson struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

type Location struct {
	Id        string
	PartnerId string
	// ExternalId is supplied by the partner's own system and is unique within
	// the partner's location set.
	ExternalId string
	Name       string
	Address    string
	Latitude   *float64
	Longitude  *float64
	// Geohash and CountryIso3Code are derived from the coordinates. Both are
	// nil when either coordinate is absent.
	Geohash                   *string
	CountryIso3Code           *string
	AccountingIntegrationCode string
	ContactPerson             ContactPerson
	CreatedBy                 string
	CreatedAt                 time.Time
}

func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
