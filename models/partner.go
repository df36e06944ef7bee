package models

import (
	"time"

	"github.com/cockroachdb/errors"
)

type BusinessVertical string

const (
	BusinessVerticalHospitality BusinessVertical = "hospitality"
	BusinessVerticalRetail      BusinessVertical = "retail"
	BusinessVerticalRealEstate  BusinessVertical = "real_estate"
)

func BusinessVerticalFrom(s string) (BusinessVertical, error) {
	switch v := BusinessVertical(s); v {
	case BusinessVerticalHospitality, BusinessVerticalRetail, BusinessVerticalRealEstate:
		return v, nil
	default:
		return "", errors.Wrapf(BadParameterError, "unknown business vertical %q", s)
	}
}

type Partner struct {
	Id               string
	Name             string
	Description      string
	BusinessVertical BusinessVertical
	// ClientId links the partner to an external client account. When present,
	// it is unique across all partners.
	ClientId              *string
	AmountInTokens        string
	AmountInCurrency      *float64
	UseGlobalCurrencyRate bool
	CreatedBy             string
	CreatedAt             time.Time
	Locations             []Location
}

type PartnerFilters struct {
	Name     *string
	Vertical *BusinessVertical
}

type PartnerListPage struct {
	Partners   []Partner
	TotalCount int
}
