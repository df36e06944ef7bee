package httpmodels

import "github.com/biter777/countries"

type HTTPReverseGeocodeResponse struct {
	// CountryCode is the ISO 3166-1 alpha-2 code of the country containing
	// the coordinate, empty when the coordinate resolves to no country.
	CountryCode string `json:"countryCode"`
}

// AdaptCountryIso3Code converts the alpha-2 country code of the geocoding
// response to its ISO 3166-1 alpha-3 form. Returns nil when the response
// carries no resolvable country.
func AdaptCountryIso3Code(resp HTTPReverseGeocodeResponse) *string {
	if resp.CountryCode == "" {
		return nil
	}
	country := countries.ByName(resp.CountryCode)
	if country == countries.Unknown {
		return nil
	}
	code := country.Alpha3()
	return &code
}
