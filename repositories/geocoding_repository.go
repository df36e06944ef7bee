package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/IliyanIlievPH/partner-management/infra"
	"github.com/IliyanIlievPH/partner-management/repositories/httpmodels"

	"github.com/cockroachdb/errors"
)

// GeocodingRepository resolves a coordinate to the ISO 3166-1 alpha-3 code
// of the country containing it. The lookup is best effort: an unresolvable
// coordinate yields a nil code, not an error.
type GeocodingRepository interface {
	GetCountryIso3Code(ctx context.Context, latitude, longitude float64) (*string, error)
}

type GeocodingRepositoryHttp struct {
	config infra.GeocodingConfig
	client *http.Client
}

func NewGeocodingRepository(config infra.GeocodingConfig) GeocodingRepositoryHttp {
	return GeocodingRepositoryHttp{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

func (repo GeocodingRepositoryHttp) GetCountryIso3Code(
	ctx context.Context,
	latitude, longitude float64,
) (*string, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", latitude))
	query.Set("longitude", fmt.Sprintf("%f", longitude))

	u := fmt.Sprintf("%s/reverse-geocode?%s", repo.config.BaseUrl, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error calling geocoding service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// a coordinate the service cannot resolve is not an error
		return nil, nil
	}

	var geocodeResponse httpmodels.HTTPReverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geocodeResponse); err != nil {
		return nil, errors.Wrap(err, "could not decode geocoding response")
	}

	return httpmodels.AdaptCountryIso3Code(geocodeResponse), nil
}
