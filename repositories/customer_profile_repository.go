package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/IliyanIlievPH/partner-management/infra"
	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/repositories/httpmodels"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
)

const customerProfileRetryAttempts = 3

// CustomerProfileRepository is the client of the external customer profile
// service, the system of record for a location's contact person. Calls
// report failures through error codes; the error return value is reserved
// for transport level problems.
type CustomerProfileRepository interface {
	CreateContactIfNotExists(ctx context.Context,
		contact models.PartnerContact) (models.PartnerContactErrorCode, error)
	UpdateContact(ctx context.Context,
		contact models.PartnerContact) (models.PartnerContactErrorCode, error)
	DeleteContact(ctx context.Context,
		locationId string) (models.PartnerContactErrorCode, error)
}

type CustomerProfileRepositoryHttp struct {
	config infra.CustomerProfileConfig
	client *http.Client
}

func NewCustomerProfileRepository(config infra.CustomerProfileConfig) CustomerProfileRepositoryHttp {
	return CustomerProfileRepositoryHttp{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// CreateContactIfNotExists registers the contact person of a location. The
// remote service treats the location id as a natural key: registering the
// same location twice is not an error.
func (repo CustomerProfileRepositoryHttp) CreateContactIfNotExists(
	ctx context.Context,
	contact models.PartnerContact,
) (models.PartnerContactErrorCode, error) {
	return repo.sendContact(ctx, http.MethodPost, contact)
}

// UpdateContact replaces the contact person fields for a location already
// known to the remote service. An unknown location id is reported with
// PartnerContactErrorCodeDoesNotExist.
func (repo CustomerProfileRepositoryHttp) UpdateContact(
	ctx context.Context,
	contact models.PartnerContact,
) (models.PartnerContactErrorCode, error) {
	return repo.sendContact(ctx, http.MethodPut, contact)
}

func (repo CustomerProfileRepositoryHttp) DeleteContact(
	ctx context.Context,
	locationId string,
) (models.PartnerContactErrorCode, error) {
	url := fmt.Sprintf("%s/api/partner-contacts/%s", repo.config.BaseUrl, locationId)
	return repo.do(ctx, http.MethodDelete, url, nil)
}

func (repo CustomerProfileRepositoryHttp) sendContact(
	ctx context.Context,
	method string,
	contact models.PartnerContact,
) (models.PartnerContactErrorCode, error) {
	body, err := json.Marshal(httpmodels.AdaptHTTPPartnerContactRequest(contact))
	if err != nil {
		return "", errors.Wrap(err, "could not marshal partner contact")
	}

	url := fmt.Sprintf("%s/api/partner-contacts", repo.config.BaseUrl)
	return repo.do(ctx, method, url, body)
}

// do sends the request, retrying on transport errors and 5xx responses. The
// request is rebuilt on every attempt so that the body can be resent.
func (repo CustomerProfileRepositoryHttp) do(
	ctx context.Context,
	method string,
	url string,
	body []byte,
) (models.PartnerContactErrorCode, error) {
	var contactResponse httpmodels.HTTPPartnerContactResponse

	err := retry.Do(
		func() error {
			var reader *bytes.Reader
			if body != nil {
				reader = bytes.NewReader(body)
			} else {
				reader = bytes.NewReader(nil)
			}

			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			if repo.config.ApiKey != "" {
				req.Header.Set("api-key", repo.config.ApiKey)
			}

			resp, err := repo.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= http.StatusInternalServerError {
				return errors.Newf("customer profile service returned status %d", resp.StatusCode)
			}
			return json.NewDecoder(resp.Body).Decode(&contactResponse)
		},
		retry.Attempts(customerProfileRetryAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", errors.Wrap(err, "error calling customer profile service")
	}

	return httpmodels.AdaptPartnerContactErrorCode(contactResponse), nil
}
