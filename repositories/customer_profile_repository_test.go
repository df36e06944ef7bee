package repositories

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"

	"github.com/IliyanIlievPH/partner-management/infra"
	"github.com/IliyanIlievPH/partner-management/models"
)

func newCustomerProfileRepository() CustomerProfileRepositoryHttp {
	repo := NewCustomerProfileRepository(infra.CustomerProfileConfig{
		BaseUrl: "http://customer-profile.test",
		ApiKey:  "secret",
		Timeout: time.Second,
	})
	gock.InterceptClient(repo.client)
	return repo
}

func TestCustomerProfileRepository_CreateContactIfNotExists(t *testing.T) {
	contact := models.PartnerContact{
		LocationId:  "location-id",
		FirstName:   "Jane",
		LastName:    "Smith",
		Email:       "Jane.Smith@Example.com",
		PhoneNumber: "+359888123456",
	}

	t.Run("nominal", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://customer-profile.test").
			Post("/api/partner-contacts").
			MatchHeader("api-key", "secret").
			JSON(map[string]string{
				"locationId":  "location-id",
				"firstName":   "Jane",
				"lastName":    "Smith",
				"email":       "jane.smith@example.com",
				"phoneNumber": "+359888123456",
			}).
			Reply(http.StatusOK).
			JSON(map[string]string{"errorCode": "None"})

		repo := newCustomerProfileRepository()
		errorCode, err := repo.CreateContactIfNotExists(context.Background(), contact)

		assert.NoError(t, err)
		assert.True(t, errorCode.IsSuccess())
		assert.True(t, gock.IsDone())
	})

	t.Run("empty error code means success", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://customer-profile.test").
			Post("/api/partner-contacts").
			Reply(http.StatusOK).
			JSON(map[string]string{})

		repo := newCustomerProfileRepository()
		errorCode, err := repo.CreateContactIfNotExists(context.Background(), contact)

		assert.NoError(t, err)
		assert.Equal(t, models.PartnerContactErrorCodeNone, errorCode)
	})

	t.Run("invalid phone number is data, not an error", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://customer-profile.test").
			Post("/api/partner-contacts").
			Reply(http.StatusOK).
			JSON(map[string]string{"errorCode": "InvalidPhoneNumber"})

		repo := newCustomerProfileRepository()
		errorCode, err := repo.CreateContactIfNotExists(context.Background(), contact)

		assert.NoError(t, err)
		assert.Equal(t, models.PartnerContactErrorCodeInvalidPhoneNumber, errorCode)
	})

	t.Run("retries on server errors", func(t *testing.T) {
		defer gock.Off()

		gock.New("http://customer-profile.test").
			Post("/api/partner-contacts").
			Reply(http.StatusBadGateway)
		gock.New("http://customer-profile.test").
			Post("/api/partner-contacts").
			Reply(http.StatusOK).
			JSON(map[string]string{"errorCode": "None"})

		repo := newCustomerProfileRepository()
		errorCode, err := repo.CreateContactIfNotExists(context.Background(), contact)

		assert.NoError(t, err)
		assert.True(t, errorCode.IsSuccess())
		assert.True(t, gock.IsDone())
	})
}

func TestCustomerProfileRepository_UpdateContact(t *testing.T) {
	defer gock.Off()

	gock.New("http://customer-profile.test").
		Put("/api/partner-contacts").
		Reply(http.StatusOK).
		JSON(map[string]string{"errorCode": "PartnerContactDoesNotExist"})

	repo := newCustomerProfileRepository()
	errorCode, err := repo.UpdateContact(context.Background(), models.PartnerContact{
		LocationId: "unknown-location",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PartnerContactErrorCodeDoesNotExist, errorCode)
}

func TestCustomerProfileRepository_DeleteContact(t *testing.T) {
	defer gock.Off()

	gock.New("http://customer-profile.test").
		Delete("/api/partner-contacts/location-id").
		Reply(http.StatusOK).
		JSON(map[string]string{"errorCode": "None"})

	repo := newCustomerProfileRepository()
	errorCode, err := repo.DeleteContact(context.Background(), "location-id")

	assert.NoError(t, err)
	assert.True(t, errorCode.IsSuccess())
}
