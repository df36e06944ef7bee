package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/IliyanIlievPH/partner-management/models"
)

type executorStub struct {
	pgxmock.PgxPoolIface
}

func newExecutorStub(t *testing.T) executorStub {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	return executorStub{pool}
}

var locationColumns = []string{
	"id", "partner_id", "external_id", "name", "address", "latitude", "longitude",
	"geohash", "country_iso3_code", "accounting_integration_code",
	"contact_first_name", "contact_last_name", "contact_email",
	"contact_phone_number", "created_by", "created_at",
}

func locationRow(id, partnerId, externalId string) []any {
	return []any{
		id, partnerId, externalId, "Main street shop", "1 Main street",
		nil, nil, nil, nil, "000000",
		"Jane", "Smith", "jane.smith@example.com", "+359888123456",
		"3e3cd0f4-7f05-4482-9e29-a421b3f57bca",
		time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
	}
}

func TestLocationRepository_GetLocationById(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock := newExecutorStub(t)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM locations WHERE id = \$1`).
			WithArgs("location-id").
			WillReturnRows(pgxmock.NewRows(locationColumns).
				AddRow(locationRow("location-id", "partner-id", "shop-001")...))

		location, err := LocationRepositoryPostgresql{}.GetLocationById(
			context.Background(), mock, "location-id")
		assert.NoError(t, err)
		assert.Equal(t, "shop-001", location.ExternalId)
		assert.Equal(t, "Jane", location.ContactPerson.FirstName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newExecutorStub(t)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM locations WHERE id = \$1`).
			WithArgs("unknown").
			WillReturnRows(pgxmock.NewRows(locationColumns))

		_, err := LocationRepositoryPostgresql{}.GetLocationById(
			context.Background(), mock, "unknown")
		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_GetLocationByExternalId(t *testing.T) {
	mock := newExecutorStub(t)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .* FROM locations WHERE external_id = \$1 ORDER BY created_at DESC LIMIT 1`).
		WithArgs("shop-001").
		WillReturnRows(pgxmock.NewRows(locationColumns).
			AddRow(locationRow("location-id", "partner-id", "shop-001")...))

	location, err := LocationRepositoryPostgresql{}.GetLocationByExternalId(
		context.Background(), mock, "shop-001")
	assert.NoError(t, err)
	assert.Equal(t, "location-id", location.Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_AreExternalIdsNotUnique(t *testing.T) {
	t.Run("in-list duplicates short-circuit", func(t *testing.T) {
		mock := newExecutorStub(t)
		defer mock.Close()

		notUnique, err := LocationRepositoryPostgresql{}.AreExternalIdsNotUnique(
			context.Background(), mock, "partner-id", []string{"shop-001", "shop-001"})
		assert.NoError(t, err)
		assert.True(t, notUnique)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("id taken by another partner", func(t *testing.T) {
		mock := newExecutorStub(t)
		defer mock.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM locations WHERE partner_id <> \$1 AND external_id = ANY\(\$2\)`).
			WithArgs("partner-id", []string{"shop-001"}).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		notUnique, err := LocationRepositoryPostgresql{}.AreExternalIdsNotUnique(
			context.Background(), mock, "partner-id", []string{"shop-001"})
		assert.NoError(t, err)
		assert.True(t, notUnique)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all ids available", func(t *testing.T) {
		mock := newExecutorStub(t)
		defer mock.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM locations WHERE partner_id <> \$1 AND external_id = ANY\(\$2\)`).
			WithArgs("partner-id", []string{"shop-001", "shop-002"}).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

		notUnique, err := LocationRepositoryPostgresql{}.AreExternalIdsNotUnique(
			context.Background(), mock, "partner-id", []string{"shop-001", "shop-002"})
		assert.NoError(t, err)
		assert.False(t, notUnique)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationRepository_ListCountryIso3Codes(t *testing.T) {
	mock := newExecutorStub(t)
	defer mock.Close()

	mock.ExpectQuery(`SELECT DISTINCT country_iso3_code FROM locations WHERE country_iso3_code IS NOT NULL ORDER BY country_iso3_code`).
		WillReturnRows(pgxmock.NewRows([]string{"country_iso3_code"}).
			AddRow("BGR").AddRow("USA"))

	codes, err := LocationRepositoryPostgresql{}.ListCountryIso3Codes(context.Background(), mock)
	assert.NoError(t, err)
	assert.Equal(t, []string{"BGR", "USA"}, codes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
