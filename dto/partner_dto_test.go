package dto

import (
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"

	"github.com/IliyanIlievPH/partner-management/models"
)

func TestAdaptPartnerBody(t *testing.T) {
	t.Run("rejects an unknown business vertical", func(t *testing.T) {
		_, err := AdaptPartnerBody(PartnerBody{BusinessVertical: "banking"})

		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("rejects a location with a lone coordinate", func(t *testing.T) {
		_, err := AdaptPartnerBody(PartnerBody{
			BusinessVertical: "retail",
			Locations: []LocationBody{{
				ExternalId: "shop-001",
				Latitude:   null.FloatFrom(42.7),
			}},
		})

		assert.ErrorIs(t, err, models.BadParameterError)
	})
}
