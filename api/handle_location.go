package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IliyanIlievPH/partner-management/dto"
	"github.com/IliyanIlievPH/partner-management/usecases"
)

func handleGetLocation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("location_id")

		usecase := uc.NewLocationUsecase()
		location, err := usecase.GetLocationById(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"location": dto.AdaptLocationDto(location),
		})
	}
}

func handleGetLocationByExternalId(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		externalId := c.Param("external_id")

		usecase := uc.NewLocationUsecase()
		location, err := usecase.GetLocationByExternalId(ctx, externalId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"location": dto.AdaptLocationDto(location),
		})
	}
}

func handleListCountryCodes(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewLocationUsecase()
		countryCodes, err := usecase.GetCountryIso3CodeForAllLocations(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"country_codes": countryCodes,
		})
	}
}
