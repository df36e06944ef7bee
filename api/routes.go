package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/IliyanIlievPH/partner-management/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/health", handleHealth(uc))

	router := r.Use(timeoutMiddleware(conf.DefaultTimeout))

	router.GET("/partners", handleListPartners(uc))
	router.POST("/partners", handleCreatePartner(uc))
	router.GET("/partners/by-client-id/:client_id", handleGetPartnerByClientId(uc))
	router.GET("/partners/by-location-id/:location_id", handleGetPartnerByLocationId(uc))
	router.GET("/partners/:partner_id", handleGetPartner(uc))
	router.PUT("/partners/:partner_id", handleUpdatePartner(uc))
	router.DELETE("/partners/:partner_id", handleDeletePartner(uc))

	router.GET("/locations/country-codes", handleListCountryCodes(uc))
	router.GET("/locations/by-external-id/:external_id", handleGetLocationByExternalId(uc))
	router.GET("/locations/:location_id", handleGetLocation(uc))
}
