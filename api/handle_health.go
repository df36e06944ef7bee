package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IliyanIlievPH/partner-management/dto"
	"github.com/IliyanIlievPH/partner-management/usecases"
)

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewHealthUsecase()
		err := usecase.Liveness(c.Request.Context())
		if presentError(c.Request.Context(), c, err) {
			return
		}
		c.Status(http.StatusOK)
	}
}

func handleHealth(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewHealthUsecase()
		health := usecase.GetHealthStatus(c.Request.Context())

		status := http.StatusOK
		if !health.IsHealthy() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, dto.AdaptHealthStatusDto(health))
	}
}
