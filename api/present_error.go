package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/IliyanIlievPH/partner-management/dto"
	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/utils"
)

type syncFailure struct {
	LocationId string `json:"location_id"`
	ErrorCode  string `json:"error_code"`
}

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	logger := utils.LoggerFromContext(ctx)

	var contactSyncError models.ContactSyncError
	switch {
	case errors.As(err, &contactSyncError):
		code := dto.ContactRegistrationFailed
		if errors.Is(err, models.ErrContactUpdateFailed) {
			code = dto.ContactUpdateFailed
		}
		failures := make([]syncFailure, 0, len(contactSyncError.Results))
		for _, result := range contactSyncError.Results {
			if !result.ErrorCode.IsSuccess() {
				failures = append(failures, syncFailure{
					LocationId: result.Location.Id,
					ErrorCode:  string(result.ErrorCode),
				})
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    err.Error(),
			"error_code": code,
			"failures":   failures,
		})
	case errors.Is(err, models.ErrLocationExternalIdNotUnique):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.LocationExternalIdNotUnique,
		})
	case errors.Is(err, models.ErrPartnerClientIdAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.ClientAlreadyRegistered,
		})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.PartnerNotFound,
		})
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.ErrorContext(ctx, "Unexpected error",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}
