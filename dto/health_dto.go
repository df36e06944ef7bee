package dto

import (
	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/pure_utils"
)

type HealthStatusResponse struct {
	Statuses []HealthItemStatusResponse `json:"statuses"`
}

type HealthItemStatusResponse struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

func AdaptHealthItemStatusDto(status models.HealthItemStatus) HealthItemStatusResponse {
	return HealthItemStatusResponse{
		Name:   string(status.Name),
		Status: status.Status,
	}
}

func AdaptHealthStatusDto(health models.HealthStatus) HealthStatusResponse {
	return HealthStatusResponse{
		Statuses: pure_utils.Map(health.Statuses, AdaptHealthItemStatusDto),
	}
}
