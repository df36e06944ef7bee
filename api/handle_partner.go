package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IliyanIlievPH/partner-management/dto"
	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/usecases"
)

func handleListPartners(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params struct {
			Name     string `form:"name"`
			Vertical string `form:"business_vertical"`
			Page     int    `form:"page"`
			PageSize int    `form:"page_size"`
		}
		if err := c.ShouldBindQuery(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		filters := models.PartnerFilters{}
		if params.Name != "" {
			filters.Name = &params.Name
		}
		if params.Vertical != "" {
			vertical, err := models.BusinessVerticalFrom(params.Vertical)
			if presentError(ctx, c, err) {
				return
			}
			filters.Vertical = &vertical
		}
		pagination := models.Pagination{
			Page:     params.Page,
			PageSize: params.PageSize,
		}.WithDefaults()

		usecase := uc.NewPartnerUsecase()
		page, err := usecase.ListPartners(ctx, filters, pagination)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptPartnerListPage(page, pagination))
	}
}

func handleGetPartner(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("partner_id")

		usecase := uc.NewPartnerUsecase()
		partner, err := usecase.GetPartnerById(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"partner": dto.AdaptPartnerDto(partner),
		})
	}
}

func handleGetPartnerByClientId(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clientId := c.Param("client_id")

		usecase := uc.NewPartnerUsecase()
		partner, err := usecase.GetPartnerByClientId(ctx, clientId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"partner": dto.AdaptPartnerDto(partner),
		})
	}
}

func handleGetPartnerByLocationId(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		locationId := c.Param("location_id")

		usecase := uc.NewPartnerUsecase()
		partner, err := usecase.GetPartnerByLocationId(ctx, locationId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"partner": dto.AdaptPartnerDto(partner),
		})
	}
}

func handleCreatePartner(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.PartnerBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		partner, err := dto.AdaptPartnerBody(data)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewPartnerUsecase()
		created, err := usecase.CreatePartner(ctx, partner)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"partner": dto.AdaptPartnerDto(created),
		})
	}
}

func handleUpdatePartner(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("partner_id")

		var data dto.PartnerBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		partner, err := dto.AdaptPartnerBody(data)
		if presentError(ctx, c, err) {
			return
		}
		partner.Id = id

		usecase := uc.NewPartnerUsecase()
		updated, err := usecase.UpdatePartner(ctx, partner)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"partner": dto.AdaptPartnerDto(updated),
		})
	}
}

func handleDeletePartner(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("partner_id")

		usecase := uc.NewPartnerUsecase()
		if presentError(ctx, c, usecase.DeletePartner(ctx, id)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
