package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/services"
)

// SettingsController exposes the singleton settings document and the public
// shipping-rate preview.
type SettingsController struct {
	service *services.SettingsService
}

// NewSettingsController creates a new SettingsController.
func NewSettingsController(service *services.SettingsService) *SettingsController {
	return &SettingsController{service: service}
}

// GetSettings returns the settings document, creating the defaults on first
// access. Admin only.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.service.Get(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateSettings applies a partial update: only the sections present in the
// body replace their stored counterparts. Admin only.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req services.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := sc.service.Update(c.Request.Context(), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// GetShippingRate previews the shipping cost for a region before checkout.
// Public; must resolve exactly like order placement does.
func (sc *SettingsController) GetShippingRate(c *gin.Context) {
	rate, err := sc.service.PreviewShippingRate(c.Request.Context(), c.Query("region"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"rate": rate}})
}
