package handlers

import (
	"errors"

	"github.com/italoandres/eshop-backend/internal/services"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"

	"github.com/gin-gonic/gin"
)

type StoreSettingsHandler struct {
	settingsService services.StoreSettingsService
}

func NewStoreSettingsHandler(settingsService services.StoreSettingsService) *StoreSettingsHandler {
	return &StoreSettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the store configuration, creating defaults on first
// read (public).
func (h *StoreSettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"settings": settings})
}

// UpdateSettings applies a partial update to the store configuration (admin).
func (h *StoreSettingsHandler) UpdateSettings(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), c.Param("storeId"), updates)
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}

type uploadLogoRequest struct {
	Logo string `json:"logo"`
}

// UploadLogo accepts a base64 image or an external URL for the store logo
// (admin).
func (h *StoreSettingsHandler) UploadLogo(c *gin.Context) {
	var req uploadLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Logo == "" {
		utils.ValidationErrorResponse(c, "logo is required")
		return
	}

	settings, err := h.settingsService.UploadLogo(c.Request.Context(), c.Param("storeId"), req.Logo)
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Logo updated successfully",
		"settings": settings,
	})
}

func respondSettingsError(c *gin.Context, err error) {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		utils.ValidationFieldErrorResponse(c, verrs.Fields())
		return
	}
	if errors.Is(err, utils.ErrInvalidImagePayload) {
		utils.ValidationErrorResponse(c, "invalid image payload")
		return
	}
	if utils.IsNotFound(err) {
		utils.NotFoundResponse(c, "Store settings")
		return
	}
	utils.InternalServerErrorResponse(c, "Failed to process store settings request")
}
