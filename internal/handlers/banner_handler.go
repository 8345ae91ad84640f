package handlers

import (
	"errors"

	"github.com/italoandres/eshop-backend/internal/services"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BannerHandler struct {
	bannerService services.BannerService
}

func NewBannerHandler(bannerService services.BannerService) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
	}
}

// GetActiveBanners returns the storefront carousel for a store (public).
func (h *BannerHandler) GetActiveBanners(c *gin.Context) {
	banners, err := h.bannerService.ActiveBanners(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondBannerError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"data": banners})
}

// ListBanners returns every banner for a store, active or not (admin).
func (h *BannerHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerService.AllBanners(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondBannerError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"data": banners})
}

// CreateBanner creates a banner; base64 images are uploaded first (admin).
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var input services.CreateBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body: "+err.Error())
		return
	}

	banner, err := h.bannerService.CreateBanner(c.Request.Context(), c.Param("storeId"), &input)
	if err != nil {
		respondBannerError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Banner created successfully",
		"banner":  banner,
	})
}

// UpdateBanner applies a partial update to a banner (admin).
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, ok := bannerID(c)
	if !ok {
		return
	}

	var input services.UpdateBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body: "+err.Error())
		return
	}

	banner, err := h.bannerService.UpdateBanner(c.Request.Context(), c.Param("storeId"), id, &input)
	if err != nil {
		respondBannerError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Banner updated successfully",
		"banner":  banner,
	})
}

// DeleteBanner removes a banner (admin).
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, ok := bannerID(c)
	if !ok {
		return
	}

	banner, err := h.bannerService.DeleteBanner(c.Request.Context(), c.Param("storeId"), id)
	if err != nil {
		respondBannerError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Banner deleted successfully",
		"banner":  banner,
	})
}

func bannerID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "invalid banner id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func respondBannerError(c *gin.Context, err error) {
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
		utils.NotFoundResponse(c, "Banner")
		return
	}
	utils.InternalServerErrorResponse(c, "Failed to process banner request")
}
