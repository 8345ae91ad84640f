package routes

import (
	"github.com/italoandres/eshop-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBannerRoutes mounts the per-store banner carousel.
func SetupBannerRoutes(api *gin.RouterGroup, handler *handlers.BannerHandler, adminAuth gin.HandlerFunc) {
	api.GET("/stores/:storeId/banners", handler.GetActiveBanners)

	admin := api.Group("/admin/stores/:storeId/banners")
	admin.Use(adminAuth)
	{
		admin.GET("", handler.ListBanners)
		admin.POST("", handler.CreateBanner)
		admin.PUT("/:id", handler.UpdateBanner)
		admin.DELETE("/:id", handler.DeleteBanner)
	}
}
