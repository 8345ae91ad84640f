package routes

import (
	"github.com/italoandres/eshop-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupStoreSettingsRoutes mounts the white-label configuration. The
// storefront reads settings unauthenticated; changes are admin-only.
func SetupStoreSettingsRoutes(api *gin.RouterGroup, handler *handlers.StoreSettingsHandler, adminAuth gin.HandlerFunc) {
	api.GET("/store-settings/:storeId", handler.GetSettings)

	admin := api.Group("/store-settings/:storeId")
	admin.Use(adminAuth)
	{
		admin.PUT("", handler.UpdateSettings)
		admin.POST("/logo", handler.UploadLogo)
	}
}
