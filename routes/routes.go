package routes

import (
	"github.com/italoandres/eshop-backend/internal/config"
	"github.com/italoandres/eshop-backend/internal/handlers"
	"github.com/italoandres/eshop-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	DiscountRules *handlers.DiscountRuleHandler
	Banners       *handlers.BannerHandler
	Products      *handlers.ProductHandler
	StoreSettings *handlers.StoreSettingsHandler
}

// SetupRoutes mounts the public storefront surface and the token-guarded
// admin surface under /api.
func SetupRoutes(router *gin.Engine, h *Handlers, security *config.SecurityConfig) {
	api := router.Group("/api")
	adminAuth := middleware.AdminRequired(security)

	SetupDiscountRuleRoutes(api, h.DiscountRules, adminAuth)
	SetupBannerRoutes(api, h.Banners, adminAuth)
	SetupProductRoutes(api, h.Products, adminAuth)
	SetupStoreSettingsRoutes(api, h.StoreSettings, adminAuth)
}
