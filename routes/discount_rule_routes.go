package routes

import (
	"github.com/italoandres/eshop-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupDiscountRuleRoutes mounts the discount engine. Rule resolution and
// price calculation are public; rule lifecycle is admin-only.
func SetupDiscountRuleRoutes(api *gin.RouterGroup, handler *handlers.DiscountRuleHandler, adminAuth gin.HandlerFunc) {
	rules := api.Group("/discount-rules")
	{
		rules.GET("/product/:productId", handler.GetRuleByProduct)
		rules.POST("/calculate", handler.Calculate)
		rules.POST("/:id/conversion", handler.TrackConversion)
	}

	admin := api.Group("/discount-rules")
	admin.Use(adminAuth)
	{
		admin.POST("", handler.CreateRule)
		admin.GET("", handler.ListRules)
		admin.GET("/:id", handler.GetRule)
		admin.PUT("/:id", handler.UpdateRule)
		admin.DELETE("/:id", handler.DeleteRule)
		admin.PATCH("/:id/toggle", handler.ToggleRule)
	}
}
