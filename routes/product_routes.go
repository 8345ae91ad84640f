package routes

import (
	"github.com/italoandres/eshop-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupProductRoutes mounts the catalog. Reads are public, writes are admin.
func SetupProductRoutes(api *gin.RouterGroup, handler *handlers.ProductHandler, adminAuth gin.HandlerFunc) {
	products := api.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.GET("/:id", handler.GetProduct)
	}

	admin := api.Group("/products")
	admin.Use(adminAuth)
	{
		admin.POST("", handler.CreateProduct)
		admin.PUT("/:id", handler.UpdateProduct)
		admin.DELETE("/:id", handler.DeleteProduct)
	}
}
