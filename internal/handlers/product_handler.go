package handlers

import (
	"errors"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/services"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ListProducts returns the catalog, optionally filtered by featured section
// (public).
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := &interfaces.ProductListFilter{
		Section: c.Query("section"),
	}
	params := utils.GetPaginationParams(c)

	products, total, err := h.productService.ListProducts(c.Request.Context(), filter, params)
	if err != nil {
		respondProductError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products":   products,
		"pagination": utils.CreatePaginationMeta(params, total),
	})
}

// GetProduct fetches a single product (public).
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondProductError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// CreateProduct adds a product to the catalog (admin).
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.productService.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		respondProductError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Product created successfully",
		"product": created,
	})
}

// UpdateProduct applies a partial document update (admin).
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, updates)
	if err != nil {
		respondProductError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product (admin).
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondProductError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Product deleted successfully"})
}

func productID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "invalid product id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func respondProductError(c *gin.Context, err error) {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		utils.ValidationFieldErrorResponse(c, verrs.Fields())
		return
	}
	if utils.IsNotFound(err) {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.InternalServerErrorResponse(c, "Failed to process product request")
}
