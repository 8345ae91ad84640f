package handlers

import (
	"errors"
	"math"

	"github.com/italoandres/eshop-backend/internal/middleware"
	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/services"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DiscountRuleHandler struct {
	discountService services.DiscountService
}

func NewDiscountRuleHandler(discountService services.DiscountService) *DiscountRuleHandler {
	return &DiscountRuleHandler{
		discountService: discountService,
	}
}

// CreateRule creates a new discount rule (admin).
func (h *DiscountRuleHandler) CreateRule(c *gin.Context) {
	var input services.CreateRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body: "+err.Error())
		return
	}

	input.CreatedBy = middleware.Principal(c)

	rule, err := h.discountService.CreateRule(c.Request.Context(), &input)
	if err != nil {
		respondRuleError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Rule created successfully",
		"rule":    rule,
	})
}

// ListRules lists rules with status/productId filters and pagination (admin).
func (h *DiscountRuleHandler) ListRules(c *gin.Context) {
	filter := &interfaces.RuleListFilter{
		Status:    c.Query("status"),
		ProductID: c.Query("productId"),
	}
	params := utils.GetPaginationParams(c)

	rules, total, err := h.discountService.ListRules(c.Request.Context(), filter, params)
	if err != nil {
		respondRuleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"rules":      rules,
		"pagination": utils.CreatePaginationMeta(params, total),
	})
}

// GetRule fetches a single rule by id (admin).
func (h *DiscountRuleHandler) GetRule(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}

	rule, err := h.discountService.GetRule(c.Request.Context(), id)
	if err != nil {
		respondRuleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"rule": rule})
}

// UpdateRule applies a partial-field update (admin). Scope fields are
// immutable and ignored if present in the body.
func (h *DiscountRuleHandler) UpdateRule(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}

	var update models.DiscountRuleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body: "+err.Error())
		return
	}

	rule, err := h.discountService.UpdateRule(c.Request.Context(), id, &update)
	if err != nil {
		respondRuleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Rule updated successfully",
		"rule":    rule,
	})
}

// DeleteRule removes a rule (admin).
func (h *DiscountRuleHandler) DeleteRule(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}

	if err := h.discountService.DeleteRule(c.Request.Context(), id); err != nil {
		respondRuleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Rule deleted successfully"})
}

// ToggleRule flips the isActive flag (admin).
func (h *DiscountRuleHandler) ToggleRule(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}

	rule, err := h.discountService.ToggleRule(c.Request.Context(), id)
	if err != nil {
		respondRuleError(c, err)
		return
	}

	message := "Rule deactivated successfully"
	if rule.IsActive {
		message = "Rule activated successfully"
	}

	utils.SuccessResponse(c, gin.H{
		"message": message,
		"rule":    rule,
	})
}

// GetRuleByProduct resolves the active rule for a product (public).
func (h *DiscountRuleHandler) GetRuleByProduct(c *gin.Context) {
	productID := c.Param("productId")

	rule, err := h.discountService.GetActiveRuleForProduct(c.Request.Context(), productID)
	if err != nil {
		respondRuleError(c, err)
		return
	}

	if rule == nil {
		utils.SuccessResponse(c, gin.H{
			"rule":    nil,
			"message": "No active rule for this product",
		})
		return
	}

	utils.SuccessResponse(c, gin.H{"rule": rule})
}

type calculateRequest struct {
	ProductID     string  `json:"productId"`
	Quantity      float64 `json:"quantity"`
	OriginalPrice float64 `json:"originalPrice"`
}

// Calculate prices a quantity against the product's active rule (public).
func (h *DiscountRuleHandler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "productId, quantity and originalPrice are required")
		return
	}

	// Quantity arrives as a JSON number; fractional values are out of domain.
	if req.Quantity != math.Trunc(req.Quantity) {
		utils.ValidationErrorResponse(c, "quantity must be an integer")
		return
	}

	result, err := h.discountService.Calculate(c.Request.Context(), &services.CalculationInput{
		ProductID:     req.ProductID,
		Quantity:      int(req.Quantity),
		OriginalPrice: req.OriginalPrice,
	})
	if err != nil {
		respondRuleError(c, err)
		return
	}

	payload := gin.H{
		"hasDiscount":     result.HasDiscount,
		"originalPrice":   result.OriginalPrice,
		"finalPrice":      result.FinalPrice,
		"discountPercent": result.DiscountPercent,
		"savings":         result.Savings,
	}
	if result.CurrentTier != nil {
		payload["currentTier"] = result.CurrentTier
	}
	if result.NextTier != nil {
		payload["nextTier"] = result.NextTier
	}
	if result.Rule != nil {
		payload["rule"] = result.Rule
	}
	if result.Message != "" {
		payload["message"] = result.Message
	}

	utils.SuccessResponse(c, payload)
}

type conversionRequest struct {
	Revenue float64 `json:"revenue"`
}

// TrackConversion records a checkout attributed to a rule (public, called by
// the storefront after purchase). Accounting only.
func (h *DiscountRuleHandler) TrackConversion(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}

	var req conversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "invalid request body")
		return
	}

	if err := h.discountService.TrackConversion(c.Request.Context(), id, req.Revenue); err != nil {
		respondRuleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Conversion tracked"})
}

func ruleID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "invalid rule id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func respondRuleError(c *gin.Context, err error) {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		utils.ValidationFieldErrorResponse(c, verrs.Fields())
		return
	}
	if utils.IsNotFound(err) {
		utils.NotFoundResponse(c, "Rule")
		return
	}
	utils.InternalServerErrorResponse(c, "Failed to process discount rule request")
}
