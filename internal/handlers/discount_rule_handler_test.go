package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/pricing"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/services"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubDiscountService lets each test pin just the methods it exercises.
type stubDiscountService struct {
	createRule      func(input *services.CreateRuleInput) (*models.DiscountRule, error)
	listRules       func(filter *interfaces.RuleListFilter, params *utils.PaginationParams) ([]*models.DiscountRule, int64, error)
	getRule         func(id primitive.ObjectID) (*models.DiscountRule, error)
	updateRule      func(id primitive.ObjectID, update *models.DiscountRuleUpdate) (*models.DiscountRule, error)
	deleteRule      func(id primitive.ObjectID) error
	toggleRule      func(id primitive.ObjectID) (*models.DiscountRule, error)
	getActiveRule   func(productID string) (*models.DiscountRule, error)
	calculate       func(input *services.CalculationInput) (*services.CalculationResult, error)
	trackConversion func(id primitive.ObjectID, revenue float64) error
}

func (s *stubDiscountService) CreateRule(_ context.Context, input *services.CreateRuleInput) (*models.DiscountRule, error) {
	return s.createRule(input)
}

func (s *stubDiscountService) ListRules(_ context.Context, filter *interfaces.RuleListFilter, params *utils.PaginationParams) ([]*models.DiscountRule, int64, error) {
	return s.listRules(filter, params)
}

func (s *stubDiscountService) GetRule(_ context.Context, id primitive.ObjectID) (*models.DiscountRule, error) {
	return s.getRule(id)
}

func (s *stubDiscountService) UpdateRule(_ context.Context, id primitive.ObjectID, update *models.DiscountRuleUpdate) (*models.DiscountRule, error) {
	return s.updateRule(id, update)
}

func (s *stubDiscountService) DeleteRule(_ context.Context, id primitive.ObjectID) error {
	return s.deleteRule(id)
}

func (s *stubDiscountService) ToggleRule(_ context.Context, id primitive.ObjectID) (*models.DiscountRule, error) {
	return s.toggleRule(id)
}

func (s *stubDiscountService) GetActiveRuleForProduct(_ context.Context, productID string) (*models.DiscountRule, error) {
	return s.getActiveRule(productID)
}

func (s *stubDiscountService) Calculate(_ context.Context, input *services.CalculationInput) (*services.CalculationResult, error) {
	return s.calculate(input)
}

func (s *stubDiscountService) TrackConversion(_ context.Context, id primitive.ObjectID, revenue float64) error {
	return s.trackConversion(id, revenue)
}

func calculateRouter(svc services.DiscountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewDiscountRuleHandler(svc)
	router.POST("/api/discount-rules/calculate", handler.Calculate)
	router.GET("/api/discount-rules/product/:productId", handler.GetRuleByProduct)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculateEndpoint(t *testing.T) {
	svc := &stubDiscountService{
		calculate: func(input *services.CalculationInput) (*services.CalculationResult, error) {
			assert.Equal(t, "p1", input.ProductID)
			assert.Equal(t, 2, input.Quantity)
			return &services.CalculationResult{
				Quote: pricing.Quote{
					HasDiscount:     true,
					OriginalPrice:   50,
					FinalPrice:      30,
					DiscountPercent: 40,
					Savings:         20,
					CurrentTier:     &models.DiscountTier{Quantity: 2, DiscountPercent: 40},
					NextTier:        &models.DiscountTier{Quantity: 3, DiscountPercent: 68},
				},
				Rule: &services.RuleSummary{Name: "Bulk"},
			}, nil
		},
	}
	router := calculateRouter(svc)

	rec := postJSON(t, router, "/api/discount-rules/calculate", gin.H{
		"productId":     "p1",
		"quantity":      2,
		"originalPrice": 50,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["hasDiscount"])
	assert.Equal(t, 30.0, body["finalPrice"])
	assert.Equal(t, 40.0, body["discountPercent"])
	assert.Contains(t, body, "nextTier")
	assert.Contains(t, body, "rule")
}

func TestCalculateEndpointFractionalQuantity(t *testing.T) {
	svc := &stubDiscountService{
		calculate: func(_ *services.CalculationInput) (*services.CalculationResult, error) {
			t.Fatal("service must not be called for fractional quantities")
			return nil, nil
		},
	}
	router := calculateRouter(svc)

	rec := postJSON(t, router, "/api/discount-rules/calculate", gin.H{
		"productId":     "p1",
		"quantity":      0.5,
		"originalPrice": 50,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateEndpointValidationErrors(t *testing.T) {
	svc := &stubDiscountService{
		calculate: func(input *services.CalculationInput) (*services.CalculationResult, error) {
			return nil, validators.ValidateCalculationInput(input.ProductID, input.Quantity, input.OriginalPrice)
		},
	}
	router := calculateRouter(svc)

	rec := postJSON(t, router, "/api/discount-rules/calculate", gin.H{
		"productId":     "",
		"quantity":      0,
		"originalPrice": -5,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation error", body["error"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "productId")
	assert.Contains(t, details, "quantity")
	assert.Contains(t, details, "originalPrice")
}

func TestGetRuleByProductEndpoint(t *testing.T) {
	svc := &stubDiscountService{
		getActiveRule: func(productID string) (*models.DiscountRule, error) {
			if productID == "discounted" {
				return &models.DiscountRule{
					Name:     "Bulk",
					IsActive: true,
					Tiers: []models.DiscountTier{
						{Quantity: 2, DiscountPercent: 10},
						{Quantity: 5, DiscountPercent: 20},
					},
				}, nil
			}
			return nil, nil
		},
	}
	router := calculateRouter(svc)

	t.Run("rule found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/discount-rules/product/discounted", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Contains(t, body, "rule")
		rule, ok := body["rule"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Bulk", rule["name"])
	})

	t.Run("no rule", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/discount-rules/product/plain", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Nil(t, body["rule"])
		assert.Equal(t, "No active rule for this product", body["message"])
	})
}

func TestRuleAdminEndpointsErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	missing := primitive.NewObjectID()
	svc := &stubDiscountService{
		getRule: func(id primitive.ObjectID) (*models.DiscountRule, error) {
			return nil, utils.ErrNotFound
		},
		deleteRule: func(id primitive.ObjectID) error {
			return utils.ErrNotFound
		},
	}
	handler := NewDiscountRuleHandler(svc)
	router := gin.New()
	router.GET("/api/discount-rules/:id", handler.GetRule)
	router.DELETE("/api/discount-rules/:id", handler.DeleteRule)

	t.Run("get missing rule", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/discount-rules/"+missing.Hex(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete missing rule", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/discount-rules/"+missing.Hex(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/discount-rules/not-an-id", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
