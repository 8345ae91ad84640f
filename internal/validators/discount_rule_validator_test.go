package validators

import (
	"testing"

	"github.com/italoandres/eshop-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTiers() []models.DiscountTier {
	return []models.DiscountTier{
		{Quantity: 2, DiscountPercent: 10},
		{Quantity: 5, DiscountPercent: 25},
	}
}

func validRule() *models.DiscountRule {
	return &models.DiscountRule{
		ProductID: "prod-1",
		Name:      "Bulk discount",
		IsActive:  true,
		Tiers:     validTiers(),
	}
}

func TestValidateDiscountRuleValid(t *testing.T) {
	assert.Empty(t, ValidateDiscountRule(validRule()))
}

func TestValidateDiscountRuleRequiresScope(t *testing.T) {
	rule := validRule()
	rule.ProductID = ""
	rule.ApplicableProducts = nil
	rule.ApplyToAll = false

	errs := ValidateDiscountRule(rule)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs.Fields(), "scope")
}

func TestValidateDiscountRuleAcceptsEachScope(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.DiscountRule)
	}{
		{name: "single product", modify: func(r *models.DiscountRule) {
			r.ProductID = "prod-1"
		}},
		{name: "product list", modify: func(r *models.DiscountRule) {
			r.ProductID = ""
			r.ApplicableProducts = []string{"prod-1", "prod-2"}
		}},
		{name: "store wide", modify: func(r *models.DiscountRule) {
			r.ProductID = ""
			r.ApplyToAll = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validRule()
			tt.modify(rule)
			assert.Empty(t, ValidateDiscountRule(rule))
		})
	}
}

func TestValidateDiscountRuleRequiresName(t *testing.T) {
	rule := validRule()
	rule.Name = ""

	errs := ValidateDiscountRule(rule)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs.Fields(), "Name")
}

func TestValidateTiers(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []models.DiscountTier
		wantErr bool
	}{
		{
			name:  "two valid tiers",
			tiers: validTiers(),
		},
		{
			name: "unsorted but otherwise valid",
			tiers: []models.DiscountTier{
				{Quantity: 5, DiscountPercent: 25},
				{Quantity: 2, DiscountPercent: 10},
			},
		},
		{
			name:    "single tier is too few",
			tiers:   []models.DiscountTier{{Quantity: 2, DiscountPercent: 10}},
			wantErr: true,
		},
		{
			name:    "empty set",
			tiers:   nil,
			wantErr: true,
		},
		{
			name: "eleven tiers is too many",
			tiers: func() []models.DiscountTier {
				tiers := make([]models.DiscountTier, 11)
				for i := range tiers {
					tiers[i] = models.DiscountTier{Quantity: i + 1, DiscountPercent: float64(i + 1)}
				}
				return tiers
			}(),
			wantErr: true,
		},
		{
			name: "zero quantity",
			tiers: []models.DiscountTier{
				{Quantity: 0, DiscountPercent: 10},
				{Quantity: 5, DiscountPercent: 25},
			},
			wantErr: true,
		},
		{
			name: "zero percent",
			tiers: []models.DiscountTier{
				{Quantity: 2, DiscountPercent: 0},
				{Quantity: 5, DiscountPercent: 25},
			},
			wantErr: true,
		},
		{
			name: "hundred percent",
			tiers: []models.DiscountTier{
				{Quantity: 2, DiscountPercent: 10},
				{Quantity: 5, DiscountPercent: 100},
			},
			wantErr: true,
		},
		{
			name: "duplicate quantities",
			tiers: []models.DiscountTier{
				{Quantity: 2, DiscountPercent: 10},
				{Quantity: 2, DiscountPercent: 25},
			},
			wantErr: true,
		},
		{
			name: "non increasing percent",
			tiers: []models.DiscountTier{
				{Quantity: 2, DiscountPercent: 25},
				{Quantity: 5, DiscountPercent: 10},
			},
			wantErr: true,
		},
		{
			name: "equal percent across quantities",
			tiers: []models.DiscountTier{
				{Quantity: 2, DiscountPercent: 10},
				{Quantity: 5, DiscountPercent: 10},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateTiers(tt.tiers)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateCalculationInput(t *testing.T) {
	tests := []struct {
		name          string
		productID     string
		quantity      int
		originalPrice float64
		wantFields    []string
	}{
		{name: "valid", productID: "p1", quantity: 2, originalPrice: 50},
		{name: "missing product", quantity: 2, originalPrice: 50, wantFields: []string{"productId"}},
		{name: "zero quantity", productID: "p1", quantity: 0, originalPrice: 50, wantFields: []string{"quantity"}},
		{name: "negative quantity", productID: "p1", quantity: -3, originalPrice: 50, wantFields: []string{"quantity"}},
		{name: "zero price", productID: "p1", quantity: 2, originalPrice: 0, wantFields: []string{"originalPrice"}},
		{name: "negative price", productID: "p1", quantity: 2, originalPrice: -10, wantFields: []string{"originalPrice"}},
		{name: "everything wrong", quantity: 0, originalPrice: 0, wantFields: []string{"productId", "quantity", "originalPrice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCalculationInput(tt.productID, tt.quantity, tt.originalPrice)
			if len(tt.wantFields) == 0 {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, len(tt.wantFields))
			fields := errs.Fields()
			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}
