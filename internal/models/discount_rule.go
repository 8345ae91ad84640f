package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscountTier is one quantity threshold / discount percent step. A rule's
// tiers are kept sorted ascending by quantity on every persist.
type DiscountTier struct {
	Quantity        int     `json:"quantity" bson:"quantity" validate:"required,min=1"`
	DiscountPercent float64 `json:"discountPercent" bson:"discount_percent" validate:"required,gt=0,lt=100"`
}

// RuleAnalytics holds accounting counters. They are never consulted by the
// pricing path.
type RuleAnalytics struct {
	Views       int64   `json:"views" bson:"views"`
	Conversions int64   `json:"conversions" bson:"conversions"`
	Revenue     float64 `json:"revenue" bson:"revenue"`
}

// DiscountRule is a tiered quantity-discount rule. Exactly one scope mechanism
// selects the products it covers: a single product id, an explicit product
// list, or the store-wide flag. Scope is immutable after creation.
type DiscountRule struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID          string             `json:"productId,omitempty" bson:"product_id,omitempty"`
	ApplicableProducts []string           `json:"applicableProducts" bson:"applicable_products"`
	ApplyToAll         bool               `json:"applyToAll" bson:"apply_to_all"`
	Name               string             `json:"name" bson:"name" validate:"required,max=100"`
	Description        string             `json:"description" bson:"description" validate:"max=500"`
	IsActive           bool               `json:"isActive" bson:"is_active"`
	StartDate          *time.Time         `json:"startDate" bson:"start_date"`
	EndDate            *time.Time         `json:"endDate" bson:"end_date"`
	Tiers              []DiscountTier     `json:"tiers" bson:"tiers"`
	CreatedBy          string             `json:"createdBy" bson:"created_by"`
	Analytics          RuleAnalytics      `json:"analytics" bson:"analytics"`
	CreatedAt          time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updated_at"`
}

// IsCurrentlyActive evaluates effective activation at the given instant:
// the isActive flag combined with the optional start/end window. Re-evaluated
// on every read, never persisted.
func (r *DiscountRule) IsCurrentlyActive(now time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.StartDate != nil && now.Before(*r.StartDate) {
		return false
	}
	if r.EndDate != nil && now.After(*r.EndDate) {
		return false
	}
	return true
}

// SortTiers orders the tiers ascending by quantity in place.
func (r *DiscountRule) SortTiers() {
	sort.Slice(r.Tiers, func(i, j int) bool {
		return r.Tiers[i].Quantity < r.Tiers[j].Quantity
	})
}

// AffectedProducts lists the product ids whose cached rule a write to this
// rule invalidates. Empty for store-wide rules, which clear the whole cache.
func (r *DiscountRule) AffectedProducts() []string {
	if r.ApplyToAll {
		return nil
	}
	if r.ProductID != "" {
		return []string{r.ProductID}
	}
	return r.ApplicableProducts
}

// DiscountRuleUpdate carries the partial-field admin update. Scope fields are
// deliberately absent: they are immutable after creation.
type DiscountRuleUpdate struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Tiers       *[]DiscountTier `json:"tiers"`
	IsActive    *bool           `json:"isActive"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
}
