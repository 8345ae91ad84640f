package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsCurrentlyActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		rule DiscountRule
		want bool
	}{
		{name: "active without window", rule: DiscountRule{IsActive: true}, want: true},
		{name: "inactive flag wins", rule: DiscountRule{IsActive: false, StartDate: &past, EndDate: &future}, want: false},
		{name: "inside window", rule: DiscountRule{IsActive: true, StartDate: &past, EndDate: &future}, want: true},
		{name: "before start", rule: DiscountRule{IsActive: true, StartDate: &future}, want: false},
		{name: "after end", rule: DiscountRule{IsActive: true, EndDate: &past}, want: false},
		{name: "start only, already begun", rule: DiscountRule{IsActive: true, StartDate: &past}, want: true},
		{name: "end only, not yet over", rule: DiscountRule{IsActive: true, EndDate: &future}, want: true},
		{name: "boundary instant counts", rule: DiscountRule{IsActive: true, StartDate: &now, EndDate: &now}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.IsCurrentlyActive(now))
		})
	}
}

func TestSortTiers(t *testing.T) {
	rule := DiscountRule{
		Tiers: []DiscountTier{
			{Quantity: 10, DiscountPercent: 68},
			{Quantity: 1, DiscountPercent: 25},
			{Quantity: 5, DiscountPercent: 40},
		},
	}

	rule.SortTiers()

	assert.Equal(t, 1, rule.Tiers[0].Quantity)
	assert.Equal(t, 5, rule.Tiers[1].Quantity)
	assert.Equal(t, 10, rule.Tiers[2].Quantity)
}

func TestAffectedProducts(t *testing.T) {
	tests := []struct {
		name string
		rule DiscountRule
		want []string
	}{
		{name: "single product", rule: DiscountRule{ProductID: "p1"}, want: []string{"p1"}},
		{name: "product list", rule: DiscountRule{ApplicableProducts: []string{"p1", "p2"}}, want: []string{"p1", "p2"}},
		{name: "store wide has no enumerable set", rule: DiscountRule{ApplyToAll: true, ProductID: "ignored"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.AffectedProducts())
		})
	}
}
