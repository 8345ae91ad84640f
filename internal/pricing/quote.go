package pricing

import (
	"math"

	"github.com/italoandres/eshop-backend/internal/models"
)

// Quote is the result of a discount computation.
type Quote struct {
	HasDiscount     bool                 `json:"hasDiscount"`
	OriginalPrice   float64              `json:"originalPrice"`
	FinalPrice      float64              `json:"finalPrice"`
	DiscountPercent float64              `json:"discountPercent"`
	Savings         float64              `json:"savings"`
	CurrentTier     *models.DiscountTier `json:"currentTier,omitempty"`
	NextTier        *models.DiscountTier `json:"nextTier,omitempty"`
}

// NoDiscountQuote is the identity result: final price equals the original.
func NoDiscountQuote(originalPrice float64) *Quote {
	return &Quote{
		HasDiscount:   false,
		OriginalPrice: originalPrice,
		FinalPrice:    originalPrice,
	}
}

// Calculate resolves the applicable tier for the quantity and prices the
// purchase. A quantity below the lowest threshold yields a no-discount quote
// that still reports the lowest tier as the next incentive.
func Calculate(tiers []models.DiscountTier, quantity int, originalPrice float64) *Quote {
	tier := ApplicableTier(tiers, quantity)
	if tier == nil {
		quote := NoDiscountQuote(originalPrice)
		quote.NextTier = LowestTier(tiers)
		return quote
	}

	discountAmount := originalPrice * tier.DiscountPercent / 100

	return &Quote{
		HasDiscount:     true,
		OriginalPrice:   originalPrice,
		FinalPrice:      round2(originalPrice - discountAmount),
		DiscountPercent: tier.DiscountPercent,
		Savings:         round2(discountAmount),
		CurrentTier:     tier,
		NextTier:        NextTier(tiers, quantity),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
