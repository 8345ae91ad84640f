// Package pricing holds the pure tiered-discount computations. Nothing here
// touches a store or a clock it was not handed; every function is total over
// any tier slice, sorted or not.
package pricing

import (
	"sort"

	"github.com/italoandres/eshop-backend/internal/models"
)

// ApplicableTier returns the tier with the largest quantity threshold that the
// purchased quantity meets, or nil when the quantity is below every threshold.
// Input order does not matter; callers may hand over freshly-deserialized
// rules.
func ApplicableTier(tiers []models.DiscountTier, quantity int) *models.DiscountTier {
	var best *models.DiscountTier
	for i := range tiers {
		tier := &tiers[i]
		if quantity < tier.Quantity {
			continue
		}
		if best == nil || tier.Quantity > best.Quantity {
			best = tier
		}
	}
	if best == nil {
		return nil
	}
	t := *best
	return &t
}

// NextTier returns the tier with the smallest quantity threshold strictly
// above the purchased quantity. A nil result signals the best tier is already
// reached.
func NextTier(tiers []models.DiscountTier, quantity int) *models.DiscountTier {
	var next *models.DiscountTier
	for i := range tiers {
		tier := &tiers[i]
		if tier.Quantity <= quantity {
			continue
		}
		if next == nil || tier.Quantity < next.Quantity {
			next = tier
		}
	}
	if next == nil {
		return nil
	}
	t := *next
	return &t
}

// LowestTier returns the tier with the smallest quantity threshold, used to
// upsell buyers who do not qualify for any discount yet.
func LowestTier(tiers []models.DiscountTier) *models.DiscountTier {
	if len(tiers) == 0 {
		return nil
	}
	sorted := make([]models.DiscountTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Quantity < sorted[j].Quantity
	})
	t := sorted[0]
	return &t
}
