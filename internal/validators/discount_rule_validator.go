package validators

import (
	"fmt"
	"sort"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/utils"
)

// ValidateDiscountRule checks a rule before its first persist: display fields,
// scope selection and the tier progression invariant.
func ValidateDiscountRule(rule *models.DiscountRule) ValidationErrors {
	var errs ValidationErrors

	if structErrs := ValidateStruct(rule); structErrs != nil {
		errs = append(errs, structErrs...)
	}

	if rule.ProductID == "" && len(rule.ApplicableProducts) == 0 && !rule.ApplyToAll {
		errs = append(errs, newFieldError("scope", "required",
			"specify productId, applicableProducts or applyToAll"))
	}

	errs = append(errs, ValidateTiers(rule.Tiers)...)

	return errs
}

// ValidateTiers enforces the tier set invariant: 2 to 10 tiers, quantities
// positive and pairwise distinct, discount percents in (0,100) and strictly
// increasing once sorted by quantity. Runs at both insert and update time.
func ValidateTiers(tiers []models.DiscountTier) ValidationErrors {
	var errs ValidationErrors

	if len(tiers) < utils.MinTiersPerRule || len(tiers) > utils.MaxTiersPerRule {
		errs = append(errs, newFieldError("tiers", "len", fmt.Sprintf(
			"rule must have between %d and %d tiers", utils.MinTiersPerRule, utils.MaxTiersPerRule)))
		return errs
	}

	for i, tier := range tiers {
		if tier.Quantity < 1 {
			errs = append(errs, newFieldError(fmt.Sprintf("tiers[%d].quantity", i), "min",
				"quantity must be a positive integer"))
		}
		if tier.DiscountPercent <= 0 || tier.DiscountPercent >= 100 {
			errs = append(errs, newFieldError(fmt.Sprintf("tiers[%d].discountPercent", i), "range",
				"discount must be between 1% and 99%"))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	sorted := make([]models.DiscountTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Quantity < sorted[j].Quantity
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Quantity == sorted[i-1].Quantity {
			errs = append(errs, newFieldError("tiers", "unique",
				fmt.Sprintf("duplicate tier quantity %d", sorted[i].Quantity)))
			return errs
		}
		if sorted[i].DiscountPercent <= sorted[i-1].DiscountPercent {
			errs = append(errs, newFieldError("tiers", "progression",
				"discount percent must increase with quantity"))
			return errs
		}
	}

	return errs
}

// ValidateCalculationInput guards the pricing preconditions. Missing and
// out-of-domain values are reported uniformly as validation errors.
func ValidateCalculationInput(productID string, quantity int, originalPrice float64) ValidationErrors {
	var errs ValidationErrors

	if productID == "" {
		errs = append(errs, newFieldError("productId", "required", "productId is required"))
	}
	if quantity < 1 {
		errs = append(errs, newFieldError("quantity", "min", "quantity must be >= 1"))
	}
	if originalPrice <= 0 {
		errs = append(errs, newFieldError("originalPrice", "gt", "originalPrice must be > 0"))
	}

	return errs
}
