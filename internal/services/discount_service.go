package services

import (
	"context"
	"time"

	"github.com/italoandres/eshop-backend/internal/cache"
	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/pricing"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"
	"github.com/italoandres/eshop-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRuleInput struct {
	ProductID          string                `json:"productId"`
	ApplicableProducts []string              `json:"applicableProducts"`
	ApplyToAll         bool                  `json:"applyToAll"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	Tiers              []models.DiscountTier `json:"tiers"`
	StartDate          *time.Time            `json:"startDate"`
	EndDate            *time.Time            `json:"endDate"`
	CreatedBy          string                `json:"-"`
}

type CalculationInput struct {
	ProductID     string  `json:"productId"`
	Quantity      int     `json:"quantity"`
	OriginalPrice float64 `json:"originalPrice"`
}

// RuleSummary is the slice of the rule echoed on a calculate response.
type RuleSummary struct {
	ID          primitive.ObjectID    `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	AllTiers    []models.DiscountTier `json:"allTiers"`
}

type CalculationResult struct {
	pricing.Quote
	Rule    *RuleSummary `json:"rule,omitempty"`
	Message string       `json:"message,omitempty"`
}

// DiscountService is the discount engine: rule lifecycle, precedence-based
// lookup, tier resolution and pricing.
type DiscountService interface {
	CreateRule(ctx context.Context, input *CreateRuleInput) (*models.DiscountRule, error)
	ListRules(ctx context.Context, filter *interfaces.RuleListFilter, params *utils.PaginationParams) ([]*models.DiscountRule, int64, error)
	GetRule(ctx context.Context, id primitive.ObjectID) (*models.DiscountRule, error)
	UpdateRule(ctx context.Context, id primitive.ObjectID, update *models.DiscountRuleUpdate) (*models.DiscountRule, error)
	DeleteRule(ctx context.Context, id primitive.ObjectID) error
	ToggleRule(ctx context.Context, id primitive.ObjectID) (*models.DiscountRule, error)

	// GetActiveRuleForProduct resolves the precedence chain and applies the
	// effective-activation filter. Returns (nil, nil) when no rule applies.
	GetActiveRuleForProduct(ctx context.Context, productID string) (*models.DiscountRule, error)
	Calculate(ctx context.Context, input *CalculationInput) (*CalculationResult, error)
	TrackConversion(ctx context.Context, id primitive.ObjectID, revenue float64) error
}

type discountService struct {
	repo      interfaces.DiscountRuleRepository
	ruleCache *cache.RuleCache
	logger    *logger.Logger
	now       func() time.Time
}

func NewDiscountService(repo interfaces.DiscountRuleRepository, ruleCache *cache.RuleCache, log *logger.Logger) DiscountService {
	return &discountService{
		repo:      repo,
		ruleCache: ruleCache,
		logger:    log,
		now:       time.Now,
	}
}

// ruleLookup is one step of the precedence chain. The order of the slice is
// the tie-break: first match wins.
type ruleLookup struct {
	name string
	find func(ctx context.Context, productID string) (*models.DiscountRule, error)
}

func (s *discountService) lookups() []ruleLookup {
	return []ruleLookup{
		{name: "specific", find: s.repo.FindActiveByProduct},
		{name: "list", find: s.repo.FindActiveByProductList},
		{name: "global", find: func(ctx context.Context, _ string) (*models.DiscountRule, error) {
			return s.repo.FindActiveGlobal(ctx)
		}},
	}
}

func (s *discountService) findActiveRule(ctx context.Context, productID string) (*models.DiscountRule, error) {
	for _, lookup := range s.lookups() {
		rule, err := lookup.find(ctx, productID)
		if err != nil {
			return nil, err
		}
		if rule != nil {
			return rule, nil
		}
	}
	return nil, nil
}

func (s *discountService) CreateRule(ctx context.Context, input *CreateRuleInput) (*models.DiscountRule, error) {
	rule := &models.DiscountRule{
		ProductID:          input.ProductID,
		ApplicableProducts: input.ApplicableProducts,
		ApplyToAll:         input.ApplyToAll,
		Name:               input.Name,
		Description:        input.Description,
		Tiers:              input.Tiers,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		IsActive:           true,
		CreatedBy:          input.CreatedBy,
	}
	if rule.CreatedBy == "" {
		rule.CreatedBy = "admin"
	}

	if errs := validators.ValidateDiscountRule(rule); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, err
	}

	// Invalidate after successful persist
	s.invalidateFor(rule)

	s.logger.LogAdminAction(rule.CreatedBy, "create", "discount_rule", map[string]interface{}{
		"rule_id": rule.ID.Hex(),
		"name":    rule.Name,
	})

	return rule, nil
}

func (s *discountService) ListRules(ctx context.Context, filter *interfaces.RuleListFilter, params *utils.PaginationParams) ([]*models.DiscountRule, int64, error) {
	return s.repo.List(ctx, filter, params)
}

func (s *discountService) GetRule(ctx context.Context, id primitive.ObjectID) (*models.DiscountRule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *discountService) UpdateRule(ctx context.Context, id primitive.ObjectID, update *models.DiscountRuleUpdate) (*models.DiscountRule, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Name != nil {
		rule.Name = *update.Name
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		rule.Description = *update.Description
		updates["description"] = *update.Description
	}
	if update.IsActive != nil {
		rule.IsActive = *update.IsActive
		updates["is_active"] = *update.IsActive
	}
	if update.StartDate != nil {
		rule.StartDate = update.StartDate
		updates["start_date"] = update.StartDate
	}
	if update.EndDate != nil {
		rule.EndDate = update.EndDate
		updates["end_date"] = update.EndDate
	}
	if update.Tiers != nil {
		rule.Tiers = *update.Tiers
		rule.SortTiers()
		updates["tiers"] = rule.Tiers
	}

	if errs := validators.ValidateDiscountRule(rule); len(errs) > 0 {
		return nil, errs
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	s.invalidateFor(rule)

	s.logger.WithRuleID(id.Hex()).Info("Discount rule updated")

	return s.repo.GetByID(ctx, id)
}

func (s *discountService) DeleteRule(ctx context.Context, id primitive.ObjectID) error {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFor(rule)

	s.logger.WithRuleID(id.Hex()).Info("Discount rule deleted")

	return nil
}

func (s *discountService) ToggleRule(ctx context.Context, id primitive.ObjectID) (*models.DiscountRule, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rule.IsActive = !rule.IsActive
	if err := s.repo.Update(ctx, id, map[string]interface{}{"is_active": rule.IsActive}); err != nil {
		return nil, err
	}

	s.invalidateFor(rule)

	s.logger.WithRuleID(id.Hex()).WithField("is_active", rule.IsActive).Info("Discount rule toggled")

	return rule, nil
}

func (s *discountService) GetActiveRuleForProduct(ctx context.Context, productID string) (*models.DiscountRule, error) {
	rule, err := s.findActiveRule(ctx, productID)
	if err != nil {
		return nil, err
	}
	if rule == nil || !rule.IsCurrentlyActive(s.now()) {
		return nil, nil
	}

	// View accounting only; a failed increment never fails the read.
	if err := s.repo.IncrementAnalytics(ctx, rule.ID, 1, 0, 0); err != nil {
		s.logger.WithError(err).WithRuleID(rule.ID.Hex()).Warn("Failed to track rule view")
	}

	return rule, nil
}

func (s *discountService) Calculate(ctx context.Context, input *CalculationInput) (*CalculationResult, error) {
	if errs := validators.ValidateCalculationInput(input.ProductID, input.Quantity, input.OriginalPrice); len(errs) > 0 {
		return nil, errs
	}

	rule, cached := s.ruleCache.Get(input.ProductID)
	if !cached {
		var err error
		rule, err = s.findActiveRule(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		s.ruleCache.Set(input.ProductID, rule)
	}

	// The effective-activation window is re-checked at calculation time: a
	// cached rule may have elapsed since it was stored.
	if rule == nil || !rule.IsCurrentlyActive(s.now()) {
		quote := pricing.NoDiscountQuote(input.OriginalPrice)
		return &CalculationResult{
			Quote:   *quote,
			Message: "No active promotion for this product",
		}, nil
	}

	quote := pricing.Calculate(rule.Tiers, input.Quantity, input.OriginalPrice)

	s.logger.LogPricingEvent(input.ProductID, input.Quantity, quote.DiscountPercent, cached)

	return &CalculationResult{
		Quote: *quote,
		Rule: &RuleSummary{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			AllTiers:    rule.Tiers,
		},
	}, nil
}

func (s *discountService) TrackConversion(ctx context.Context, id primitive.ObjectID, revenue float64) error {
	return s.repo.IncrementAnalytics(ctx, id, 0, 1, revenue)
}

// invalidateFor drops the cache entries a rule write affects. Store-wide
// rules clear everything; scoped rules drop only their products.
func (s *discountService) invalidateFor(rule *models.DiscountRule) {
	if rule.ApplyToAll {
		s.ruleCache.Clear()
		return
	}
	s.ruleCache.Invalidate(rule.AffectedProducts()...)
}
