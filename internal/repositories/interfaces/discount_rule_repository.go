package interfaces

import (
	"context"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RuleListFilter narrows the admin listing. Status filters on the isActive
// flag only; the time window is a read-time concern.
type RuleListFilter struct {
	Status    string // "active", "inactive" or empty
	ProductID string
}

// DiscountRuleRepository owns the persisted rule documents. The FindActive*
// lookups return (nil, nil) when no matching document exists; absence is a
// normal outcome on the pricing path, not an error.
type DiscountRuleRepository interface {
	Create(ctx context.Context, rule *models.DiscountRule) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.DiscountRule, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter *RuleListFilter, params *utils.PaginationParams) ([]*models.DiscountRule, int64, error)

	// Precedence lookups, one query each, in the order the engine consults
	// them: specific product, product-list membership, store-wide.
	FindActiveByProduct(ctx context.Context, productID string) (*models.DiscountRule, error)
	FindActiveByProductList(ctx context.Context, productID string) (*models.DiscountRule, error)
	FindActiveGlobal(ctx context.Context) (*models.DiscountRule, error)

	IncrementAnalytics(ctx context.Context, id primitive.ObjectID, views, conversions int64, revenue float64) error
}
