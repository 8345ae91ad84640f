package interfaces

import (
	"context"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductListFilter narrows the catalog listing to a featured section.
type ProductListFilter struct {
	Section string // highlights, newArrivals, offers, main or empty
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter *ProductListFilter, params *utils.PaginationParams) ([]*models.Product, int64, error)
}
