package interfaces

import (
	"context"

	"github.com/italoandres/eshop-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *models.Banner) error
	GetByID(ctx context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error)
	Update(ctx context.Context, storeID string, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error)

	// ListByStore returns banners ordered by display order then recency.
	// activeOnly keeps only banners whose active flag is set; the display
	// window is filtered by the service at read time.
	ListByStore(ctx context.Context, storeID string, activeOnly bool) ([]*models.Banner, error)
}
