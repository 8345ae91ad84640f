package interfaces

import (
	"context"

	"github.com/italoandres/eshop-backend/internal/models"
)

type StoreSettingsRepository interface {
	GetByStoreID(ctx context.Context, storeID string) (*models.StoreSettings, error)
	Create(ctx context.Context, settings *models.StoreSettings) error
	Update(ctx context.Context, storeID string, updates map[string]interface{}) (*models.StoreSettings, error)
}
