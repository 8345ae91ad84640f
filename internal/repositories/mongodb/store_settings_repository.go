package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCacheTTL = 10 * time.Minute

type storeSettingsRepository struct {
	collection *mongo.Collection
	cache      interfaces.CacheService
}

func NewStoreSettingsRepository(db *mongo.Database, cache interfaces.CacheService) interfaces.StoreSettingsRepository {
	return &storeSettingsRepository{
		collection: db.Collection(utils.CollectionStoreSettings),
		cache:      cache,
	}
}

func (r *storeSettingsRepository) GetByStoreID(ctx context.Context, storeID string) (*models.StoreSettings, error) {
	// Try cache first
	if r.cache != nil {
		var cached models.StoreSettings
		if err := r.cache.Get(ctx, settingsCacheKey(storeID), &cached); err == nil {
			return &cached, nil
		}
	}

	var settings models.StoreSettings
	err := r.collection.FindOne(ctx, bson.M{"store_id": storeID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.NewStoreError("get store settings", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, settingsCacheKey(storeID), settings, settingsCacheTTL)
	}

	return &settings, nil
}

func (r *storeSettingsRepository) Create(ctx context.Context, settings *models.StoreSettings) error {
	settings.ID = primitive.NewObjectID()
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = settings.CreatedAt

	_, err := r.collection.InsertOne(ctx, settings)
	if err != nil {
		return utils.NewStoreError("create store settings", err)
	}

	return nil
}

func (r *storeSettingsRepository) Update(ctx context.Context, storeID string, updates map[string]interface{}) (*models.StoreSettings, error) {
	updates["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var settings models.StoreSettings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"store_id": storeID},
		bson.M{"$set": updates},
		opts,
	).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.NewStoreError("update store settings", err)
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, settingsCacheKey(storeID))
	}

	return &settings, nil
}

func settingsCacheKey(storeID string) string {
	return fmt.Sprintf("store_settings:%s", storeID)
}
