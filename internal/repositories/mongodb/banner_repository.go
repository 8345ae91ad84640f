package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bannerRepository struct {
	collection *mongo.Collection
}

func NewBannerRepository(db *mongo.Database) interfaces.BannerRepository {
	return &bannerRepository{
		collection: db.Collection(utils.CollectionBanners),
	}
}

func (r *bannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	banner.ID = primitive.NewObjectID()
	banner.CreatedAt = time.Now()
	banner.UpdatedAt = banner.CreatedAt

	_, err := r.collection.InsertOne(ctx, banner)
	if err != nil {
		return utils.NewStoreError("create banner", err)
	}

	return nil
}

func (r *bannerRepository) GetByID(ctx context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error) {
	var banner models.Banner
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "store_id": storeID}).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.NewStoreError("get banner", err)
	}

	return &banner, nil
}

func (r *bannerRepository) Update(ctx context.Context, storeID string, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "store_id": storeID},
		bson.M{"$set": updates},
	)
	if err != nil {
		return utils.NewStoreError("update banner", err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}

	return nil
}

func (r *bannerRepository) Delete(ctx context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error) {
	var banner models.Banner
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "store_id": storeID}).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.NewStoreError("delete banner", err)
	}

	return &banner, nil
}

func (r *bannerRepository) ListByStore(ctx context.Context, storeID string, activeOnly bool) ([]*models.Banner, error) {
	query := bson.M{"store_id": storeID}
	if activeOnly {
		query["active"] = true
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, utils.NewStoreError("list banners", err)
	}
	defer cursor.Close(ctx)

	var banners []*models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, utils.NewStoreError("decode banners", err)
	}

	return banners, nil
}
