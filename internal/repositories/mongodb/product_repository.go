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
)

const productCacheTTL = 10 * time.Minute

type productRepository struct {
	collection *mongo.Collection
	cache      interfaces.CacheService
}

func NewProductRepository(db *mongo.Database, cache interfaces.CacheService) interfaces.ProductRepository {
	return &productRepository{
		collection: db.Collection(utils.CollectionProducts),
		cache:      cache,
	}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return utils.NewStoreError("create product", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	// Try cache first
	if r.cache != nil {
		var cached models.Product
		if err := r.cache.Get(ctx, productCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.NewStoreError("get product", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, productCacheKey(id), product, productCacheTTL)
	}

	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return utils.NewStoreError("update product", err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.NewStoreError("delete product", err)
	}
	if result.DeletedCount == 0 {
		return utils.ErrNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *productRepository) List(ctx context.Context, filter *interfaces.ProductListFilter, params *utils.PaginationParams) ([]*models.Product, int64, error) {
	query := bson.M{}
	if filter != nil && filter.Section != "" {
		field, ok := sectionFields[filter.Section]
		if !ok {
			return nil, 0, utils.ErrNotFound
		}
		query[field] = true
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, utils.NewStoreError("count products", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.GetFindOptions())
	if err != nil {
		return nil, 0, utils.NewStoreError("list products", err)
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, utils.NewStoreError("decode products", err)
	}

	return products, total, nil
}

var sectionFields = map[string]string{
	"highlights":  "featured_sections.highlights",
	"newArrivals": "featured_sections.new_arrivals",
	"offers":      "featured_sections.offers",
	"main":        "featured_sections.main",
}

func (r *productRepository) invalidate(ctx context.Context, id primitive.ObjectID) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Delete(ctx, productCacheKey(id))
}

func productCacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("product:%s", id.Hex())
}
