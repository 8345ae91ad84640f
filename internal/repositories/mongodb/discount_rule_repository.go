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
)

type discountRuleRepository struct {
	collection *mongo.Collection
}

func NewDiscountRuleRepository(db *mongo.Database) interfaces.DiscountRuleRepository {
	return &discountRuleRepository{
		collection: db.Collection(utils.CollectionDiscountRules),
	}
}

func (r *discountRuleRepository) Create(ctx context.Context, rule *models.DiscountRule) error {
	rule.ID = primitive.NewObjectID()
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt

	// Tiers are stored sorted ascending by quantity
	rule.SortTiers()

	if rule.ApplicableProducts == nil {
		rule.ApplicableProducts = []string{}
	}

	_, err := r.collection.InsertOne(ctx, rule)
	if err != nil {
		return utils.NewStoreError("create discount rule", err)
	}

	return nil
}

func (r *discountRuleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DiscountRule, error) {
	var rule models.DiscountRule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.NewStoreError("get discount rule", err)
	}

	return &rule, nil
}

func (r *discountRuleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return utils.NewStoreError("update discount rule", err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}

	return nil
}

func (r *discountRuleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.NewStoreError("delete discount rule", err)
	}
	if result.DeletedCount == 0 {
		return utils.ErrNotFound
	}

	return nil
}

func (r *discountRuleRepository) List(ctx context.Context, filter *interfaces.RuleListFilter, params *utils.PaginationParams) ([]*models.DiscountRule, int64, error) {
	query := bson.M{}
	if filter != nil {
		switch filter.Status {
		case utils.StatusActive:
			query["is_active"] = true
		case utils.StatusInactive:
			query["is_active"] = false
		}
		if filter.ProductID != "" {
			query["product_id"] = filter.ProductID
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, utils.NewStoreError("count discount rules", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.GetFindOptions())
	if err != nil {
		return nil, 0, utils.NewStoreError("list discount rules", err)
	}
	defer cursor.Close(ctx)

	var rules []*models.DiscountRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, 0, utils.NewStoreError("decode discount rules", err)
	}

	return rules, total, nil
}

func (r *discountRuleRepository) FindActiveByProduct(ctx context.Context, productID string) (*models.DiscountRule, error) {
	return r.findActive(ctx, bson.M{"product_id": productID, "is_active": true})
}

func (r *discountRuleRepository) FindActiveByProductList(ctx context.Context, productID string) (*models.DiscountRule, error) {
	return r.findActive(ctx, bson.M{"applicable_products": productID, "is_active": true})
}

func (r *discountRuleRepository) FindActiveGlobal(ctx context.Context) (*models.DiscountRule, error) {
	return r.findActive(ctx, bson.M{"apply_to_all": true, "is_active": true})
}

func (r *discountRuleRepository) findActive(ctx context.Context, query bson.M) (*models.DiscountRule, error) {
	var rule models.DiscountRule
	err := r.collection.FindOne(ctx, query).Decode(&rule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, utils.NewStoreError("find active discount rule", err)
	}

	return &rule, nil
}

func (r *discountRuleRepository) IncrementAnalytics(ctx context.Context, id primitive.ObjectID, views, conversions int64, revenue float64) error {
	inc := bson.M{}
	if views != 0 {
		inc["analytics.views"] = views
	}
	if conversions != 0 {
		inc["analytics.conversions"] = conversions
	}
	if revenue != 0 {
		inc["analytics.revenue"] = revenue
	}
	if len(inc) == 0 {
		return nil
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": inc})
	if err != nil {
		return utils.NewStoreError("increment rule analytics", err)
	}

	return nil
}
