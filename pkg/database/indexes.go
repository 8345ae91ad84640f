package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the query paths depend on. Safe to run on
// every startup; CreateMany is a no-op for indexes that already exist.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		"discount_rules": {
			{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "is_active", Value: 1}}},
			{Keys: bson.D{{Key: "applicable_products", Value: 1}, {Key: "is_active", Value: 1}}},
			{Keys: bson.D{{Key: "apply_to_all", Value: 1}, {Key: "is_active", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"banners": {
			{Keys: bson.D{{Key: "store_id", Value: 1}, {Key: "active", Value: 1}, {Key: "order", Value: 1}}},
		},
		"store_settings": {
			{
				Keys:    bson.D{{Key: "store_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"products": {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	return nil
}
