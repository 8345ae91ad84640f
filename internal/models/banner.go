package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a promotional banner shown by the storefront carousel.
type Banner struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StoreID   string             `json:"storeId" bson:"store_id" validate:"required"`
	Title     string             `json:"title" bson:"title" validate:"required"`
	ImageURL  string             `json:"imageUrl" bson:"image_url" validate:"required"`
	TargetURL string             `json:"targetUrl" bson:"target_url" validate:"required"`
	Order     int                `json:"order" bson:"order"`
	Active    bool               `json:"active" bson:"active"`
	StartAt   *time.Time         `json:"startAt" bson:"start_at"`
	EndAt     *time.Time         `json:"endAt" bson:"end_at"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// IsActiveNow combines the active flag with the optional display window.
func (b *Banner) IsActiveNow(now time.Time) bool {
	if !b.Active {
		return false
	}
	if b.StartAt != nil && b.StartAt.After(now) {
		return false
	}
	if b.EndAt != nil && b.EndAt.Before(now) {
		return false
	}
	return true
}
