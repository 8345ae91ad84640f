package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceTag is a denormalized display price ("Preço Normal", "Promoção", ...).
// The discount engine never reads these; originalPrice is always supplied by
// the caller.
type PriceTag struct {
	Name  string  `json:"name" bson:"name" validate:"required"`
	Price float64 `json:"price" bson:"price" validate:"required,gt=0"`
}

type ProductCategory struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Image string `json:"image" bson:"image"`
}

type ShippingInfo struct {
	IsFree                 bool       `json:"isFree" bson:"is_free"`
	ShippingCost           float64    `json:"shippingCost" bson:"shipping_cost"`
	EstimatedDeliveryStart *time.Time `json:"estimatedDeliveryStart" bson:"estimated_delivery_start"`
	EstimatedDeliveryEnd   *time.Time `json:"estimatedDeliveryEnd" bson:"estimated_delivery_end"`
}

type VariantImage struct {
	URL     string `json:"url" bson:"url" validate:"required"`
	IsCover bool   `json:"isCover" bson:"is_cover"`
}

type VariantSize struct {
	Size     string  `json:"size" bson:"size" validate:"required"`
	SKU      string  `json:"sku" bson:"sku" validate:"required"`
	EAN      string  `json:"ean" bson:"ean"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price" validate:"gt=0"`
}

type ProductVariant struct {
	Color  string         `json:"color" bson:"color" validate:"required"`
	Images []VariantImage `json:"images" bson:"images"`
	Sizes  []VariantSize  `json:"sizes" bson:"sizes"`
}

// FeaturedSections marks the storefront sections a product is highlighted in.
type FeaturedSections struct {
	Highlights  bool `json:"highlights" bson:"highlights"`
	NewArrivals bool `json:"newArrivals" bson:"new_arrivals"`
	Offers      bool `json:"offers" bson:"offers"`
	Main        bool `json:"main" bson:"main"`
}

type ProductDimensions struct {
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required"`

	PriceTags  []PriceTag        `json:"priceTags" bson:"price_tags"`
	Categories []ProductCategory `json:"categories" bson:"categories"`
	Images     []string          `json:"images" bson:"images"`

	AvailableSizes []string         `json:"availableSizes" bson:"available_sizes"`
	Variants       []ProductVariant `json:"variants" bson:"variants"`

	OriginalPrice      float64            `json:"originalPrice" bson:"original_price"`
	DiscountPercentage float64            `json:"discountPercentage" bson:"discount_percentage"`
	Rating             float64            `json:"rating" bson:"rating"`
	ReviewCount        int                `json:"reviewCount" bson:"review_count"`
	SoldCount          int                `json:"soldCount" bson:"sold_count"`
	ShippingInfo       *ShippingInfo      `json:"shippingInfo" bson:"shipping_info"`
	Weight             float64            `json:"weight" bson:"weight"`
	Dimensions         *ProductDimensions `json:"dimensions" bson:"dimensions"`

	FeaturedSections FeaturedSections `json:"featuredSections" bson:"featured_sections"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// DisplayPrice resolves the price shown on listing cards: the first price tag
// when present, otherwise the lowest variant price.
func (p *Product) DisplayPrice() float64 {
	if len(p.PriceTags) > 0 {
		return p.PriceTags[0].Price
	}

	var min float64
	for _, v := range p.Variants {
		for _, s := range v.Sizes {
			if min == 0 || s.Price < min {
				min = s.Price
			}
		}
	}
	return min
}
