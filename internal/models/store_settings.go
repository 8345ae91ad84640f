package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoreAddress struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zip_code"`
	Country string `json:"country" bson:"country"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	Twitter   string `json:"twitter" bson:"twitter"`
	WhatsApp  string `json:"whatsapp" bson:"whatsapp"`
}

type DayHours struct {
	Open   string `json:"open" bson:"open"`
	Close  string `json:"close" bson:"close"`
	Closed bool   `json:"closed" bson:"closed"`
}

type BusinessHours struct {
	Monday    DayHours `json:"monday" bson:"monday"`
	Tuesday   DayHours `json:"tuesday" bson:"tuesday"`
	Wednesday DayHours `json:"wednesday" bson:"wednesday"`
	Thursday  DayHours `json:"thursday" bson:"thursday"`
	Friday    DayHours `json:"friday" bson:"friday"`
	Saturday  DayHours `json:"saturday" bson:"saturday"`
	Sunday    DayHours `json:"sunday" bson:"sunday"`
}

// StoreSettings is the per-store white-label configuration, keyed uniquely by
// store id. A missing document is created with defaults on first read.
type StoreSettings struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StoreID        string             `json:"storeId" bson:"store_id" validate:"required"`
	StoreName      string             `json:"storeName" bson:"store_name" validate:"required"`
	LogoURL        string             `json:"logoUrl" bson:"logo_url"`
	LogoPosition   string             `json:"logoPosition" bson:"logo_position" validate:"omitempty,oneof=left center"`
	PrimaryColor   string             `json:"primaryColor" bson:"primary_color"`
	SecondaryColor string             `json:"secondaryColor" bson:"secondary_color"`
	Description    string             `json:"description" bson:"description"`
	Phone          string             `json:"phone" bson:"phone"`
	Email          string             `json:"email" bson:"email" validate:"omitempty,email"`
	Address        *StoreAddress      `json:"address" bson:"address"`
	SocialMedia    *SocialMedia       `json:"socialMedia" bson:"social_media"`
	BusinessHours  *BusinessHours     `json:"businessHours" bson:"business_hours"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}
