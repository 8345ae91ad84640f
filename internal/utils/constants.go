package utils

import "time"

// Application Constants
const (
	AppName    = "EshopBackend"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 50
	MaxPageSize     = 100
	MinPageSize     = 1

	// Discount rules
	MinTiersPerRule = 2
	MaxTiersPerRule = 10
	RuleCacheTTL    = 5 * time.Minute

	// Store defaults for first-read settings creation
	DefaultStoreName      = "Minha Loja"
	DefaultPrimaryColor   = "#FF6B6B"
	DefaultSecondaryColor = "#4ECDC4"
	DefaultLogoPosition   = "center"

	// Image upload
	MaxImageSize    = 50 * 1024 * 1024 // base64 payloads from the admin app
	BannerMaxWidth  = 1200
	BannerMaxHeight = 600

	// Collections
	CollectionDiscountRules = "discount_rules"
	CollectionProducts      = "products"
	CollectionBanners       = "banners"
	CollectionStoreSettings = "store_settings"
)

// Status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
