package services

import (
	"context"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/pkg/logger"
)

// StoreSettingsService manages the per-store white-label configuration.
type StoreSettingsService interface {
	// GetSettings returns the store configuration, creating a default
	// document on first read.
	GetSettings(ctx context.Context, storeID string) (*models.StoreSettings, error)
	UpdateSettings(ctx context.Context, storeID string, updates map[string]interface{}) (*models.StoreSettings, error)
	UploadLogo(ctx context.Context, storeID, logoPayload string) (*models.StoreSettings, error)
}

type storeSettingsService struct {
	repo    interfaces.StoreSettingsRepository
	uploads UploadService
	logger  *logger.Logger
}

func NewStoreSettingsService(repo interfaces.StoreSettingsRepository, uploads UploadService, log *logger.Logger) StoreSettingsService {
	return &storeSettingsService{
		repo:    repo,
		uploads: uploads,
		logger:  log,
	}
}

func (s *storeSettingsService) GetSettings(ctx context.Context, storeID string) (*models.StoreSettings, error) {
	settings, err := s.repo.GetByStoreID(ctx, storeID)
	if err == nil {
		return settings, nil
	}
	if !utils.IsNotFound(err) {
		return nil, err
	}

	settings = defaultSettings(storeID)
	if err := s.repo.Create(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.WithStoreID(storeID).Info("Store settings created with defaults")

	return settings, nil
}

func (s *storeSettingsService) UpdateSettings(ctx context.Context, storeID string, updates map[string]interface{}) (*models.StoreSettings, error) {
	settings, err := s.repo.Update(ctx, storeID, updates)
	if err == nil {
		return settings, nil
	}
	if !utils.IsNotFound(err) {
		return nil, err
	}

	// First write for this store: create defaults, then apply the update.
	if _, err := s.GetSettings(ctx, storeID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, storeID, updates)
}

func (s *storeSettingsService) UploadLogo(ctx context.Context, storeID, logoPayload string) (*models.StoreSettings, error) {
	logoURL := logoPayload
	if utils.IsBase64Image(logoPayload) {
		uploaded, err := s.uploads.UploadImage(ctx, logoPayload, "logos")
		if err != nil {
			return nil, err
		}
		logoURL = uploaded
	}

	return s.UpdateSettings(ctx, storeID, map[string]interface{}{"logo_url": logoURL})
}

func defaultSettings(storeID string) *models.StoreSettings {
	return &models.StoreSettings{
		StoreID:        storeID,
		StoreName:      utils.DefaultStoreName,
		LogoPosition:   utils.DefaultLogoPosition,
		PrimaryColor:   utils.DefaultPrimaryColor,
		SecondaryColor: utils.DefaultSecondaryColor,
	}
}
