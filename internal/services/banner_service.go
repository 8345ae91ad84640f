package services

import (
	"context"
	"time"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"
	"github.com/italoandres/eshop-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBannerInput struct {
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	TargetURL string     `json:"targetUrl"`
	Order     int        `json:"order"`
	Active    *bool      `json:"active"`
	StartAt   *time.Time `json:"startAt"`
	EndAt     *time.Time `json:"endAt"`
}

type UpdateBannerInput struct {
	Title     *string    `json:"title"`
	ImageURL  *string    `json:"imageUrl"`
	TargetURL *string    `json:"targetUrl"`
	Order     *int       `json:"order"`
	Active    *bool      `json:"active"`
	StartAt   *time.Time `json:"startAt"`
	EndAt     *time.Time `json:"endAt"`
}

type BannerService interface {
	// ActiveBanners returns the storefront carousel: active flag set and
	// inside the display window, ordered by display order.
	ActiveBanners(ctx context.Context, storeID string) ([]*models.Banner, error)
	AllBanners(ctx context.Context, storeID string) ([]*models.Banner, error)
	CreateBanner(ctx context.Context, storeID string, input *CreateBannerInput) (*models.Banner, error)
	UpdateBanner(ctx context.Context, storeID string, id primitive.ObjectID, input *UpdateBannerInput) (*models.Banner, error)
	DeleteBanner(ctx context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error)
}

type bannerService struct {
	repo    interfaces.BannerRepository
	uploads UploadService
	logger  *logger.Logger
	now     func() time.Time
}

func NewBannerService(repo interfaces.BannerRepository, uploads UploadService, log *logger.Logger) BannerService {
	return &bannerService{
		repo:    repo,
		uploads: uploads,
		logger:  log,
		now:     time.Now,
	}
}

func (s *bannerService) ActiveBanners(ctx context.Context, storeID string) ([]*models.Banner, error) {
	banners, err := s.repo.ListByStore(ctx, storeID, true)
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := make([]*models.Banner, 0, len(banners))
	for _, banner := range banners {
		if banner.IsActiveNow(now) {
			active = append(active, banner)
		}
	}

	return active, nil
}

func (s *bannerService) AllBanners(ctx context.Context, storeID string) ([]*models.Banner, error) {
	return s.repo.ListByStore(ctx, storeID, false)
}

func (s *bannerService) CreateBanner(ctx context.Context, storeID string, input *CreateBannerInput) (*models.Banner, error) {
	imageURL, err := s.resolveImage(ctx, input.ImageURL)
	if err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	banner := &models.Banner{
		StoreID:   storeID,
		Title:     input.Title,
		ImageURL:  imageURL,
		TargetURL: input.TargetURL,
		Order:     input.Order,
		Active:    active,
		StartAt:   input.StartAt,
		EndAt:     input.EndAt,
	}

	if errs := validators.ValidateStruct(banner); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, err
	}

	s.logger.WithStoreID(storeID).WithField("banner_id", banner.ID.Hex()).Info("Banner created")

	return banner, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, storeID string, id primitive.ObjectID, input *UpdateBannerInput) (*models.Banner, error) {
	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.ImageURL != nil {
		imageURL, err := s.resolveImage(ctx, *input.ImageURL)
		if err != nil {
			return nil, err
		}
		updates["image_url"] = imageURL
	}
	if input.TargetURL != nil {
		updates["target_url"] = *input.TargetURL
	}
	if input.Order != nil {
		updates["order"] = *input.Order
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if input.StartAt != nil {
		updates["start_at"] = input.StartAt
	}
	if input.EndAt != nil {
		updates["end_at"] = input.EndAt
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, storeID, id, updates); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, storeID, id)
}

func (s *bannerService) DeleteBanner(ctx context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error) {
	banner, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	s.logger.WithStoreID(storeID).WithField("banner_id", id.Hex()).Info("Banner deleted")

	return banner, nil
}

// resolveImage uploads base64 payloads to the image host; plain URLs pass
// through untouched.
func (s *bannerService) resolveImage(ctx context.Context, imageURL string) (string, error) {
	if !utils.IsBase64Image(imageURL) {
		return imageURL, nil
	}
	return s.uploads.UploadImage(ctx, imageURL, "banners")
}
