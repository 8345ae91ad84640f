package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/pkg/logger"
	"github.com/italoandres/eshop-backend/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadService pushes admin-submitted images to the hosting provider. Input
// is the data-URI base64 form the admin app sends; output is the public URL
// the storefront renders.
type UploadService interface {
	UploadImage(ctx context.Context, payload, folder string) (string, error)
	DeleteImage(ctx context.Context, key string) error
}

type uploadService struct {
	provider storage.StorageProvider
	logger   *logger.Logger
}

func NewUploadService(provider storage.StorageProvider, log *logger.Logger) UploadService {
	return &uploadService{
		provider: provider,
		logger:   log,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, payload, folder string) (string, error) {
	decoded, err := utils.DecodeBase64Image(payload)
	if err != nil {
		return "", err
	}

	img := utils.LimitImage(decoded.Image, utils.BannerMaxWidth, utils.BannerMaxHeight)

	var buf bytes.Buffer
	if err := utils.EncodeImage(img, decoded.Format, &buf); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	ext := "jpg"
	if decoded.Format == "png" {
		ext = "png"
	}
	key := fmt.Sprintf("%s/%s.%s", folder, primitive.NewObjectID().Hex(), ext)

	resp, err := s.provider.Upload(ctx, &storage.UploadRequest{
		Key:          key,
		Reader:       &buf,
		ContentType:  decoded.ContentType,
		Size:         int64(buf.Len()),
		ACL:          "public-read",
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"key":  resp.Key,
		"size": resp.Size,
	}).Info("Image uploaded")

	return resp.URL, nil
}

func (s *uploadService) DeleteImage(ctx context.Context, key string) error {
	return s.provider.Delete(ctx, key)
}
