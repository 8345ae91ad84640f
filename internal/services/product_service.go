package services

import (
	"context"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/internal/validators"
	"github.com/italoandres/eshop-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService covers the catalog read path the storefront uses and the
// admin CRUD around it. Pricing never goes through here: originalPrice on a
// calculate request is caller-supplied.
type ProductService interface {
	ListProducts(ctx context.Context, filter *interfaces.ProductListFilter, params *utils.PaginationParams) ([]*models.Product, int64, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type productService struct {
	repo   interfaces.ProductRepository
	logger *logger.Logger
}

func NewProductService(repo interfaces.ProductRepository, log *logger.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: log,
	}
}

func (s *productService) ListProducts(ctx context.Context, filter *interfaces.ProductListFilter, params *utils.PaginationParams) ([]*models.Product, int64, error) {
	return s.repo.List(ctx, filter, params)
}

func (s *productService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if errs := validators.ValidateStruct(product); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.WithProductID(product.ID.Hex()).WithField("name", product.Name).Info("Product created")

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error) {
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *productService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithProductID(id.Hex()).Info("Product deleted")

	return nil
}
