package services

import (
	"context"
	"mime/multipart"

	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/mirkashi/Grazieoutfits/repository"
	"github.com/mirkashi/Grazieoutfits/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductCreateRequest carries the fields for a new product.
type ProductCreateRequest struct {
	Name        string
	Description string
	Price       int64
	Stock       int
	Sizes       []string
	Colors      []string
	Category    string
	Featured    bool
	Rating      int
}

// ProductUpdateRequest carries a partial product update; nil fields are left
// untouched.
type ProductUpdateRequest struct {
	Name        *string
	Description *string
	Price       *int64
	Stock       *int
	Sizes       []string
	Colors      []string
	Category    *string
	Featured    *bool
	Rating      *int
}

// ProductService is the catalog's business logic interface.
type ProductService interface {
	ListProducts(ctx context.Context, category string, featured *bool) ([]models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, req ProductCreateRequest, images []*multipart.FileHeader) (*models.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, req ProductUpdateRequest, images []*multipart.FileHeader) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type productService struct {
	repo   repository.ProductRepository
	images storage.ImageStore
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, images storage.ImageStore) ProductService {
	return &productService{repo: repo, images: images}
}

func (s *productService) ListProducts(ctx context.Context, category string, featured *bool) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if featured != nil {
		filter["featured"] = *featured
	}

	products, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req ProductCreateRequest, images []*multipart.FileHeader) (*models.Product, error) {
	urls := []string{}
	if len(images) > 0 {
		uploaded, err := s.images.UploadImages(ctx, images)
		if err != nil {
			return nil, apperrors.Validation(err.Error())
		}
		urls = uploaded
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      urls,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		Category:    req.Category,
		Featured:    req.Featured,
		Rating:      rating,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req ProductUpdateRequest, images []*multipart.FileHeader) (*models.Product, error) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Sizes != nil {
		updates["sizes"] = req.Sizes
	}
	if req.Colors != nil {
		updates["colors"] = req.Colors
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	// New uploads replace the image sequence wholesale; without them the
	// existing sequence stays as-is.
	if len(images) > 0 {
		urls, err := s.images.UploadImages(ctx, images)
		if err != nil {
			return nil, apperrors.Validation(err.Error())
		}
		updates["images"] = urls
	}

	product, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Validation(err.Error())
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Internal(err)
	}
	if deleted == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}
