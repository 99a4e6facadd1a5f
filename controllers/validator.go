package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mirkashi/Grazieoutfits/services"
)

// MaxProductImages caps uploads per product create/update.
const MaxProductImages = 5

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// CreateProductForm is the multipart form for creating a product. Sizes and
// colors arrive as JSON string arrays.
type CreateProductForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	Price       int64  `form:"price" validate:"required,gt=0"`
	Stock       int    `form:"stock" validate:"gte=0"`
	Sizes       string `form:"sizes"`
	Colors      string `form:"colors"`
	Category    string `form:"category" validate:"required"`
	Featured    bool   `form:"featured"`
	Rating      int    `form:"rating" validate:"omitempty,gte=1,lte=5"`
}

// RequestValidator handles multipart and query input validation.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ParseCreateProductRequest validates and parses a product creation form.
func (rv *RequestValidator) ParseCreateProductRequest(c *gin.Context) (services.ProductCreateRequest, []*multipart.FileHeader, error) {
	var form CreateProductForm
	if err := c.ShouldBind(&form); err != nil {
		return services.ProductCreateRequest{}, nil, fmt.Errorf("invalid form data: %w", err)
	}
	if err := rv.validate.Struct(&form); err != nil {
		return services.ProductCreateRequest{}, nil, fmt.Errorf("validation failed: %w", err)
	}

	sizes, err := parseStringArray(form.Sizes)
	if err != nil {
		return services.ProductCreateRequest{}, nil, errors.New("invalid sizes format, must be a JSON string array")
	}
	colors, err := parseStringArray(form.Colors)
	if err != nil {
		return services.ProductCreateRequest{}, nil, errors.New("invalid colors format, must be a JSON string array")
	}

	images, err := rv.ParseImages(c)
	if err != nil {
		return services.ProductCreateRequest{}, nil, err
	}

	req := services.ProductCreateRequest{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Stock:       form.Stock,
		Sizes:       sizes,
		Colors:      colors,
		Category:    form.Category,
		Featured:    form.Featured,
		Rating:      form.Rating,
	}
	return req, images, nil
}

// ParseUpdateProductRequest builds a partial update from the supplied form
// fields only.
func (rv *RequestValidator) ParseUpdateProductRequest(c *gin.Context) (services.ProductUpdateRequest, []*multipart.FileHeader, error) {
	var req services.ProductUpdateRequest

	if v, ok := c.GetPostForm("name"); ok {
		req.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		req.Description = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil || price <= 0 {
			return services.ProductUpdateRequest{}, nil, errors.New("invalid price value")
		}
		req.Price = &price
	}
	if v, ok := c.GetPostForm("stock"); ok {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return services.ProductUpdateRequest{}, nil, errors.New("invalid stock value")
		}
		req.Stock = &stock
	}
	if v, ok := c.GetPostForm("sizes"); ok {
		sizes, err := parseStringArray(v)
		if err != nil {
			return services.ProductUpdateRequest{}, nil, errors.New("invalid sizes format, must be a JSON string array")
		}
		if sizes == nil {
			sizes = []string{}
		}
		req.Sizes = sizes
	}
	if v, ok := c.GetPostForm("colors"); ok {
		colors, err := parseStringArray(v)
		if err != nil {
			return services.ProductUpdateRequest{}, nil, errors.New("invalid colors format, must be a JSON string array")
		}
		if colors == nil {
			colors = []string{}
		}
		req.Colors = colors
	}
	if v, ok := c.GetPostForm("category"); ok {
		req.Category = &v
	}
	if v, ok := c.GetPostForm("featured"); ok {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return services.ProductUpdateRequest{}, nil, errors.New("invalid boolean value for 'featured'")
		}
		req.Featured = &featured
	}
	if v, ok := c.GetPostForm("rating"); ok {
		rating, err := strconv.Atoi(v)
		if err != nil || rating < 1 || rating > 5 {
			return services.ProductUpdateRequest{}, nil, errors.New("rating must be between 1 and 5")
		}
		req.Rating = &rating
	}

	images, err := rv.ParseImages(c)
	if err != nil {
		return services.ProductUpdateRequest{}, nil, err
	}

	return req, images, nil
}

// ParseImages extracts the uploaded image files, enforcing the count limit
// and allowed content types. A request without files is fine.
func (rv *RequestValidator) ParseImages(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	images := form.File["images"]
	if len(images) > MaxProductImages {
		return nil, fmt.Errorf("too many images, at most %d allowed", MaxProductImages)
	}
	for _, img := range images {
		if !isValidImageType(img) {
			return nil, fmt.Errorf("invalid image type for file %s. Allowed: jpeg, jpg, png, webp, gif", img.Filename)
		}
	}
	return images, nil
}

// ParseFeatured parses the optional featured query flag.
func (rv *RequestValidator) ParseFeatured(c *gin.Context) (*bool, error) {
	featuredStr := strings.TrimSpace(c.Query("featured"))
	if featuredStr == "" {
		return nil, nil
	}
	featured, err := strconv.ParseBool(featuredStr)
	if err != nil {
		return nil, errors.New("invalid boolean value for 'featured'")
	}
	return &featured, nil
}

func isValidImageType(file *multipart.FileHeader) bool {
	if allowedImageTypes[file.Header.Get("Content-Type")] {
		return true
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return true
	}
	return false
}

func parseStringArray(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}
