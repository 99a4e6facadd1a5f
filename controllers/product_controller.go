package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductController exposes the product catalog over HTTP.
type ProductController struct {
	service   services.ProductService
	cache     *CacheManager
	validator *RequestValidator
}

// NewProductController creates a new ProductController.
func NewProductController(service services.ProductService, redisClient *redis.Client) *ProductController {
	return &ProductController{
		service:   service,
		cache:     NewCacheManager(redisClient),
		validator: NewRequestValidator(),
	}
}

// GetProducts lists products with optional category/featured filters.
func (pc *ProductController) GetProducts(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	featured, err := pc.validator.ParseFeatured(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if products, ok := pc.cache.GetProductList(c.Request.Context(), category, featured); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
		return
	}

	products, err := pc.service.ListProducts(c.Request.Context(), category, featured)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.SetProductListAsync(category, featured, products)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// GetProduct fetches a single product by id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	product, err := pc.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// CreateProduct creates a product from a multipart form with up to five
// images.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	req, images, err := pc.validator.ParseCreateProductRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, err := pc.service.CreateProduct(c.Request.Context(), req, images)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

// UpdateProduct applies a partial update; newly uploaded images replace the
// existing sequence wholesale.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	req, images, err := pc.validator.ParseUpdateProductRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, err := pc.service.UpdateProduct(c.Request.Context(), id, req, images)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// DeleteProduct removes a product.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	if err := pc.service.DeleteProduct(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
