package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/mirkashi/Grazieoutfits/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newTestRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: "localhost:0",
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return nil, errors.New("redis disabled in tests")
		},
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
	return env
}

// ---- fake order service ----

type fakeOrderService struct {
	placeOrderCalled int
	lastPlaceReq     *services.PlaceOrderRequest
	placeOrderFn     func(ctx context.Context, req *services.PlaceOrderRequest) (*models.Order, error)

	lastOrderStatus   string
	lastPaymentStatus string
	listOrdersFn      func(ctx context.Context) ([]models.Order, error)

	getOrderFn     func(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	updateStatusFn func(ctx context.Context, id primitive.ObjectID, orderStatus, paymentStatus string) (*models.Order, error)
}

func (f *fakeOrderService) PlaceOrder(ctx context.Context, req *services.PlaceOrderRequest) (*models.Order, error) {
	f.placeOrderCalled++
	f.lastPlaceReq = req
	if f.placeOrderFn != nil {
		return f.placeOrderFn(ctx, req)
	}
	return &models.Order{ID: primitive.NewObjectID()}, nil
}

func (f *fakeOrderService) ListOrders(ctx context.Context, orderStatus, paymentStatus string) ([]models.Order, error) {
	f.lastOrderStatus = orderStatus
	f.lastPaymentStatus = paymentStatus
	if f.listOrdersFn != nil {
		return f.listOrdersFn(ctx)
	}
	return []models.Order{}, nil
}

func (f *fakeOrderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	if f.getOrderFn != nil {
		return f.getOrderFn(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeOrderService) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, orderStatus, paymentStatus string) (*models.Order, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, orderStatus, paymentStatus)
	}
	return &models.Order{ID: id}, nil
}

// ---- fake product service ----

type fakeProductService struct {
	listCalled   int
	lastCategory string
	lastFeatured *bool
	listFn       func(ctx context.Context) ([]models.Product, error)

	createCalled int
	lastCreate   services.ProductCreateRequest
	lastImages   []*multipart.FileHeader
	createFn     func(ctx context.Context) (*models.Product, error)

	getFn    func(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	updateFn func(ctx context.Context, id primitive.ObjectID, req services.ProductUpdateRequest) (*models.Product, error)
	deleteFn func(ctx context.Context, id primitive.ObjectID) error
}

func (f *fakeProductService) ListProducts(ctx context.Context, category string, featured *bool) ([]models.Product, error) {
	f.listCalled++
	f.lastCategory = category
	f.lastFeatured = featured
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []models.Product{}, nil
}

func (f *fakeProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &models.Product{ID: id}, nil
}

func (f *fakeProductService) CreateProduct(ctx context.Context, req services.ProductCreateRequest, images []*multipart.FileHeader) (*models.Product, error) {
	f.createCalled++
	f.lastCreate = req
	f.lastImages = images
	if f.createFn != nil {
		return f.createFn(ctx)
	}
	return &models.Product{ID: primitive.NewObjectID(), Name: req.Name, Price: req.Price}, nil
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req services.ProductUpdateRequest, images []*multipart.FileHeader) (*models.Product, error) {
	f.lastImages = images
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return &models.Product{ID: id}, nil
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func performJSON(t *testing.T, router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}
