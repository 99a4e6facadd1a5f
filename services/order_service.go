package services

import (
	"context"
	"time"

	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/mirkashi/Grazieoutfits/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// notifyTimeout bounds the confirmation-mail attempt so a dead SMTP server
// cannot hold resources past the request.
const notifyTimeout = 15 * time.Second

// OrderItemInput is one submitted cart line.
type OrderItemInput struct {
	ProductID string `json:"product" binding:"required"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// AddressInput is the submitted shipping address. Region drives the shipping
// rate lookup.
type AddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region" binding:"required"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PlaceOrderRequest is the checkout submission. TotalAmount is the
// client-computed item subtotal; the service adds the shipping cost on top of
// it but does not recompute the subtotal from catalog prices.
type PlaceOrderRequest struct {
	CustomerName  string           `json:"customerName" binding:"required"`
	Email         string           `json:"email" binding:"required,email"`
	Phone         string           `json:"phone" binding:"required"`
	Address       AddressInput     `json:"address" binding:"required"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"`
	TotalAmount   int64            `json:"totalAmount" binding:"required"`
	Notes         string           `json:"notes"`
}

// OrderService turns submitted carts into durable priced orders and manages
// their status lifecycle.
type OrderService interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context, orderStatus, paymentStatus string) ([]models.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, orderStatus, paymentStatus string) (*models.Order, error)
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	settings repository.SettingsRepository
	mailer   Mailer
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	settings repository.SettingsRepository,
	mailer Mailer,
) OrderService {
	return &orderService{orders: orders, products: products, settings: settings, mailer: mailer}
}

// PlaceOrder resolves the shipping cost for the destination region, persists
// the order with the shipping-inclusive total, and dispatches a best-effort
// confirmation email. The email can never fail the placement.
func (s *orderService) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*models.Order, error) {
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperrors.Validation("Invalid payment method: " + req.PaymentMethod)
	}

	items := make([]models.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, apperrors.Validation("Invalid product id: " + item.ProductID)
		}
		items = append(items, models.LineItem{
			ProductID: productID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	settings, err := s.settings.Get(ctx)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, apperrors.Validation(err.Error())
	}

	shippingCost := ResolveShippingRate(req.Address.Region, settings)

	country := req.Address.Country
	if country == "" {
		country = "Pakistan"
	}

	order := &models.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address: models.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			Region:     req.Address.Region,
			PostalCode: req.Address.PostalCode,
			Country:    country,
		},
		Items:         items,
		TotalAmount:   req.TotalAmount + shippingCost,
		ShippingCost:  shippingCost,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		OrderStatus:   models.OrderStatusPending,
		Notes:         req.Notes,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	s.expandItems(ctx, order)
	s.dispatchConfirmation(order, settings)

	return order, nil
}

// ListOrders returns orders matching the optional status filters, newest
// first, with product detail attached.
func (s *orderService) ListOrders(ctx context.Context, orderStatus, paymentStatus string) ([]models.Order, error) {
	filter := bson.M{}
	if orderStatus != "" {
		filter["order_status"] = orderStatus
	}
	if paymentStatus != "" {
		filter["payment_status"] = paymentStatus
	}

	orders, err := s.orders.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	for i := range orders {
		s.expandItems(ctx, &orders[i])
	}
	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal(err)
	}

	s.expandItems(ctx, order)
	return order, nil
}

// UpdateOrderStatus applies a partial update restricted to the two status
// fields. Any valid value may replace any other; there is no transition graph.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, orderStatus, paymentStatus string) (*models.Order, error) {
	updates := bson.M{}
	if orderStatus != "" {
		if !models.ValidOrderStatus(orderStatus) {
			return nil, apperrors.Validation("Invalid order status: " + orderStatus)
		}
		updates["order_status"] = orderStatus
	}
	if paymentStatus != "" {
		if !models.ValidPaymentStatus(paymentStatus) {
			return nil, apperrors.Validation("Invalid payment status: " + paymentStatus)
		}
		updates["payment_status"] = paymentStatus
	}
	// Neither field supplied: nothing to change, return the order as-is.
	if len(updates) == 0 {
		return s.GetOrder(ctx, id)
	}

	order, err := s.orders.UpdateStatus(ctx, id, updates)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal(err)
	}

	s.expandItems(ctx, order)
	return order, nil
}

// expandItems attaches full product documents to the order's line items for
// the response. Read-only; a failed lookup just leaves the snapshot fields.
func (s *orderService) expandItems(ctx context.Context, order *models.Order) {
	ids := make([]primitive.ObjectID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		zap.L().Warn("Failed to expand order items",
			zap.String("order_id", order.ID.Hex()), zap.Error(err))
		return
	}

	byID := make(map[primitive.ObjectID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for i := range order.Items {
		order.Items[i].Product = byID[order.Items[i].ProductID]
	}
}

// dispatchConfirmation sends the confirmation email off the request path.
// Misconfigured or unreachable mail transport is logged and swallowed.
func (s *orderService) dispatchConfirmation(order *models.Order, settings *models.Settings) {
	if settings == nil || settings.EmailConfig.SMTPHost == "" {
		return
	}
	cfg := settings.EmailConfig

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.mailer.SendOrderConfirmation(ctx, order, cfg); err != nil {
			zap.L().Error("Order confirmation email failed",
				zap.String("order_id", order.ID.Hex()),
				zap.String("email", order.Email),
				zap.Error(err))
		}
	}()
}
