package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment methods accepted at checkout.
const (
	PaymentCashOnDelivery = "Cash on Delivery"
	PaymentBankTransfer   = "Bank Transfer"
	PaymentEasypaisa      = "Easypaisa"
	PaymentJazzCash       = "JazzCash"
)

// Payment statuses.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// Order statuses. Any status may move to any other status; the fields are
// independent enumerations, not a workflow.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCashOnDelivery, PaymentBankTransfer, PaymentEasypaisa, PaymentJazzCash:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Address struct {
	Street     string `json:"street,omitempty" bson:"street,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	Region     string `json:"region" bson:"region"`
	PostalCode string `json:"postalCode,omitempty" bson:"postal_code,omitempty"`
	Country    string `json:"country" bson:"country"`
}

// LineItem snapshots the product's name and price at order time. Product is
// only populated on reads (a join against the products collection) and is
// never persisted with the order.
type LineItem struct {
	ProductID primitive.ObjectID `json:"product" bson:"product"`
	Name      string             `json:"name" bson:"name"`
	Price     int64              `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Size      string             `json:"size,omitempty" bson:"size,omitempty"`
	Color     string             `json:"color,omitempty" bson:"color,omitempty"`
	Product   *Product           `json:"productDetail,omitempty" bson:"-"`
}

type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerName  string             `json:"customerName" bson:"customer_name"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone" bson:"phone"`
	Address       Address            `json:"address" bson:"address"`
	Items         []LineItem         `json:"items" bson:"items"`
	TotalAmount   int64              `json:"totalAmount" bson:"total_amount"`
	ShippingCost  int64              `json:"shippingCost" bson:"shipping_cost"`
	PaymentMethod string             `json:"paymentMethod" bson:"payment_method"`
	PaymentStatus string             `json:"paymentStatus" bson:"payment_status"`
	OrderStatus   string             `json:"orderStatus" bson:"order_status"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}
