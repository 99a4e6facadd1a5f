package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateOrderStatusRequest is the admin status-change payload.
type UpdateOrderStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

// OrderController exposes order placement and back-office order management.
type OrderController struct {
	service services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// CreateOrder places a new order. Public endpoint.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := oc.service.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
}

// GetOrders lists orders with optional status filters. Admin only.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.service.ListOrders(c.Request.Context(), c.Query("status"), c.Query("paymentStatus"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

// GetOrder fetches a single order. Admin only.
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
		return
	}

	order, err := oc.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

// UpdateOrderStatus updates the order and/or payment status. Admin only.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := oc.service.UpdateOrderStatus(c.Request.Context(), id, req.OrderStatus, req.PaymentStatus)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}
