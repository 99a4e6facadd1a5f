package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mirkashi/Grazieoutfits/controllers"
)

// RegisterRoutes wires the REST surface. requireAdmin gates every mutation
// and back-office endpoint; optionalAdmin feeds the bootstrap rule on admin
// creation.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	orders *controllers.OrderController,
	admins *controllers.AdminController,
	settings *controllers.SettingsController,
	requireAdmin gin.HandlerFunc,
	optionalAdmin gin.HandlerFunc,
) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", products.GetProducts)
		productRoutes.GET("/:id", products.GetProduct)
		productRoutes.POST("", requireAdmin, products.CreateProduct)
		productRoutes.PUT("/:id", requireAdmin, products.UpdateProduct)
		productRoutes.DELETE("/:id", requireAdmin, products.DeleteProduct)
	}

	orderRoutes := r.Group("/orders")
	{
		orderRoutes.POST("", orders.CreateOrder)
		orderRoutes.GET("", requireAdmin, orders.GetOrders)
		orderRoutes.GET("/:id", requireAdmin, orders.GetOrder)
		orderRoutes.PUT("/:id/status", requireAdmin, orders.UpdateOrderStatus)
	}

	adminRoutes := r.Group("/admin")
	{
		adminRoutes.POST("/login", admins.Login)
		adminRoutes.POST("/create", optionalAdmin, admins.CreateAdmin)
		adminRoutes.GET("/profile", requireAdmin, admins.GetProfile)
		adminRoutes.PUT("/change-password", requireAdmin, admins.ChangePassword)
	}

	settingsRoutes := r.Group("/settings")
	{
		settingsRoutes.GET("/shipping-rate", settings.GetShippingRate)
		settingsRoutes.GET("", requireAdmin, settings.GetSettings)
		settingsRoutes.PUT("", requireAdmin, settings.UpdateSettings)
	}
}
