package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/controllers/order"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/middleware"
)

// SetupOrderRoutes registers checkout and order history endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/order")
	{
		orders.POST("/create", orderControllers.CreateOrder(db))
		orders.GET("/orders/:user_email", middleware.RequireUser(db), orderControllers.GetUserOrders(db))
		orders.GET("/all", middleware.RequireUser(db), middleware.RequireAdmin(), orderControllers.GetAllOrders(db))
		orders.GET("/feed", orderControllers.OrderFeedHandler)
	}
}
