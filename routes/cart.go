package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/controllers/cart"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/middleware"
)

// SetupCartRoutes registers cart endpoints. Every cart request resolves its
// identity (user email or guest session) up front.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ResolveIdentity(db))
	{
		cart.POST("/addcart", cartControllers.AddToCart(db))
		cart.GET("/getcart", cartControllers.GetCart(db))
		cart.PUT("/updatecart/:product_id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/removecart/:product_id", cartControllers.RemoveFromCart(db))
		cart.DELETE("/clearcart", cartControllers.ClearCart(db))
	}
}
