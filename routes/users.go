package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/auth"
	userControllers "github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/controllers/user"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/middleware"
)

// SetupUserRoutes registers account and session endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("/register", userControllers.Register(db))
		users.POST("/login", userControllers.Login(db))
		users.PUT("/update", middleware.RequireUser(db), userControllers.UpdateUser(db))
		users.DELETE("/delete/:user_id", middleware.RequireUser(db), middleware.RequireAdmin(), userControllers.DeleteUser(db))
	}

	// Anonymous session tokens for guest carts
	r.POST("/auth/session", auth.CreateGuestSession(db))
}
