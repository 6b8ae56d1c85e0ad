package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/auth"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// bearerEmail extracts and validates the bearer token, returning the email it
// was issued for. Empty string when no usable token is present.
func bearerEmail(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" {
		return ""
	}
	email, _, err := auth.ParseToken(tokenString)
	if err != nil {
		return ""
	}
	return email
}

// RequireUser validates the bearer token, loads the user and stores
// user_email, user_role and user_id in the request context.
func RequireUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := bearerEmail(c)
		if email == "" {
			apperr.Respond(c, apperr.Unauthorized("invalid or missing token"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			apperr.Respond(c, apperr.Unauthorized("invalid or missing token"))
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_role", user.Role)
		c.Next()
	}
}

// RequireAdmin runs after RequireUser and rejects non-admin users.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != "admin" {
			apperr.Respond(c, apperr.Forbidden("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
