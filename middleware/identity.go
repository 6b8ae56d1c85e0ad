package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/auth"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// ResolveIdentity determines the cart owner for the request: a valid bearer
// token wins, otherwise a live guest session token (X-Session-ID header or
// session_id query parameter). Requests with neither are rejected before any
// cart operation runs.
func ResolveIdentity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email := bearerEmail(c); email != "" {
			c.Set("identity", auth.UserIdentity(email))
			c.Next()
			return
		}

		token := c.GetHeader("X-Session-ID")
		if token == "" {
			token = c.Query("session_id")
		}
		if token == "" {
			apperr.Respond(c, apperr.Validation("login or session_id required for cart"))
			c.Abort()
			return
		}

		var session models.GuestSession
		if err := db.First(&session, "token = ?", token).Error; err != nil || session.ExpiresAt.Before(time.Now()) {
			apperr.Respond(c, apperr.Unauthorized("unknown or expired session"))
			c.Abort()
			return
		}

		c.Set("identity", auth.SessionIdentity(token))
		c.Next()
	}
}

// RequestIdentity returns the identity stored by ResolveIdentity.
func RequestIdentity(c *gin.Context) auth.Identity {
	return c.MustGet("identity").(auth.Identity)
}
