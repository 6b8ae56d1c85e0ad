package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// POST /auth/session
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.GuestSession{
			Token:     uuid.NewString(),
			ExpiresAt: time.Now().Add(tokenTTL),
		}

		if err := db.Create(&session).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to create session"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": session.Token,
			"expires_at": session.ExpiresAt,
		})
	}
}
