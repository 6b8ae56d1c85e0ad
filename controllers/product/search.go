package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/search"
)

// GET /products/search?keyword=
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := strings.TrimSpace(c.Query("keyword"))
		if keyword == "" {
			apperr.Respond(c, apperr.Validation("keyword is required"))
			return
		}

		results, searchType, err := search.Run(db, keyword)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		if len(results) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"message":     "No products found for the given keyword.",
				"search_type": searchType,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count":       len(results),
			"products":    results,
			"search_type": searchType,
		})
	}
}
