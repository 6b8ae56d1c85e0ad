package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
)

// GET /products/trending
//
// Popularity is how often a product currently appears across carts.
func GetTrendingProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 6
		if raw := c.Query("limit"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				limit = v
			}
		}

		type trendingProduct struct {
			ID         uint    `json:"id"`
			Name       string  `json:"name"`
			Price      float64 `json:"price"`
			ImageURL   string  `json:"image_url"`
			Popularity int     `json:"popularity"`
		}

		var products []trendingProduct
		err := db.Raw(`
			SELECT p.id, p.name, p.price, p.image_url, COUNT(ce.product_id) AS popularity
			FROM cart_entries ce
			JOIN products p ON ce.product_id = p.id
			GROUP BY p.id, p.name, p.price, p.image_url
			ORDER BY popularity DESC
			LIMIT ?`, limit,
		).Scan(&products).Error
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch trending products"))
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
