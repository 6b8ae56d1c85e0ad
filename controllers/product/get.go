package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// GET /products/getproductbyid/:product_id
//
// Returns the product with its taxonomy context plus related products from
// the same subcategory.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		limitRelated := 4
		if raw := c.Query("limit_related"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				limitRelated = v
			}
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("product not found"))
			} else {
				apperr.Respond(c, apperr.Unavailable("failed to fetch product"))
			}
			return
		}

		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", product.SubCategoryID).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch subcategory"))
			return
		}
		var category models.Category
		if err := db.First(&category, "id = ?", sub.CategoryID).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch category"))
			return
		}

		var related []models.Product
		err := db.Where("sub_category_id = ? AND id != ?", product.SubCategoryID, product.ID).
			Limit(limitRelated).
			Find(&related).Error
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch related products"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":           product,
			"sub_category_name": sub.Name,
			"category_name":     category.Name,
			"related_products":  related,
		})
	}
}
