package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// GET /products/allproducts
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch products"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /products/getproductsbyid/:sub_category_id
func GetProductsBySubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("sub_category_id = ?", c.Param("sub_category_id")).Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch products"))
			return
		}
		if len(products) == 0 {
			apperr.Respond(c, apperr.NotFound("products not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /products/allproducts/:user_id
func GetProductsByUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("user_id = ?", c.Param("user_id")).Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch products"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
