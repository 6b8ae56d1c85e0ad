package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type ProductUpdateInput struct {
	ProductID     uint    `json:"product_id" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Stock         int     `json:"stock" binding:"min=0"`
	ImageURL      string  `json:"image_url"`
	SubCategoryID uint    `json:"sub_category_id" binding:"required"`
}

// canManageProduct reports whether the requester may update or delete the
// product: admins always, otherwise only the owning seller.
func canManageProduct(c *gin.Context, product models.Product) bool {
	if c.GetString("user_role") == "admin" {
		return true
	}
	userID := c.MustGet("user_id").(uint)
	return product.UserID != nil && *product.UserID == userID
}

// PUT /products/updateproduct
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("product not found"))
			} else {
				apperr.Respond(c, apperr.Unavailable("failed to fetch product"))
			}
			return
		}

		if !canManageProduct(c, product) {
			apperr.Respond(c, apperr.Forbidden("not authorized to update this product"))
			return
		}

		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", input.SubCategoryID).Error; err != nil {
			apperr.Respond(c, apperr.NotFound("subcategory not found"))
			return
		}

		updates := map[string]interface{}{
			"price":           input.Price,
			"stock":           input.Stock,
			"image_url":       input.ImageURL,
			"sub_category_id": input.SubCategoryID,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to update product"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}
