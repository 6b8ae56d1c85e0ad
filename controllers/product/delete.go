package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// DELETE /products/deleteproduct/:product_id
//
// Products referenced by order items cannot be deleted. Deleting a product
// removes it from every cart, restoring each cart quantity back to stock
// first so the stock invariant holds inside the same transaction.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("product not found"))
			} else {
				apperr.Respond(c, apperr.Unavailable("failed to fetch product"))
			}
			return
		}

		if !canManageProduct(c, product) {
			apperr.Respond(c, apperr.Forbidden("not authorized to delete this product"))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// The order-items guard runs inside the transaction so an order
			// committing concurrently cannot slip past it.
			var ordered int64
			if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", product.ID).Count(&ordered).Error; err != nil {
				return apperr.Unavailable("failed to check orders")
			}
			if ordered > 0 {
				return apperr.Validation("cannot delete product that is part of existing orders")
			}

			var reserved int64
			row := tx.Model(&models.CartEntry{}).
				Where("product_id = ?", product.ID).
				Select("COALESCE(SUM(quantity), 0)").
				Scan(&reserved)
			if row.Error != nil {
				return apperr.Unavailable("failed to delete product")
			}

			if reserved > 0 {
				err := tx.Model(&models.Product{}).
					Where("id = ?", product.ID).
					UpdateColumn("stock", gorm.Expr("stock + ?", reserved)).Error
				if err != nil {
					return apperr.Unavailable("failed to delete product")
				}
			}

			if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartEntry{}).Error; err != nil {
				return apperr.Unavailable("failed to delete product")
			}
			if err := tx.Delete(&product).Error; err != nil {
				return apperr.Unavailable("failed to delete product")
			}
			return nil
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		log.Printf("product %d deleted by user %v", product.ID, c.GetString("user_email"))
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
