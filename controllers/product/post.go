package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type ProductInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Stock         int     `json:"stock" binding:"min=0"`
	ImageURL      string  `json:"image_url"`
	SubCategoryID uint    `json:"sub_category_id" binding:"required"`
}

// POST /products/enterproduct
//
// Any authenticated user can list a product ("sell with us"); the creator
// becomes its owner.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", input.SubCategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("subcategory not found"))
			} else {
				apperr.Respond(c, apperr.Unavailable("failed to fetch subcategory"))
			}
			return
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			Stock:         input.Stock,
			ImageURL:      input.ImageURL,
			SubCategoryID: sub.ID,
			UserID:        &userID,
		}
		if err := db.Create(&product).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to create product"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Product created successfully",
			"product_id": product.ID,
		})
	}
}
