package categoryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BannerURL   string `json:"banner_url"`
}

// POST /categories/create
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		var existing models.Category
		if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			apperr.Respond(c, apperr.Validation("category already exists"))
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.Unavailable("failed to check existing categories"))
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			BannerURL:   input.BannerURL,
		}
		if err := db.Create(&category).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to create category"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":     "Category created successfully",
			"category_id": category.ID,
		})
	}
}

// DELETE /categories/delete/:category_id
//
// A category with live subcategories cannot be deleted.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("category_id")

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("category not found"))
			} else {
				apperr.Respond(c, apperr.Unavailable("failed to fetch category"))
			}
			return
		}

		var children int64
		if err := db.Model(&models.SubCategory{}).Where("category_id = ?", category.ID).Count(&children).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to check subcategories"))
			return
		}
		if children > 0 {
			apperr.Respond(c, apperr.Validation("cannot delete category with existing subcategories"))
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to delete category"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

// GET /categories/all
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("SubCategories").Order("id ASC").Find(&categories).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch categories"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
	}
}
