package categoryControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type SubCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// POST /categories/sub/create
//
// The parent category must exist, and the name must be unique within it.
func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		var parent models.Category
		if err := db.First(&parent, "id = ?", input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("parent category not found"))
			} else {
				apperr.Respond(c, apperr.Unavailable("failed to fetch parent category"))
			}
			return
		}

		var existing models.SubCategory
		err := db.Where("name = ? AND category_id = ?", input.Name, input.CategoryID).First(&existing).Error
		if err == nil {
			apperr.Respond(c, apperr.Validation("subcategory already exists in this category"))
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.Unavailable("failed to check existing subcategories"))
			return
		}

		sub := models.SubCategory{
			Name:        input.Name,
			CategoryID:  input.CategoryID,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}
		if err := db.Create(&sub).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to create subcategory"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":         "Subcategory created successfully",
			"sub_category_id": sub.ID,
		})
	}
}

// DELETE /categories/sub/delete/:sub_category_id
//
// A subcategory with live products cannot be deleted.
func DeleteSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		subID := c.Param("sub_category_id")

		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", subID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("subcategory not found"))
			} else {
				apperr.Respond(c, apperr.Unavailable("failed to fetch subcategory"))
			}
			return
		}

		var children int64
		if err := db.Model(&models.Product{}).Where("sub_category_id = ?", sub.ID).Count(&children).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to check products"))
			return
		}
		if children > 0 {
			apperr.Respond(c, apperr.Validation("cannot delete subcategory with existing products"))
			return
		}

		if err := db.Delete(&sub).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to delete subcategory"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
	}
}

// GET /categories/subcategories/:category_id
func GetSubCategoriesByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("category_id")

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			apperr.Respond(c, apperr.NotFound("category not found"))
			return
		}

		var subcategories []models.SubCategory
		if err := db.Where("category_id = ?", category.ID).Order("id ASC").Find(&subcategories).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch subcategories"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"subcategories": subcategories, "count": len(subcategories)})
	}
}

// GET /categories/carousel
func GetCarouselSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		type slide struct {
			ID              uint   `json:"id"`
			ImageURL        string `json:"image_url"`
			SubCategoryName string `json:"sub_category_name"`
		}

		var slides []slide
		err := db.Model(&models.SubCategory{}).
			Select("id", "image_url", "name AS sub_category_name").
			Scan(&slides).Error
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch carousel slides"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"slides": slides, "count": len(slides)})
	}
}

// GET /categories/home-sections
//
// Picks random subcategories and attaches a handful of random products to
// each, for the storefront landing page.
func GetHomeSections(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limitSubcats := queryInt(c, "limit_subcats", 15)
		productsPerSubcat := queryInt(c, "products_per_subcat", 10)

		type section struct {
			models.SubCategory
			CategoryName string           `json:"category_name"`
			BannerURL    string           `json:"banner_url"`
			Items        []models.Product `json:"products" gorm:"-"`
		}

		var sections []section
		err := db.Model(&models.SubCategory{}).
			Select("sub_categories.*, categories.name AS category_name, categories.banner_url").
			Joins("JOIN categories ON sub_categories.category_id = categories.id").
			Order("RANDOM()").
			Limit(limitSubcats).
			Scan(&sections).Error
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to generate home sections"))
			return
		}

		for i := range sections {
			var products []models.Product
			err := db.Where("sub_category_id = ?", sections[i].ID).
				Order("RANDOM()").
				Limit(productsPerSubcat).
				Find(&products).Error
			if err != nil {
				apperr.Respond(c, apperr.Unavailable("failed to generate home sections"))
				return
			}
			sections[i].Items = products
		}

		c.JSON(http.StatusOK, gin.H{"sections": sections})
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
