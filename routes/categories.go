package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/controllers/category"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/middleware"
)

// SetupCategoryRoutes registers taxonomy endpoints. Mutations are admin only.
func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/categories")
	{
		categories.GET("/all", categoryControllers.GetAllCategories(db))
		categories.GET("/carousel", categoryControllers.GetCarouselSlides(db))
		categories.GET("/home-sections", categoryControllers.GetHomeSections(db))
		categories.GET("/subcategories/:category_id", categoryControllers.GetSubCategoriesByCategory(db))

		admin := categories.Group("")
		admin.Use(middleware.RequireUser(db), middleware.RequireAdmin())
		{
			admin.POST("/create", categoryControllers.CreateCategory(db))
			admin.POST("/sub/create", categoryControllers.CreateSubCategory(db))
			admin.DELETE("/delete/:category_id", categoryControllers.DeleteCategory(db))
			admin.DELETE("/sub/delete/:sub_category_id", categoryControllers.DeleteSubCategory(db))
		}
	}
}
