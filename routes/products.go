package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/controllers/product"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/middleware"
)

// SetupProductRoutes registers catalog endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("/allproducts", productcontroller.GetAllProducts(db))
		products.GET("/allproducts/:user_id", productcontroller.GetProductsByUser(db))
		products.GET("/getproductsbyid/:sub_category_id", productcontroller.GetProductsBySubCategory(db))
		products.GET("/getproductbyid/:product_id", productcontroller.GetProductByID(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/trending", productcontroller.GetTrendingProducts(db))

		authed := products.Group("")
		authed.Use(middleware.RequireUser(db))
		{
			authed.POST("/enterproduct", productcontroller.CreateProduct(db))
			authed.PUT("/updateproduct", productcontroller.UpdateProduct(db))
			authed.DELETE("/deleteproduct/:product_id", productcontroller.DeleteProduct(db))
		}

		admin := products.Group("")
		admin.Use(middleware.RequireUser(db), middleware.RequireAdmin())
		{
			admin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}
}
