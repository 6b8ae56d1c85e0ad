package categoryControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
	))
	return db
}

func newCategoryRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/categories/create", CreateCategory(db))
	r.DELETE("/categories/delete/:category_id", DeleteCategory(db))
	r.GET("/categories/all", GetAllCategories(db))
	r.POST("/categories/sub/create", CreateSubCategory(db))
	r.DELETE("/categories/sub/delete/:sub_category_id", DeleteSubCategory(db))
	r.GET("/categories/subcategories/:category_id", GetSubCategoriesByCategory(db))
	r.GET("/categories/home-sections", GetHomeSections(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)
	r := newCategoryRouter(db)

	w := doJSON(t, r, http.MethodPost, "/categories/create", gin.H{"name": "Shoes", "description": "footwear"})
	assert.Equal(t, http.StatusCreated, w.Code)

	t.Run("duplicate name rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/categories/create", gin.H{"name": "Shoes"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("name required", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/categories/create", gin.H{"description": "nameless"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateSubCategory(t *testing.T) {
	db := newTestDB(t)
	r := newCategoryRouter(db)

	cat := models.Category{Name: "Shoes"}
	require.NoError(t, db.Create(&cat).Error)
	other := models.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&other).Error)

	w := doJSON(t, r, http.MethodPost, "/categories/sub/create", gin.H{"name": "Sneakers", "category_id": cat.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	t.Run("missing parent", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/categories/sub/create", gin.H{"name": "Boots", "category_id": 9999})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("duplicate within category rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/categories/sub/create", gin.H{"name": "Sneakers", "category_id": cat.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("same name allowed under another category", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/categories/sub/create", gin.H{"name": "Sneakers", "category_id": other.ID})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestDeleteCategoryGuard(t *testing.T) {
	db := newTestDB(t)
	r := newCategoryRouter(db)

	cat := models.Category{Name: "Shoes"}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.SubCategory{Name: "Sneakers", CategoryID: cat.ID}
	require.NoError(t, db.Create(&sub).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/categories/delete/%d", cat.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "subcategories")

	require.NoError(t, db.Delete(&sub).Error)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/categories/delete/%d", cat.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/categories/delete/%d", cat.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSubCategoryGuard(t *testing.T) {
	db := newTestDB(t)
	r := newCategoryRouter(db)

	cat := models.Category{Name: "Shoes"}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.SubCategory{Name: "Sneakers", CategoryID: cat.ID}
	require.NoError(t, db.Create(&sub).Error)
	product := models.Product{Name: "Runner", Price: 30, Stock: 2, SubCategoryID: sub.ID}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/categories/sub/delete/%d", sub.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "products")

	require.NoError(t, db.Delete(&product).Error)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/categories/sub/delete/%d", sub.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSubCategoriesByCategory(t *testing.T) {
	db := newTestDB(t)
	r := newCategoryRouter(db)

	cat := models.Category{Name: "Shoes"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&models.SubCategory{Name: "Sneakers", CategoryID: cat.ID}).Error)
	require.NoError(t, db.Create(&models.SubCategory{Name: "Boots", CategoryID: cat.ID}).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/categories/subcategories/%d", cat.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)

	t.Run("unknown category", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/categories/subcategories/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetHomeSections(t *testing.T) {
	db := newTestDB(t)
	r := newCategoryRouter(db)

	cat := models.Category{Name: "Shoes", BannerURL: "/img/shoes.png"}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.SubCategory{Name: "Sneakers", CategoryID: cat.ID}
	require.NoError(t, db.Create(&sub).Error)
	for i := 0; i < 4; i++ {
		p := models.Product{Name: fmt.Sprintf("Runner %d", i), Price: 30, Stock: 2, SubCategoryID: sub.ID}
		require.NoError(t, db.Create(&p).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/categories/home-sections?products_per_subcat=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Sections []struct {
			CategoryName string           `json:"category_name"`
			Products     []models.Product `json:"products"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Sections, 1)
	assert.Equal(t, "Shoes", body.Sections[0].CategoryName)
	assert.Len(t, body.Sections[0].Products, 2)
}
