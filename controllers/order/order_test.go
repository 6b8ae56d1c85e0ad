package orderControllers

import (
	"bytes"
	"encoding/json"
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

	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Product{}))
	return db
}

// newOrderRouter injects the authenticated user directly, skipping the token
// middleware.
func newOrderRouter(db *gorm.DB, email, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_email", email)
		c.Set("user_role", role)
		c.Next()
	})
	r.POST("/order/create", CreateOrder(db))
	r.GET("/order/orders/:user_email", GetUserOrders(db))
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

func orderBody(items []gin.H) gin.H {
	return gin.H{
		"user_email":     "alice@example.com",
		"state":          "Punjab",
		"city":           "Lahore",
		"address":        "12 Mall Road",
		"phone_number":   "03001234567",
		"payment_method": "cod",
		"items":          items,
	}
}

func TestCreateOrderSnapshotsItems(t *testing.T) {
	db := newTestDB(t)
	r := newOrderRouter(db, "alice@example.com", "user")

	product := models.Product{Name: "Kettle", Price: 25, Stock: 5, SubCategoryID: 1}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(t, r, http.MethodPost, "/order/create", orderBody([]gin.H{
		{"product_id": product.ID, "product_name": "Kettle", "quantity": 2, "price": 25.0},
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	// Renaming the live product must not touch the snapshot.
	require.NoError(t, db.Model(&product).Update("name", "Electric Kettle v2").Error)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Kettle", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 25.0, order.Items[0].Price)
	assert.Equal(t, "alice@example.com", order.UserEmail)
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	r := newOrderRouter(db, "alice@example.com", "user")

	t.Run("empty items rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/order/create", orderBody([]gin.H{}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short phone number rejected", func(t *testing.T) {
		body := orderBody([]gin.H{{"product_id": 1, "product_name": "Kettle", "quantity": 1, "price": 25.0}})
		body["phone_number"] = "12345"
		w := doJSON(t, r, http.MethodPost, "/order/create", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/order/create", orderBody([]gin.H{
			{"product_id": 1, "product_name": "Kettle", "quantity": 0, "price": 25.0},
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "rejected orders must not be persisted")
}

func TestGetUserOrders(t *testing.T) {
	db := newTestDB(t)
	r := newOrderRouter(db, "alice@example.com", "user")

	for _, email := range []string{"alice@example.com", "alice@example.com", "bob@example.com"} {
		order := models.Order{
			UserEmail: email, State: "Punjab", City: "Lahore", Address: "12 Mall Road",
			PhoneNumber: "03001234567", PaymentMethod: "cod",
			Items: []models.OrderItem{{ProductID: 1, ProductName: "Kettle", Quantity: 1, Price: 25}},
		}
		require.NoError(t, db.Create(&order).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/order/orders/alice@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "alice@example.com", o.UserEmail)
		assert.Len(t, o.Items, 1)
	}

	t.Run("another user's history is forbidden", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/order/orders/bob@example.com", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin may read anyone's history", func(t *testing.T) {
		admin := newOrderRouter(db, "admin@example.com", "admin")
		w := doJSON(t, admin, http.MethodGet, "/order/orders/bob@example.com", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var orders []models.Order
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		assert.Len(t, orders, 1)
	})
}
