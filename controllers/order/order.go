package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type OrderItemInput struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type CreateOrderInput struct {
	UserEmail     string           `json:"user_email" binding:"required,email"`
	State         string           `json:"state" binding:"required"`
	City          string           `json:"city" binding:"required"`
	Address       string           `json:"address" binding:"required"`
	PhoneNumber   string           `json:"phone_number" binding:"required,min=11,max=20"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
	TransactionID string           `json:"transaction_id"`
	CardLast4     string           `json:"card_last4"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// POST /order/create
//
// The order and its item snapshots commit in one transaction; items record
// name, quantity and price at purchase time and are never joined back to the
// live product.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		order := models.Order{
			UserEmail:     input.UserEmail,
			State:         input.State,
			City:          input.City,
			Address:       input.Address,
			PhoneNumber:   input.PhoneNumber,
			PaymentMethod: input.PaymentMethod,
			TransactionID: input.TransactionID,
			CardLast4:     input.CardLast4,
			CreatedAt:     time.Now(),
		}
		for _, item := range input.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Price:       item.Price,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to create order"))
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Order created successfully",
			"order_id": order.ID,
		})
	}
}

// GET /order/orders/:user_email
//
// A user may read only their own history; admins may read anyone's.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("user_email")
		if c.GetString("user_role") != "admin" && c.GetString("user_email") != email {
			apperr.Respond(c, apperr.Forbidden("not authorized to view these orders"))
			return
		}

		var orders []models.Order
		err := db.Where("user_email = ?", email).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch orders"))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /order/all (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		err := db.Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to fetch orders"))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
