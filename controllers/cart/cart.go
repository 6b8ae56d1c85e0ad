package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/auth"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/middleware"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemView is one cart row joined with its live product data.
type CartItemView struct {
	ID                   uint             `json:"id"`
	ProductID            uint             `json:"product_id"`
	Name                 string           `json:"name"`
	Price                float64          `json:"price"`
	ImageURL             string           `json:"image_url"`
	Stock                int              `json:"stock"`
	Quantity             int              `json:"quantity"`
	FrequentlyBoughtWith []RelatedProduct `json:"frequently_bought_with" gorm:"-"`
}

// reserveStock decrements product stock by quantity only if enough remains.
// The conditional update keeps concurrent adds from overselling.
func reserveStock(tx *gorm.DB, productID uint, quantity int) error {
	result := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return apperr.Unavailable("failed to update stock")
	}
	if result.RowsAffected == 0 {
		return apperr.Validation("not enough stock available")
	}
	return nil
}

func releaseStock(tx *gorm.DB, productID uint, quantity int) error {
	err := tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity)).Error
	if err != nil {
		return apperr.Unavailable("failed to restore stock")
	}
	return nil
}

// POST /cart/addcart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.RequestIdentity(c)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("product not found")
				}
				return apperr.Unavailable("failed to fetch product")
			}

			if err := reserveStock(tx, product.ID, input.Quantity); err != nil {
				return err
			}

			var entry models.CartEntry
			err := tx.Scopes(identity.Scope()).Where("product_id = ?", product.ID).First(&entry).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				newEntry := identity.NewCartEntry(product.ID, input.Quantity)
				if err := tx.Create(&newEntry).Error; err != nil {
					return apperr.Unavailable("failed to add item to cart")
				}
			case err != nil:
				return apperr.Unavailable("failed to fetch cart item")
			default:
				err := tx.Model(&entry).UpdateColumn("quantity", gorm.Expr("quantity + ?", input.Quantity)).Error
				if err != nil {
					return apperr.Unavailable("failed to update cart item")
				}
			}
			return nil
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart"})
	}
}

// PUT /cart/updatecart/:product_id
//
// Sets the cart quantity to an absolute value, shifting the difference to or
// from product stock.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.RequestIdentity(c)
		productID := c.Param("product_id")

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var entry models.CartEntry
			err := tx.Scopes(identity.Scope()).Where("product_id = ?", productID).First(&entry).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("item not found in cart")
				}
				return apperr.Unavailable("failed to fetch cart item")
			}

			diff := input.Quantity - entry.Quantity
			if diff > 0 {
				if err := reserveStock(tx, entry.ProductID, diff); err != nil {
					return err
				}
			} else if diff < 0 {
				if err := releaseStock(tx, entry.ProductID, -diff); err != nil {
					return err
				}
			}

			err = tx.Model(&entry).Updates(map[string]interface{}{
				"quantity": input.Quantity,
				"added_at": time.Now(),
			}).Error
			if err != nil {
				return apperr.Unavailable("failed to update cart item")
			}
			return nil
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/removecart/:product_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.RequestIdentity(c)
		productID := c.Param("product_id")

		err := db.Transaction(func(tx *gorm.DB) error {
			var entry models.CartEntry
			err := tx.Scopes(identity.Scope()).Where("product_id = ?", productID).First(&entry).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("item not found in cart")
				}
				return apperr.Unavailable("failed to fetch cart item")
			}

			if err := tx.Delete(&entry).Error; err != nil {
				return apperr.Unavailable("failed to remove cart item")
			}
			return releaseStock(tx, entry.ProductID, entry.Quantity)
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /cart/clearcart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.RequestIdentity(c)

		err := db.Transaction(func(tx *gorm.DB) error {
			var entries []models.CartEntry
			if err := tx.Scopes(identity.Scope()).Find(&entries).Error; err != nil {
				return apperr.Unavailable("failed to fetch cart")
			}

			for _, entry := range entries {
				if err := releaseStock(tx, entry.ProductID, entry.Quantity); err != nil {
					return err
				}
			}

			if err := tx.Scopes(identity.Scope()).Delete(&models.CartEntry{}).Error; err != nil {
				return apperr.Unavailable("failed to clear cart")
			}
			return nil
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart/getcart
//
// Returns the cart joined with live product data, each item carrying its
// "frequently bought with" affinity set.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.RequestIdentity(c)

		items, err := cartItems(db, identity)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		for i := range items {
			related, err := FrequentlyBoughtWith(db, items[i].ProductID, affinityLimit)
			if err != nil {
				apperr.Respond(c, err)
				return
			}
			items[i].FrequentlyBoughtWith = related
		}

		c.JSON(http.StatusOK, gin.H{"cart_items": items, "count": len(items)})
	}
}

func cartItems(db *gorm.DB, identity auth.Identity) ([]CartItemView, error) {
	var items []CartItemView
	err := db.Model(&models.CartEntry{}).
		Select("cart_entries.id, cart_entries.product_id, cart_entries.quantity, products.name, products.price, products.image_url, products.stock").
		Joins("JOIN products ON products.id = cart_entries.product_id").
		Scopes(identity.Scope()).
		Scan(&items).Error
	if err != nil {
		return nil, apperr.Unavailable("failed to fetch cart")
	}
	return items, nil
}
