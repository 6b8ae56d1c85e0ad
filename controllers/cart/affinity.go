package cartControllers

import (
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
)

// affinityLimit caps the number of suggestions attached per cart item.
const affinityLimit = 3

// RelatedProduct is one "frequently bought with" suggestion.
type RelatedProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// FrequentlyBoughtWith returns up to limit distinct products that appear in
// any cart (any identity) that also contains productID, excluding the product
// itself. Computed live via self-join; ordering among ties is unspecified.
// One query per cart item keeps this O(n) in cart size — fine for carts, not
// for bulk analytics.
func FrequentlyBoughtWith(db *gorm.DB, productID uint, limit int) ([]RelatedProduct, error) {
	var related []RelatedProduct
	err := db.Raw(`
		SELECT DISTINCT p.id, p.name, p.price, p.image_url
		FROM cart_entries c1
		JOIN cart_entries c2
		  ON (c1.session_token IS NOT NULL AND c1.session_token = c2.session_token)
		  OR (c1.user_email IS NOT NULL AND c1.user_email = c2.user_email)
		JOIN products p ON p.id = c2.product_id
		WHERE c1.product_id = ? AND c2.product_id != ?
		LIMIT ?`,
		productID, productID, limit,
	).Scan(&related).Error
	if err != nil {
		return nil, apperr.Unavailable("failed to fetch suggestions")
	}
	return related, nil
}
