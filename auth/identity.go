package auth

import (
	"time"

	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type IdentityKind int

const (
	IdentityUser IdentityKind = iota + 1
	IdentitySession
)

// Identity names a cart owner: either an authenticated user's email or an
// anonymous session token. It is resolved once per request and passed
// explicitly; queries never build column names from strings.
type Identity struct {
	Kind  IdentityKind
	Value string
}

func UserIdentity(email string) Identity {
	return Identity{Kind: IdentityUser, Value: email}
}

func SessionIdentity(token string) Identity {
	return Identity{Kind: IdentitySession, Value: token}
}

// Scope restricts a cart query to entries owned by the identity.
func (id Identity) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id.Kind == IdentityUser {
			return db.Where("user_email = ?", id.Value)
		}
		return db.Where("session_token = ?", id.Value)
	}
}

// NewCartEntry builds a cart row owned by the identity.
func (id Identity) NewCartEntry(productID uint, quantity int) models.CartEntry {
	entry := models.CartEntry{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	value := id.Value
	if id.Kind == IdentityUser {
		entry.UserEmail = &value
	} else {
		entry.SessionToken = &value
	}
	return entry
}
