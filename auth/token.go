package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds the lifetime of issued tokens.
const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken signs an HS256 token carrying the user's email and role.
func IssueToken(email, role string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseToken validates a signed token and returns its email and role claims.
func ParseToken(tokenString string) (email, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)
	if email == "" {
		return "", "", ErrInvalidToken
	}
	return email, role, nil
}
