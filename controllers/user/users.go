package userControllers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/auth"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validatePassword enforces the registration password policy: at least 8
// characters, 3 uppercase, 2 lowercase and 2 special characters.
func validatePassword(password string) error {
	if len(password) < 8 {
		return apperr.Validation("password must be at least 8 characters long")
	}
	var upper, lower, special int
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special++
		}
	}
	if upper < 3 {
		return apperr.Validation("password must contain at least 3 uppercase letters")
	}
	if lower < 2 {
		return apperr.Validation("password must contain at least 2 lowercase letters")
	}
	if special < 2 {
		return apperr.Validation("password must contain at least 2 special characters")
	}
	return nil
}

// POST /users/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}
		if err := validatePassword(input.Password); err != nil {
			apperr.Respond(c, err)
			return
		}

		email := strings.ToLower(input.Email)

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			apperr.Respond(c, apperr.Validation("email already registered"))
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.Unavailable("failed to check existing users"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to hash password"))
			return
		}

		role := input.Role
		if role == "" {
			role = "user"
		}

		user := models.User{
			Name:     input.Name,
			Email:    email,
			Password: string(hash),
			Role:     role,
		}
		if err := db.Create(&user).Error; err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to register user"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// POST /users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		var user models.User
		if err := db.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error; err != nil {
			apperr.Respond(c, apperr.Unauthorized("invalid credentials"))
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			apperr.Respond(c, apperr.Unauthorized("invalid credentials"))
			return
		}

		token, err := auth.IssueToken(user.Email, user.Role)
		if err != nil {
			apperr.Respond(c, apperr.Unavailable("failed to issue token"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "bearer",
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
				"name":  user.Name,
				"role":  user.Role,
			},
		})
	}
}

// PUT /users/update
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid input: %s", err.Error()))
			return
		}

		updates := make(map[string]interface{})
		if input.Name != "" {
			updates["name"] = input.Name
		}
		if input.Email != "" {
			updates["email"] = strings.ToLower(input.Email)
		}
		if input.Password != "" {
			if err := validatePassword(input.Password); err != nil {
				apperr.Respond(c, err)
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				apperr.Respond(c, apperr.Unavailable("failed to hash password"))
				return
			}
			updates["password"] = string(hash)
		}
		if len(updates) == 0 {
			apperr.Respond(c, apperr.Validation("no fields to update"))
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
		if result.Error != nil {
			apperr.Respond(c, apperr.Unavailable("failed to update user"))
			return
		}
		if result.RowsAffected == 0 {
			apperr.Respond(c, apperr.NotFound("user not found"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
	}
}

// DELETE /users/delete/:user_id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("user_id")).Delete(&models.User{})
		if result.Error != nil {
			apperr.Respond(c, apperr.Unavailable("failed to delete user"))
			return
		}
		if result.RowsAffected == 0 {
			apperr.Respond(c, apperr.NotFound("user not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
