package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk/database"
	"assetdesk/services"
	"assetdesk/utils"
)

// CreateUserRequest contains the fields accepted when creating a user
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN EMPLOYEE"`
	FullName string `json:"full_name" binding:"required"`
}

// UpdateUserRequest contains a partial user update
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}

// CreateUser registers a new user (Admin only)
func CreateUser(c *gin.Context) {
	var request CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("Password hashing error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	now := time.Now().UTC()
	user := database.User{
		ID:           uuid.NewString(),
		Email:        request.Email,
		PasswordHash: hash,
		Role:         request.Role,
		FullName:     request.FullName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if services.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		log.Printf("User creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if actorID, exists := c.Get("userID"); exists {
		if id, ok := actorID.(string); ok {
			if logErr := services.LogActivity(id, database.ActionCreateUser, "user", &user.ID, nil); logErr != nil {
				log.Printf("Warning: failed to log user creation activity: %v", logErr)
				// Continue despite this error
			}
		}
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsers lists all users; credential hashes never serialize
func GetUsers(c *gin.Context) {
	var users []database.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserByID retrieves a user by ID
func GetUserByID(c *gin.Context) {
	var user database.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update to a user, including password changes
func UpdateUser(c *gin.Context) {
	var user database.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	var request UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if request.Email != nil {
		updates["email"] = *request.Email
	}
	if request.Role != nil {
		if *request.Role != RoleAdmin && *request.Role != RoleEmployee {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		updates["role"] = *request.Role
	}
	if request.FullName != nil {
		updates["full_name"] = *request.FullName
	}
	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}
	if request.Password != nil {
		hash, err := utils.HashPassword(*request.Password)
		if err != nil {
			log.Printf("Password hashing error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}
		updates["password_hash"] = hash
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			if services.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
				return
			}
			log.Printf("User update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}

	if err := database.DB.Where("id = ?", user.ID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser soft-deactivates a user. User rows are never removed; an
// already inactive or missing user is an error.
func DeleteUser(c *gin.Context) {
	var user database.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusConflict, gin.H{"error": "User is already inactive"})
		return
	}

	updates := map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("User deactivation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
