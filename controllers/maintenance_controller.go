package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk/database"
)

// CreateMaintenanceRequest contains the fields accepted when scheduling
// maintenance
type CreateMaintenanceRequest struct {
	AssetID       string  `json:"asset_id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	CreatedBy     string  `json:"created_by" binding:"required"`
}

// UpdateMaintenanceRequest contains a partial maintenance update
type UpdateMaintenanceRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ScheduledDate *string `json:"scheduled_date"`
	IsCompleted   *bool   `json:"is_completed"`
}

// parseDate accepts RFC3339 timestamps or plain dates
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// CreateMaintenance schedules maintenance for an asset
func CreateMaintenance(c *gin.Context) {
	var request CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scheduledDate, err := parseDate(request.ScheduledDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_date must be RFC3339 or YYYY-MM-DD"})
		return
	}

	var asset database.Asset
	if err := database.DB.Where("id = ?", request.AssetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	var creator database.User
	if err := database.DB.Where("id = ?", request.CreatedBy).First(&creator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	now := time.Now().UTC()
	schedule := database.MaintenanceSchedule{
		ID:            uuid.NewString(),
		AssetID:       request.AssetID,
		Title:         request.Title,
		Description:   request.Description,
		ScheduledDate: scheduledDate,
		IsCompleted:   false,
		CreatedBy:     request.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := database.DB.Create(&schedule).Error; err != nil {
		log.Printf("Maintenance creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance schedule"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetMaintenanceSchedules lists schedules with optional filters
func GetMaintenanceSchedules(c *gin.Context) {
	query := database.DB.Model(&database.MaintenanceSchedule{})

	if assetID, ok := c.GetQuery("asset_id"); ok {
		query = query.Where("asset_id = ?", assetID)
	}
	if start, ok := c.GetQuery("start_date"); ok {
		t, err := parseDate(start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
		query = query.Where("scheduled_date >= ?", t)
	}
	if end, ok := c.GetQuery("end_date"); ok {
		t, err := parseDate(end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
		query = query.Where("scheduled_date <= ?", t)
	}
	if completed, ok := c.GetQuery("is_completed"); ok {
		value, err := strconv.ParseBool(completed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_completed must be a boolean"})
			return
		}
		query = query.Where("is_completed = ?", value)
	}

	var schedules []database.MaintenanceSchedule
	if err := query.Order("scheduled_date ASC").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve maintenance schedules"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// UpdateMaintenance applies a partial update to a schedule
func UpdateMaintenance(c *gin.Context) {
	var schedule database.MaintenanceSchedule
	if err := database.DB.Where("id = ?", c.Param("id")).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance schedule not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	var request UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.ScheduledDate != nil {
		t, err := parseDate(*request.ScheduledDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
		updates["scheduled_date"] = t
	}
	if request.IsCompleted != nil {
		updates["is_completed"] = *request.IsCompleted
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := database.DB.Model(&schedule).Updates(updates).Error; err != nil {
			log.Printf("Maintenance update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance schedule"})
			return
		}
	}

	if err := database.DB.Where("id = ?", schedule.ID).First(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}
