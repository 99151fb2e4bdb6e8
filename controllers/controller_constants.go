package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk/database"
	"assetdesk/services"
)

// User role constants
const (
	RoleAdmin    = database.RoleAdmin
	RoleEmployee = database.RoleEmployee
)

// Asset condition constants
const (
	ConditionNew         = database.ConditionNew
	ConditionGood        = database.ConditionGood
	ConditionUnderRepair = database.ConditionUnderRepair
	ConditionDamaged     = database.ConditionDamaged
)

// Complaint status constants
const (
	ComplaintNeedsRepair = database.ComplaintNeedsRepair
	ComplaintUrgent      = database.ComplaintUrgent
	ComplaintUnderRepair = database.ComplaintUnderRepair
	ComplaintResolved    = database.ComplaintResolved
)

// respondServiceError maps service-layer sentinel errors onto HTTP status
// codes in one place.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCollaborator):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
