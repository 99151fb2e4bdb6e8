package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk/services"
)

// CreateComplaintRequest contains the fields accepted when filing a complaint
type CreateComplaintRequest struct {
	AssetID         string `json:"asset_id" binding:"required"`
	ComplainantName string `json:"complainant_name" binding:"required"`
	Status          string `json:"status" binding:"required"`
	Description     string `json:"description" binding:"required"`
}

// UpdateComplaintRequest contains a partial complaint update
type UpdateComplaintRequest struct {
	ComplainantName *string `json:"complainant_name"`
	Status          *string `json:"status"`
	Description     *string `json:"description"`
}

// CreateComplaint files a complaint against an asset
func CreateComplaint(c *gin.Context) {
	var request CreateComplaintRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := services.CreateComplaint(services.CreateComplaintInput{
		AssetID:         request.AssetID,
		ComplainantName: request.ComplainantName,
		Status:          request.Status,
		Description:     request.Description,
	})
	if err != nil {
		log.Printf("Complaint creation error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// GetComplaints lists complaints with optional asset/status filters
func GetComplaints(c *gin.Context) {
	var filters services.ComplaintFilters
	if assetID, ok := c.GetQuery("asset_id"); ok {
		filters.AssetID = &assetID
	}
	if status, ok := c.GetQuery("status"); ok {
		filters.Status = &status
	}

	complaints, err := services.GetComplaints(filters)
	if err != nil {
		log.Printf("Complaint listing error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaints"})
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// UpdateComplaint applies a partial update; resolving the last open
// complaint may auto-heal the owning asset's condition
func UpdateComplaint(c *gin.Context) {
	var request UpdateComplaintRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := services.UpdateComplaint(c.Param("id"), services.UpdateComplaintInput{
		ComplainantName: request.ComplainantName,
		Status:          request.Status,
		Description:     request.Description,
	})
	if err != nil {
		log.Printf("Complaint update error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}
