package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk/services"
)

// GenerateReportRequest contains the report filter fields
type GenerateReportRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Condition *string `json:"condition"`
	Category  *string `json:"category"`
	Owner     *string `json:"owner"`
	Format    string  `json:"format" binding:"required,oneof=PDF XLSX"`
}

// GenerateReport produces a report content descriptor for the matching
// assets
func GenerateReport(c *gin.Context) {
	var request GenerateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := services.ReportFilters{
		Condition: request.Condition,
		Category:  request.Category,
		Owner:     request.Owner,
		Format:    request.Format,
	}
	if request.StartDate != nil {
		t, err := parseDate(*request.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
		filters.StartDate = &t
	}
	if request.EndDate != nil {
		t, err := parseDate(*request.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
		filters.EndDate = &t
	}

	result, err := services.GenerateReport(filters)
	if err != nil {
		log.Printf("Report generation error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAssetRecommendations returns three maintenance suggestions for an asset
func GetAssetRecommendations(c *gin.Context) {
	recommendations, err := services.GetRecommendations(c.Param("id"))
	if err != nil {
		log.Printf("Recommendation error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
