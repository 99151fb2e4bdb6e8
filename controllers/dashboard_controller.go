package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk/services"
)

// GetDashboardStats returns key statistics for the dashboard
func GetDashboardStats(c *gin.Context) {
	stats, err := services.GetDashboardStats()
	if err != nil {
		log.Printf("Dashboard stats error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
