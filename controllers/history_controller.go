package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk/services"
)

// GetAssetHistory returns the ledger rows for an asset, newest first
func GetAssetHistory(c *gin.Context) {
	history, err := services.GetAssetHistory(c.Param("id"))
	if err != nil {
		log.Printf("History query error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset history"})
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetUserActivityLogs returns activity records, newest first, with optional
// user/date/action filters
func GetUserActivityLogs(c *gin.Context) {
	var filters services.ActivityLogFilters

	if userID, ok := c.GetQuery("user_id"); ok {
		filters.UserID = &userID
	}
	if start, ok := c.GetQuery("start_date"); ok {
		t, err := parseDate(start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
		filters.StartDate = &t
	}
	if end, ok := c.GetQuery("end_date"); ok {
		t, err := parseDate(end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
		filters.EndDate = &t
	}
	if action, ok := c.GetQuery("action"); ok {
		filters.Action = &action
	}

	logs, err := services.GetActivityLogs(filters)
	if err != nil {
		log.Printf("Activity log query error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
