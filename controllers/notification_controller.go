package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk/services"
)

// SendNotificationRequest contains the outbound notification fields
type SendNotificationRequest struct {
	To      []string `json:"to" binding:"required"`
	Subject string   `json:"subject" binding:"required"`
	Body    string   `json:"body" binding:"required"`
	Type    string   `json:"type" binding:"required"`
}

// SendNotificationEmail validates and delegates an outbound notification to
// the mail collaborator
func SendNotificationEmail(c *gin.Context) {
	var request SendNotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SendNotificationEmail(request.To, request.Subject, request.Body, request.Type); err != nil {
		log.Printf("Notification dispatch error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
