package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assetdesk/services"
)

// CreateAssetRequest contains the fields accepted when creating an asset
type CreateAssetRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Condition   string  `json:"condition" binding:"required"`
	Owner       *string `json:"owner"`
	PhotoURL    *string `json:"photo_url"`
}

// UpdateAssetRequest contains a partial asset update; absent fields are
// left untouched
type UpdateAssetRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Condition   *string `json:"condition"`
	Owner       *string `json:"owner"`
	PhotoURL    *string `json:"photo_url"`
}

// CreateAsset creates a new asset
func CreateAsset(c *gin.Context) {
	var request CreateAssetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := services.CreateAsset(services.CreateAssetInput{
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		Condition:   request.Condition,
		Owner:       request.Owner,
		PhotoURL:    request.PhotoURL,
	})
	if err != nil {
		log.Printf("Asset creation error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// GetAssets lists assets with optional filters
func GetAssets(c *gin.Context) {
	var filters services.AssetFilters

	if search, ok := c.GetQuery("search"); ok {
		filters.Search = &search
	}
	if category, ok := c.GetQuery("category"); ok {
		filters.Category = &category
	}
	if condition, ok := c.GetQuery("condition"); ok {
		filters.Condition = &condition
	}
	if owner, ok := c.GetQuery("owner"); ok {
		filters.Owner = &owner
	}
	if archived, ok := c.GetQuery("is_archived"); ok {
		value, err := strconv.ParseBool(archived)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_archived must be a boolean"})
			return
		}
		filters.IsArchived = &value
	}

	assets, err := services.ListAssets(filters)
	if err != nil {
		log.Printf("Asset listing error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assets"})
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetAssetByID returns an asset with complaints, history and maintenance
// schedules embedded
func GetAssetByID(c *gin.Context) {
	asset, err := services.GetAssetWithRelations(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// UpdateAsset applies a partial update to an asset
func UpdateAsset(c *gin.Context) {
	var request UpdateAssetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := services.UpdateAsset(c.Param("id"), services.UpdateAssetInput{
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		Condition:   request.Condition,
		Owner:       request.Owner,
		PhotoURL:    request.PhotoURL,
	})
	if err != nil {
		log.Printf("Asset update error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset archives an asset, or permanently deletes it together with
// its dependent rows when ?permanent=true
func DeleteAsset(c *gin.Context) {
	permanent := false
	if value, ok := c.GetQuery("permanent"); ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "permanent must be a boolean"})
			return
		}
		permanent = parsed
	}

	success, err := services.DeleteAsset(c.Param("id"), permanent)
	if err != nil {
		log.Printf("Asset deletion error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

// RestoreAsset clears the archived flag on an archived asset
func RestoreAsset(c *gin.Context) {
	asset, err := services.RestoreAsset(c.Param("id"))
	if err != nil {
		log.Printf("Asset restore error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}
