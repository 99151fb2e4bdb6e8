package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"assetdesk/database"
)

// Recommender is the external text-generation collaborator. It receives a
// structured prompt built from the asset and returns exactly three
// maintenance suggestions.
type Recommender interface {
	Recommend(asset database.Asset, openComplaints int64) ([]string, error)
}

// ActiveRecommender is the configured collaborator; nil means none.
var ActiveRecommender Recommender

// GetRecommendations returns three suggestion strings for an asset. When
// the collaborator fails or returns something unusable, a deterministic
// rule-based approximation takes its place instead of an error.
func GetRecommendations(assetID string) ([]string, error) {
	var asset database.Asset
	if err := database.DB.Where("id = ?", assetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
		}
		return nil, err
	}

	var openComplaints int64
	err := database.DB.Model(&database.Complaint{}).
		Where("asset_id = ? AND status <> ?", assetID, database.ComplaintResolved).
		Count(&openComplaints).Error
	if err != nil {
		return nil, err
	}

	if ActiveRecommender != nil {
		recs, err := ActiveRecommender.Recommend(asset, openComplaints)
		if err == nil && len(recs) == 3 {
			return recs, nil
		}
		if err != nil {
			log.Printf("Warning: recommender failed, using rule-based fallback: %v", err)
		}
	}

	return fallbackRecommendations(asset, openComplaints), nil
}

// fallbackRecommendations derives three suggestions from condition, open
// complaint count and asset age.
func fallbackRecommendations(asset database.Asset, openComplaints int64) []string {
	recs := make([]string, 0, 3)

	switch asset.Condition {
	case database.ConditionDamaged:
		recs = append(recs, "Schedule an immediate repair assessment; the asset is marked DAMAGED.")
	case database.ConditionUnderRepair:
		recs = append(recs, "Follow up on the ongoing repair and verify open complaints are being addressed.")
	case database.ConditionNew:
		recs = append(recs, "Register the asset's warranty details and set up a baseline maintenance schedule.")
	default:
		recs = append(recs, "Keep the regular maintenance schedule; no condition issues recorded.")
	}

	if openComplaints > 1 {
		recs = append(recs, fmt.Sprintf("Investigate the %d open complaints for a common root cause.", openComplaints))
	} else if openComplaints == 1 {
		recs = append(recs, "Resolve the single open complaint before it escalates.")
	} else {
		recs = append(recs, "No open complaints; a routine inspection is sufficient.")
	}

	age := time.Since(asset.CreatedAt)
	if age > 3*365*24*time.Hour {
		recs = append(recs, "The asset is over three years old; evaluate replacement against repair cost.")
	} else {
		recs = append(recs, "The asset is within its expected service life; plan preventive maintenance only.")
	}

	return recs
}
