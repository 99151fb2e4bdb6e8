package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk/database"
)

// appendHistory inserts one append-only ledger row for a single field
// change. Ledger rows are never updated; the only delete path is the
// cascade performed by a permanent asset delete.
func appendHistory(db *gorm.DB, assetID, fieldName string, oldValue, newValue, changedBy *string) error {
	row := database.AssetHistory{
		ID:        uuid.NewString(),
		AssetID:   assetID,
		FieldName: fieldName,
		OldValue:  oldValue,
		NewValue:  newValue,
		ChangedBy: changedBy,
		ChangedAt: time.Now().UTC(),
	}
	return db.Create(&row).Error
}

// GetAssetHistory returns the ledger rows for an asset, newest first.
// Rows with identical timestamps have no stable relative order.
func GetAssetHistory(assetID string) ([]database.AssetHistory, error) {
	var rows []database.AssetHistory
	err := database.DB.
		Where("asset_id = ?", assetID).
		Order("changed_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
