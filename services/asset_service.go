package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk/database"
)

// ScanCodePrefix is prepended to the asset id to form the scan-code token.
// The id is collision-free, so the scan code is too.
const ScanCodePrefix = "AST-"

// CreateAssetInput carries the fields accepted when creating an asset.
type CreateAssetInput struct {
	Name        string
	Description *string
	Category    string
	Condition   string
	Owner       *string
	PhotoURL    *string
}

// UpdateAssetInput carries a partial asset update. Nil pointers mean "field
// absent"; for the nullable columns (description, owner, photo_url) an empty
// string clears the stored value.
type UpdateAssetInput struct {
	Name        *string
	Description *string
	Category    *string
	Condition   *string
	Owner       *string
	PhotoURL    *string
}

type fieldChange struct {
	name     string
	oldValue *string
	newValue *string
}

// CreateAsset validates the closed category/condition sets, generates the id
// and scan code, and persists the asset unarchived. When the owner value
// names an existing active user, one CREATE_ASSET activity row is appended;
// a failure there is logged and swallowed so the asset write stands.
func CreateAsset(input CreateAssetInput) (*database.Asset, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if !database.IsValidCategory(input.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", input.Category, ErrValidation)
	}
	if !database.IsValidCondition(input.Condition) {
		return nil, fmt.Errorf("unknown condition %q: %w", input.Condition, ErrValidation)
	}

	now := time.Now().UTC()
	asset := database.Asset{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Condition:   input.Condition,
		Owner:       input.Owner,
		PhotoURL:    input.PhotoURL,
		IsArchived:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	asset.ScanCode = ScanCodePrefix + asset.ID

	if err := database.DB.Create(&asset).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("scan code already taken: %w", ErrDuplicate)
		}
		return nil, err
	}

	if input.Owner != nil && *input.Owner != "" {
		var owner database.User
		err := database.DB.Where("id = ? AND is_active = ?", *input.Owner, true).First(&owner).Error
		if err == nil {
			details := fmt.Sprintf("asset %q assigned on creation", asset.Name)
			if logErr := LogActivity(owner.ID, database.ActionCreateAsset, "asset", &asset.ID, &details); logErr != nil {
				log.Printf("Warning: failed to log asset creation activity: %v", logErr)
				// Continue despite this error
			}
		}
	}

	return &asset, nil
}

// UpdateAsset applies a partial update. Fields present in the input are
// diffed against stored values, including transitions to and from null; if
// nothing differs the stored row is returned untouched with no ledger
// writes. Otherwise all changed fields go out in one update followed by one
// AssetHistory row per field, with changed_by left unset.
func UpdateAsset(id string, input UpdateAssetInput) (*database.Asset, error) {
	var asset database.Asset
	if err := database.DB.Where("id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	var changes []fieldChange

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("name must not be empty: %w", ErrValidation)
		}
		if *input.Name != asset.Name {
			changes = append(changes, fieldChange{"name", strPtr(asset.Name), input.Name})
			updates["name"] = *input.Name
		}
	}
	if input.Description != nil {
		newVal := nullable(*input.Description)
		if !ptrEqual(newVal, asset.Description) {
			changes = append(changes, fieldChange{"description", asset.Description, newVal})
			updates["description"] = newVal
		}
	}
	if input.Category != nil && *input.Category != asset.Category {
		if !database.IsValidCategory(*input.Category) {
			return nil, fmt.Errorf("unknown category %q: %w", *input.Category, ErrValidation)
		}
		changes = append(changes, fieldChange{"category", strPtr(asset.Category), input.Category})
		updates["category"] = *input.Category
	}
	if input.Condition != nil && *input.Condition != asset.Condition {
		if !database.IsValidCondition(*input.Condition) {
			return nil, fmt.Errorf("unknown condition %q: %w", *input.Condition, ErrValidation)
		}
		changes = append(changes, fieldChange{"condition", strPtr(asset.Condition), input.Condition})
		updates["condition"] = *input.Condition
	}
	if input.Owner != nil {
		newVal := nullable(*input.Owner)
		if !ptrEqual(newVal, asset.Owner) {
			changes = append(changes, fieldChange{"owner", asset.Owner, newVal})
			updates["owner"] = newVal
		}
	}
	if input.PhotoURL != nil {
		newVal := nullable(*input.PhotoURL)
		if !ptrEqual(newVal, asset.PhotoURL) {
			changes = append(changes, fieldChange{"photo_url", asset.PhotoURL, newVal})
			updates["photo_url"] = newVal
		}
	}

	// Idempotent no-op: nothing differs, skip the write and the ledger.
	if len(updates) == 0 {
		return &asset, nil
	}

	updates["updated_at"] = time.Now().UTC()
	if err := database.DB.Model(&database.Asset{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	for _, change := range changes {
		if err := appendHistory(database.DB, asset.ID, change.name, change.oldValue, change.newValue, nil); err != nil {
			return nil, err
		}
	}

	if err := database.DB.Where("id = ?", id).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// ArchiveAsset soft-deletes an asset. There is deliberately no guard
// against archiving an already archived asset; re-archiving succeeds.
func ArchiveAsset(id string) (*database.Asset, error) {
	var asset database.Asset
	if err := database.DB.Where("id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"is_archived": true,
		"updated_at":  time.Now().UTC(),
	}
	if err := database.DB.Model(&asset).Updates(updates).Error; err != nil {
		return nil, err
	}

	asset.IsArchived = true
	return &asset, nil
}

// RestoreAsset clears the archived flag. Restoring a non-archived asset
// fails; the resulting activity row is attributed to the system actor.
func RestoreAsset(id string) (*database.Asset, error) {
	var asset database.Asset
	if err := database.DB.Where("id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if !asset.IsArchived {
		return nil, fmt.Errorf("asset %s is not archived: %w", id, ErrInvalidState)
	}

	updates := map[string]interface{}{
		"is_archived": false,
		"updated_at":  time.Now().UTC(),
	}
	if err := database.DB.Model(&asset).Updates(updates).Error; err != nil {
		return nil, err
	}
	asset.IsArchived = false

	if err := EnsureSystemUser(); err != nil {
		return nil, err
	}
	details := fmt.Sprintf("asset %q restored from archive", asset.Name)
	if err := LogActivity(SystemUserID, database.ActionRestoreAsset, "asset", &asset.ID, &details); err != nil {
		return nil, err
	}

	return &asset, nil
}

// DeleteAsset removes an asset. The soft path archives it; the permanent
// path deletes all dependent complaints, histories and schedules plus the
// asset row in one transaction. A missing asset yields success=false on
// both paths, not an error.
func DeleteAsset(id string, permanent bool) (bool, error) {
	var asset database.Asset
	if err := database.DB.Where("id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if !permanent {
		if _, err := ArchiveAsset(id); err != nil {
			return false, err
		}
		return true, nil
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&database.Complaint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", id).Delete(&database.AssetHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", id).Delete(&database.MaintenanceSchedule{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&database.Asset{}).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetAssetWithRelations loads an asset with its complaints, ledger rows
// (newest first) and maintenance schedules embedded.
func GetAssetWithRelations(id string) (*database.Asset, error) {
	var asset database.Asset
	err := database.DB.
		Preload("Complaints").
		Preload("Histories", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at DESC")
		}).
		Preload("MaintenanceSchedules").
		Where("id = ?", id).
		First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &asset, nil
}

func strPtr(s string) *string {
	return &s
}

// nullable maps the empty string to a database null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
