package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk/database"
)

// CreateComplaintInput carries the fields accepted when filing a complaint.
type CreateComplaintInput struct {
	AssetID         string
	ComplainantName string
	Status          string
	Description     string
}

// UpdateComplaintInput carries a partial complaint update. Nil means absent.
type UpdateComplaintInput struct {
	ComplainantName *string
	Status          *string
	Description     *string
}

// CreateComplaint files a complaint against an existing asset. The given
// status is stored as-is, no default coercion.
func CreateComplaint(input CreateComplaintInput) (*database.Complaint, error) {
	if input.ComplainantName == "" || input.Description == "" {
		return nil, fmt.Errorf("complainant name and description are required: %w", ErrValidation)
	}
	if !database.IsValidComplaintStatus(input.Status) {
		return nil, fmt.Errorf("unknown complaint status %q: %w", input.Status, ErrValidation)
	}

	var asset database.Asset
	if err := database.DB.Where("id = ?", input.AssetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", input.AssetID, ErrNotFound)
		}
		return nil, err
	}

	now := time.Now().UTC()
	complaint := database.Complaint{
		ID:              uuid.NewString(),
		AssetID:         input.AssetID,
		ComplainantName: input.ComplainantName,
		Status:          input.Status,
		Description:     input.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := database.DB.Create(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// UpdateComplaint applies only the fields present in the input. A status
// transition writes a complaint_status ledger row against the owning asset;
// a transition to RESOLVED may additionally auto-heal the asset condition.
// The complaint write is durable before either side effect runs, and a
// failure in them is returned without rolling the complaint back.
func UpdateComplaint(id string, input UpdateComplaintInput) (*database.Complaint, error) {
	var complaint database.Complaint
	if err := database.DB.Where("id = ?", id).First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("complaint %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	oldStatus := complaint.Status
	statusChanged := false
	updates := map[string]interface{}{}

	if input.ComplainantName != nil {
		if *input.ComplainantName == "" {
			return nil, fmt.Errorf("complainant name must not be empty: %w", ErrValidation)
		}
		if *input.ComplainantName != complaint.ComplainantName {
			updates["complainant_name"] = *input.ComplainantName
		}
	}
	if input.Description != nil {
		if *input.Description == "" {
			return nil, fmt.Errorf("description must not be empty: %w", ErrValidation)
		}
		if *input.Description != complaint.Description {
			updates["description"] = *input.Description
		}
	}
	if input.Status != nil && *input.Status != complaint.Status {
		if !database.IsValidComplaintStatus(*input.Status) {
			return nil, fmt.Errorf("unknown complaint status %q: %w", *input.Status, ErrValidation)
		}
		updates["status"] = *input.Status
		statusChanged = true
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := database.DB.Model(&database.Complaint{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := database.DB.Where("id = ?", id).First(&complaint).Error; err != nil {
			return nil, err
		}
	}

	if statusChanged {
		if err := appendHistory(database.DB, complaint.AssetID, database.FieldComplaintStatus, &oldStatus, input.Status, nil); err != nil {
			return &complaint, err
		}
		if *input.Status == database.ComplaintResolved {
			if err := autoHealAsset(complaint.AssetID, complaint.ID); err != nil {
				return &complaint, err
			}
		}
	}

	return &complaint, nil
}

// autoHealAsset flips an UNDER_REPAIR asset back to GOOD once its last
// open complaint resolves, recording the transition in the ledger.
func autoHealAsset(assetID, resolvedComplaintID string) error {
	var openSiblings int64
	err := database.DB.Model(&database.Complaint{}).
		Where("asset_id = ? AND id <> ? AND status <> ?", assetID, resolvedComplaintID, database.ComplaintResolved).
		Count(&openSiblings).Error
	if err != nil {
		return err
	}
	if openSiblings > 0 {
		return nil
	}

	var asset database.Asset
	if err := database.DB.Where("id = ?", assetID).First(&asset).Error; err != nil {
		return err
	}
	if asset.Condition != database.ConditionUnderRepair {
		return nil
	}

	oldCondition := asset.Condition
	updates := map[string]interface{}{
		"condition":  database.ConditionGood,
		"updated_at": time.Now().UTC(),
	}
	if err := database.DB.Model(&asset).Updates(updates).Error; err != nil {
		return err
	}

	good := database.ConditionGood
	return appendHistory(database.DB, assetID, "condition", &oldCondition, &good, nil)
}

// ComplaintFilters narrows GetComplaints results. Nil fields are ignored.
type ComplaintFilters struct {
	AssetID *string
	Status  *string
}

// GetComplaints lists complaints, newest first.
func GetComplaints(filters ComplaintFilters) ([]database.Complaint, error) {
	query := database.DB.Model(&database.Complaint{})
	if filters.AssetID != nil {
		query = query.Where("asset_id = ?", *filters.AssetID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var complaints []database.Complaint
	if err := query.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}
