package database

import (
	"time"
)

// FieldComplaintStatus is the synthetic history tag written when a
// complaint's status changes; every other tag names an asset column.
const FieldComplaintStatus = "complaint_status"

// AssetHistory is one append-only ledger row recording a single field's
// before/after value for an asset-related change. Rows are never updated;
// they are only inserted, or bulk-deleted when the owning asset is
// permanently removed.
type AssetHistory struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	AssetID   string    `gorm:"size:36;index;not null" json:"asset_id"`
	FieldName string    `gorm:"size:50;not null" json:"field_name"`
	OldValue  *string   `gorm:"type:text" json:"old_value"`
	NewValue  *string   `gorm:"type:text" json:"new_value"`
	ChangedBy *string   `gorm:"size:36" json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// UserActivityLog records a generic user action (actor, verb, target).
// Append-only, no update path.
type UserActivityLog struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:36;index;not null" json:"user_id"`
	Action     string    `gorm:"size:50;not null" json:"action"`
	EntityType string    `gorm:"size:50;not null" json:"entity_type"`
	EntityID   *string   `gorm:"size:36" json:"entity_id"`
	Details    *string   `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// Activity action verbs
const (
	ActionCreateAsset  = "CREATE_ASSET"
	ActionRestoreAsset = "RESTORE_ASSET"
	ActionCreateUser   = "CREATE_USER"
	ActionLogin        = "LOGIN"
)
