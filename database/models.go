package database

import (
	"time"
)

// User represents a user in the system
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null" json:"role"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Asset represents a tracked physical item (monitor, chair, router, etc.)
type Asset struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Condition   string    `gorm:"size:20;not null" json:"condition"`
	Owner       *string   `gorm:"size:255" json:"owner"`
	PhotoURL    *string   `gorm:"size:512" json:"photo_url"`
	ScanCode    string    `gorm:"uniqueIndex;size:50;not null" json:"scan_code"`
	IsArchived  bool      `gorm:"default:false" json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Complaints           []Complaint           `gorm:"foreignKey:AssetID" json:"complaints,omitempty"`
	Histories            []AssetHistory        `gorm:"foreignKey:AssetID" json:"history,omitempty"`
	MaintenanceSchedules []MaintenanceSchedule `gorm:"foreignKey:AssetID" json:"maintenance_schedules,omitempty"`
}

// Complaint represents an issue reported against an asset
type Complaint struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	AssetID         string    `gorm:"size:36;index;not null" json:"asset_id"`
	ComplainantName string    `gorm:"size:255;not null" json:"complainant_name"`
	Status          string    `gorm:"size:20;not null" json:"status"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MaintenanceSchedule represents planned maintenance work for an asset
type MaintenanceSchedule struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	AssetID       string    `gorm:"size:36;index;not null" json:"asset_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   *string   `gorm:"type:text" json:"description"`
	ScheduledDate time.Time `gorm:"not null" json:"scheduled_date"`
	IsCompleted   bool      `gorm:"default:false" json:"is_completed"`
	CreatedBy     string    `gorm:"size:36;not null" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Constants for closed value sets
const (
	ConditionNew         = "NEW"
	ConditionGood        = "GOOD"
	ConditionUnderRepair = "UNDER_REPAIR"
	ConditionDamaged     = "DAMAGED"

	ComplaintNeedsRepair = "NEEDS_REPAIR"
	ComplaintUrgent      = "URGENT"
	ComplaintUnderRepair = "UNDER_REPAIR"
	ComplaintResolved    = "RESOLVED"

	// User roles
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// AssetCategories is the closed set of category tags
var AssetCategories = []string{
	"LAPTOP", "DESKTOP", "MONITOR", "PRINTER", "ROUTER",
	"SERVER", "PHONE", "TABLET", "FURNITURE", "OTHER",
}

// AssetConditions is the closed set of condition values
var AssetConditions = []string{
	ConditionNew, ConditionGood, ConditionUnderRepair, ConditionDamaged,
}

// ComplaintStatuses is the closed set of complaint status values
var ComplaintStatuses = []string{
	ComplaintNeedsRepair, ComplaintUrgent, ComplaintUnderRepair, ComplaintResolved,
}

// IsValidCategory reports whether c is one of the known category tags
func IsValidCategory(c string) bool {
	for _, v := range AssetCategories {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidCondition reports whether c is one of the known condition values
func IsValidCondition(c string) bool {
	for _, v := range AssetConditions {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidComplaintStatus reports whether s is one of the known complaint statuses
func IsValidComplaintStatus(s string) bool {
	for _, v := range ComplaintStatuses {
		if v == s {
			return true
		}
	}
	return false
}
