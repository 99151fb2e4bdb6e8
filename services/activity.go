package services

import (
	"time"

	"github.com/google/uuid"

	"assetdesk/database"
	"assetdesk/utils"
)

// SystemUserID is the fixed well-known id of the non-human actor used to
// attribute automated actions (e.g. RESTORE_ASSET) in the activity log.
const SystemUserID = "00000000-0000-0000-0000-000000000001"

// LogActivity appends one user-action record. Append-only, no update path.
func LogActivity(userID, action, entityType string, entityID, details *string) error {
	row := database.UserActivityLog{
		ID:         uuid.NewString(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	return database.DB.Create(&row).Error
}

// EnsureSystemUser lazily materializes the system actor user row. Safe to
// call repeatedly; the row is created only on first use.
func EnsureSystemUser() error {
	var existing database.User
	err := database.DB.Where("id = ?", SystemUserID).First(&existing).Error
	if err == nil {
		return nil
	}

	hash, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return err
	}

	system := database.User{
		ID:           SystemUserID,
		Email:        "system@assetdesk.local",
		PasswordHash: hash,
		Role:         database.RoleAdmin,
		FullName:     "System",
		IsActive:     true,
	}
	if err := database.DB.Create(&system).Error; err != nil {
		// Lost a race with a concurrent ensure; the row exists either way.
		if IsUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// ActivityLogFilters narrows GetActivityLogs results. Nil fields are ignored.
type ActivityLogFilters struct {
	UserID    *string
	StartDate *time.Time
	EndDate   *time.Time
	Action    *string
}

// GetActivityLogs returns activity records, newest first.
func GetActivityLogs(filters ActivityLogFilters) ([]database.UserActivityLog, error) {
	query := database.DB.Model(&database.UserActivityLog{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.StartDate != nil {
		query = query.Where("created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("created_at <= ?", *filters.EndDate)
	}
	if filters.Action != nil {
		query = query.Where("action = ?", *filters.Action)
	}

	var logs []database.UserActivityLog
	if err := query.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
