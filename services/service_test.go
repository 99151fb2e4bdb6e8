package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assetdesk/config"
	"assetdesk/database"
	"assetdesk/utils"
)

// setupTestDB points database.DB at a fresh in-memory SQLite store.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&database.User{},
		&database.Asset{},
		&database.Complaint{},
		&database.MaintenanceSchedule{},
		&database.AssetHistory{},
		&database.UserActivityLog{},
	))

	database.DB = db
	config.AppConfig = config.Config{
		ReportDir:     t.TempDir(),
		ReportBaseURL: "/reports",
		JWTSecret:     "test-secret",
		MailFrom:      "noreply@test.local",
	}
}

func createTestUser(t *testing.T, email string, active bool) database.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := database.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         database.RoleEmployee,
		FullName:     "Test User",
		IsActive:     active,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestAsset(t *testing.T, name, category, condition string) *database.Asset {
	t.Helper()

	asset, err := CreateAsset(CreateAssetInput{
		Name:      name,
		Category:  category,
		Condition: condition,
	})
	require.NoError(t, err)
	return asset
}

func countHistory(t *testing.T, assetID string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.DB.Model(&database.AssetHistory{}).
		Where("asset_id = ?", assetID).Count(&count).Error)
	return count
}

func countActivity(t *testing.T, action string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.DB.Model(&database.UserActivityLog{}).
		Where("action = ?", action).Count(&count).Error)
	return count
}
