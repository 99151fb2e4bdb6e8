package services

import (
	"time"

	"assetdesk/database"
)

// DashboardStats is the aggregate view backing the dashboard. The six
// counts come from independent queries; rows changing between sub-queries
// can make them mutually inconsistent, which is accepted.
type DashboardStats struct {
	TotalAssets         int64            `json:"total_assets"`
	ArchivedAssets      int64            `json:"archived_assets"`
	ByCondition         map[string]int64 `json:"by_condition"`
	ByCategory          map[string]int64 `json:"by_category"`
	PendingComplaints   int64            `json:"pending_complaints"`
	UpcomingMaintenance int64            `json:"upcoming_maintenance"`
	RecentActivity      int64            `json:"recent_activity"`
}

type groupCount struct {
	Key   string
	Count int64
}

// GetDashboardStats computes the dashboard aggregates from current table
// state. Condition and category breakdowns cover non-archived assets only.
func GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		ByCondition: map[string]int64{},
		ByCategory:  map[string]int64{},
	}

	if err := database.DB.Model(&database.Asset{}).Count(&stats.TotalAssets).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&database.Asset{}).Where("is_archived = ?", true).Count(&stats.ArchivedAssets).Error; err != nil {
		return nil, err
	}

	var byCondition []groupCount
	err := database.DB.Model(&database.Asset{}).
		Where("is_archived = ?", false).
		Select("condition AS key, COUNT(*) AS count").
		Group("condition").
		Scan(&byCondition).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byCondition {
		stats.ByCondition[row.Key] = row.Count
	}

	var byCategory []groupCount
	err = database.DB.Model(&database.Asset{}).
		Where("is_archived = ?", false).
		Select("category AS key, COUNT(*) AS count").
		Group("category").
		Scan(&byCategory).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byCategory {
		stats.ByCategory[row.Key] = row.Count
	}

	err = database.DB.Model(&database.Complaint{}).
		Where("status <> ?", database.ComplaintResolved).
		Count(&stats.PendingComplaints).Error
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = database.DB.Model(&database.MaintenanceSchedule{}).
		Where("is_completed = ? AND scheduled_date >= ? AND scheduled_date <= ?",
			false, now, now.AddDate(0, 0, 30)).
		Count(&stats.UpcomingMaintenance).Error
	if err != nil {
		return nil, err
	}

	err = database.DB.Model(&database.UserActivityLog{}).
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Count(&stats.RecentActivity).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// AssetFilters narrows ListAssets results. Nil fields are ignored; an owner
// value of "" or the literal "null" selects assets with no stored owner.
type AssetFilters struct {
	Search     *string
	Category   *string
	Condition  *string
	Owner      *string
	IsArchived *bool
}

// ListAssets returns assets matching all provided filters, newest first.
func ListAssets(filters AssetFilters) ([]database.Asset, error) {
	query := database.DB.Model(&database.Asset{})

	if filters.Search != nil && *filters.Search != "" {
		pattern := "%" + *filters.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Condition != nil {
		query = query.Where("condition = ?", *filters.Condition)
	}
	if filters.Owner != nil {
		if *filters.Owner == "" || *filters.Owner == "null" {
			query = query.Where("owner IS NULL")
		} else {
			query = query.Where("owner = ?", *filters.Owner)
		}
	}
	if filters.IsArchived != nil {
		query = query.Where("is_archived = ?", *filters.IsArchived)
	}

	var assets []database.Asset
	if err := query.Order("created_at DESC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}
