package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdesk/database"
)

func fileComplaint(t *testing.T, assetID, status string) *database.Complaint {
	t.Helper()

	complaint, err := CreateComplaint(CreateComplaintInput{
		AssetID:         assetID,
		ComplainantName: "Reporter",
		Status:          status,
		Description:     "something is off",
	})
	require.NoError(t, err)
	return complaint
}

func resolve(t *testing.T, complaintID string) *database.Complaint {
	t.Helper()

	resolved := database.ComplaintResolved
	complaint, err := UpdateComplaint(complaintID, UpdateComplaintInput{Status: &resolved})
	require.NoError(t, err)
	return complaint
}

func assetCondition(t *testing.T, assetID string) string {
	t.Helper()

	var asset database.Asset
	require.NoError(t, database.DB.Where("id = ?", assetID).First(&asset).Error)
	return asset.Condition
}

func TestCreateComplaint(t *testing.T) {
	setupTestDB(t)

	t.Run("requires an existing asset", func(t *testing.T) {
		_, err := CreateComplaint(CreateComplaintInput{
			AssetID:         "no-such-asset",
			ComplainantName: "Ana",
			Status:          database.ComplaintUrgent,
			Description:     "d",
		})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		asset := createTestAsset(t, "Printer", "PRINTER", database.ConditionGood)
		_, err := CreateComplaint(CreateComplaintInput{
			AssetID:         asset.ID,
			ComplainantName: "Ana",
			Status:          "ON_FIRE",
			Description:     "d",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("stores the given status without coercion", func(t *testing.T) {
		asset := createTestAsset(t, "Laptop", "LAPTOP", database.ConditionGood)
		complaint := fileComplaint(t, asset.ID, database.ComplaintUrgent)
		assert.Equal(t, database.ComplaintUrgent, complaint.Status)
	})
}

func TestUpdateComplaint(t *testing.T) {
	setupTestDB(t)

	t.Run("missing complaint", func(t *testing.T) {
		status := database.ComplaintResolved
		_, err := UpdateComplaint("no-such-id", UpdateComplaintInput{Status: &status})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("status change writes a complaint_status ledger row", func(t *testing.T) {
		asset := createTestAsset(t, "Router", "ROUTER", database.ConditionGood)
		complaint := fileComplaint(t, asset.ID, database.ComplaintNeedsRepair)

		status := database.ComplaintUnderRepair
		_, err := UpdateComplaint(complaint.ID, UpdateComplaintInput{Status: &status})
		require.NoError(t, err)

		history, err := GetAssetHistory(asset.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, database.FieldComplaintStatus, history[0].FieldName)
		require.NotNil(t, history[0].OldValue)
		require.NotNil(t, history[0].NewValue)
		assert.Equal(t, database.ComplaintNeedsRepair, *history[0].OldValue)
		assert.Equal(t, database.ComplaintUnderRepair, *history[0].NewValue)
		assert.Nil(t, history[0].ChangedBy)
	})

	t.Run("same status is not a transition", func(t *testing.T) {
		asset := createTestAsset(t, "Phone", "PHONE", database.ConditionGood)
		complaint := fileComplaint(t, asset.ID, database.ComplaintUrgent)

		status := database.ComplaintUrgent
		_, err := UpdateComplaint(complaint.ID, UpdateComplaintInput{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(0), countHistory(t, asset.ID))
	})

	t.Run("rejects explicit empty required fields", func(t *testing.T) {
		asset := createTestAsset(t, "Monitor", "MONITOR", database.ConditionGood)
		complaint := fileComplaint(t, asset.ID, database.ComplaintNeedsRepair)

		empty := ""
		_, err := UpdateComplaint(complaint.ID, UpdateComplaintInput{ComplainantName: &empty})
		require.ErrorIs(t, err, ErrValidation)

		_, err = UpdateComplaint(complaint.ID, UpdateComplaintInput{Description: &empty})
		require.ErrorIs(t, err, ErrValidation)

		var stored database.Complaint
		require.NoError(t, database.DB.Where("id = ?", complaint.ID).First(&stored).Error)
		assert.Equal(t, "Reporter", stored.ComplainantName)
		assert.Equal(t, "something is off", stored.Description)
	})

	t.Run("non-status fields leave the ledger alone", func(t *testing.T) {
		asset := createTestAsset(t, "Tablet", "TABLET", database.ConditionGood)
		complaint := fileComplaint(t, asset.ID, database.ComplaintNeedsRepair)

		desc := "more detail"
		updated, err := UpdateComplaint(complaint.ID, UpdateComplaintInput{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, desc, updated.Description)
		assert.Equal(t, int64(0), countHistory(t, asset.ID))
	})
}

func TestComplaintAutoHeal(t *testing.T) {
	setupTestDB(t)

	t.Run("last resolved complaint heals an UNDER_REPAIR asset", func(t *testing.T) {
		asset := createTestAsset(t, "Server A", "SERVER", database.ConditionUnderRepair)
		complaint := fileComplaint(t, asset.ID, database.ComplaintUnderRepair)

		resolve(t, complaint.ID)

		assert.Equal(t, database.ConditionGood, assetCondition(t, asset.ID))

		history, err := GetAssetHistory(asset.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)

		fields := map[string]bool{}
		for _, row := range history {
			fields[row.FieldName] = true
		}
		assert.True(t, fields[database.FieldComplaintStatus])
		assert.True(t, fields["condition"])
	})

	t.Run("no heal while another complaint is open", func(t *testing.T) {
		asset := createTestAsset(t, "Server B", "SERVER", database.ConditionUnderRepair)
		first := fileComplaint(t, asset.ID, database.ComplaintUnderRepair)
		fileComplaint(t, asset.ID, database.ComplaintUrgent)

		resolve(t, first.ID)

		assert.Equal(t, database.ConditionUnderRepair, assetCondition(t, asset.ID))
		assert.Equal(t, int64(1), countHistory(t, asset.ID))
	})

	t.Run("no heal when asset is not UNDER_REPAIR", func(t *testing.T) {
		asset := createTestAsset(t, "Server C", "SERVER", database.ConditionDamaged)
		complaint := fileComplaint(t, asset.ID, database.ComplaintNeedsRepair)

		resolve(t, complaint.ID)

		assert.Equal(t, database.ConditionDamaged, assetCondition(t, asset.ID))

		history, err := GetAssetHistory(asset.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, database.FieldComplaintStatus, history[0].FieldName)
	})

	t.Run("resolved siblings do not block the heal", func(t *testing.T) {
		asset := createTestAsset(t, "Server D", "SERVER", database.ConditionUnderRepair)
		first := fileComplaint(t, asset.ID, database.ComplaintNeedsRepair)
		second := fileComplaint(t, asset.ID, database.ComplaintUrgent)

		resolve(t, first.ID)
		assert.Equal(t, database.ConditionUnderRepair, assetCondition(t, asset.ID))

		resolve(t, second.ID)
		assert.Equal(t, database.ConditionGood, assetCondition(t, asset.ID))
	})
}

func TestGetComplaints(t *testing.T) {
	setupTestDB(t)

	assetA := createTestAsset(t, "Asset A", "LAPTOP", database.ConditionGood)
	assetB := createTestAsset(t, "Asset B", "LAPTOP", database.ConditionGood)
	fileComplaint(t, assetA.ID, database.ComplaintUrgent)
	fileComplaint(t, assetA.ID, database.ComplaintResolved)
	fileComplaint(t, assetB.ID, database.ComplaintUrgent)

	all, err := GetComplaints(ComplaintFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byAsset, err := GetComplaints(ComplaintFilters{AssetID: &assetA.ID})
	require.NoError(t, err)
	assert.Len(t, byAsset, 2)

	urgent := database.ComplaintUrgent
	byBoth, err := GetComplaints(ComplaintFilters{AssetID: &assetA.ID, Status: &urgent})
	require.NoError(t, err)
	assert.Len(t, byBoth, 1)
}
