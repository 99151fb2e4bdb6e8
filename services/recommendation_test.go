package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdesk/database"
)

type stubRecommender struct {
	recs []string
	err  error
}

func (r stubRecommender) Recommend(asset database.Asset, openComplaints int64) ([]string, error) {
	return r.recs, r.err
}

func TestGetRecommendations(t *testing.T) {
	setupTestDB(t)

	t.Run("missing asset", func(t *testing.T) {
		_, err := GetRecommendations("no-such-id")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("collaborator output is passed through", func(t *testing.T) {
		asset := createTestAsset(t, "Laptop", "LAPTOP", database.ConditionGood)

		want := []string{"a", "b", "c"}
		ActiveRecommender = stubRecommender{recs: want}
		t.Cleanup(func() { ActiveRecommender = nil })

		recs, err := GetRecommendations(asset.ID)
		require.NoError(t, err)
		assert.Equal(t, want, recs)
	})

	t.Run("collaborator failure substitutes the rule-based fallback", func(t *testing.T) {
		asset := createTestAsset(t, "Monitor", "MONITOR", database.ConditionDamaged)

		ActiveRecommender = stubRecommender{err: errors.New("model offline")}
		t.Cleanup(func() { ActiveRecommender = nil })

		recs, err := GetRecommendations(asset.ID)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Contains(t, recs[0], "DAMAGED")
	})

	t.Run("unparsable collaborator output falls back too", func(t *testing.T) {
		asset := createTestAsset(t, "Router", "ROUTER", database.ConditionGood)

		ActiveRecommender = stubRecommender{recs: []string{"only one"}}
		t.Cleanup(func() { ActiveRecommender = nil })

		recs, err := GetRecommendations(asset.ID)
		require.NoError(t, err)
		assert.Len(t, recs, 3)
	})
}

func TestFallbackRecommendations(t *testing.T) {
	base := database.Asset{Condition: database.ConditionGood, CreatedAt: time.Now().UTC()}

	t.Run("always three suggestions", func(t *testing.T) {
		for _, condition := range database.AssetConditions {
			asset := base
			asset.Condition = condition
			assert.Len(t, fallbackRecommendations(asset, 0), 3)
		}
	})

	t.Run("open complaints drive the second suggestion", func(t *testing.T) {
		recs := fallbackRecommendations(base, 4)
		assert.Contains(t, recs[1], "4 open complaints")

		recs = fallbackRecommendations(base, 1)
		assert.Contains(t, recs[1], "single open complaint")

		recs = fallbackRecommendations(base, 0)
		assert.Contains(t, recs[1], "No open complaints")
	})

	t.Run("age drives the third suggestion", func(t *testing.T) {
		old := base
		old.CreatedAt = time.Now().UTC().AddDate(-4, 0, 0)
		recs := fallbackRecommendations(old, 0)
		assert.Contains(t, recs[2], "three years")
	})
}
