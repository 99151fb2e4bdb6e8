package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdesk/config"
	"assetdesk/database"
)

type stubRenderer struct {
	err    error
	called bool
	format string
	count  int
}

func (r *stubRenderer) Render(format string, assets []database.Asset, filename string) error {
	r.called = true
	r.format = format
	r.count = len(assets)
	return r.err
}

func TestGenerateReport(t *testing.T) {
	setupTestDB(t)

	createTestAsset(t, "Laptop R1", "LAPTOP", database.ConditionGood)
	owned := "u1"
	_, err := CreateAsset(CreateAssetInput{
		Name: "Monitor R2", Category: "MONITOR", Condition: database.ConditionDamaged, Owner: &owned,
	})
	require.NoError(t, err)

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := GenerateReport(ReportFilters{Format: "DOCX"})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("renderer receives the filtered rows", func(t *testing.T) {
		renderer := &stubRenderer{}
		ActiveRenderer = renderer
		t.Cleanup(func() { ActiveRenderer = nil })

		category := "LAPTOP"
		result, err := GenerateReport(ReportFilters{Category: &category, Format: ReportFormatPDF})
		require.NoError(t, err)

		assert.True(t, renderer.called)
		assert.Equal(t, ReportFormatPDF, renderer.format)
		assert.Equal(t, 1, renderer.count)
		assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
		assert.Equal(t, config.AppConfig.ReportBaseURL+"/"+result.Filename, result.URL)
	})

	t.Run("renderer failure falls back to a local CSV", func(t *testing.T) {
		ActiveRenderer = &stubRenderer{err: errors.New("render backend down")}
		t.Cleanup(func() { ActiveRenderer = nil })

		result, err := GenerateReport(ReportFilters{Format: ReportFormatXLSX})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

		data, err := os.ReadFile(filepath.Join(config.AppConfig.ReportDir, result.Filename))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Laptop R1")
		assert.Contains(t, string(data), "Monitor R2")
	})

	t.Run("no renderer configured writes CSV directly", func(t *testing.T) {
		ActiveRenderer = nil

		result, err := GenerateReport(ReportFilters{Owner: &owned, Format: ReportFormatPDF})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(config.AppConfig.ReportDir, result.Filename))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Monitor R2")
		assert.NotContains(t, string(data), "Laptop R1")
	})
}
