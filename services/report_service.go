package services

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"assetdesk/config"
	"assetdesk/database"
)

// Report formats accepted by GenerateReport.
const (
	ReportFormatPDF  = "PDF"
	ReportFormatXLSX = "XLSX"
)

// ReportFilters narrows the asset rows included in a report. Owner here is
// exact-match only.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Condition *string
	Category  *string
	Owner     *string
	Format    string
}

// ReportResult is a content descriptor for a generated report; the bytes
// live behind the URL.
type ReportResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// DocumentRenderer produces the report document itself. The PDF/XLSX
// implementations live outside this service.
type DocumentRenderer interface {
	Render(format string, assets []database.Asset, filename string) error
}

// ActiveRenderer is the configured document collaborator. When nil or
// failing, GenerateReport falls back to a locally written CSV.
var ActiveRenderer DocumentRenderer

// GenerateReport selects the matching assets and hands them to the document
// collaborator. A collaborator failure degrades to the CSV fallback rather
// than erroring out.
func GenerateReport(filters ReportFilters) (*ReportResult, error) {
	if filters.Format != ReportFormatPDF && filters.Format != ReportFormatXLSX {
		return nil, fmt.Errorf("unknown report format %q: %w", filters.Format, ErrValidation)
	}

	query := database.DB.Model(&database.Asset{})
	if filters.StartDate != nil {
		query = query.Where("created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("created_at <= ?", *filters.EndDate)
	}
	if filters.Condition != nil {
		query = query.Where("condition = ?", *filters.Condition)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Owner != nil {
		query = query.Where("owner = ?", *filters.Owner)
	}

	var assets []database.Asset
	if err := query.Order("created_at DESC").Find(&assets).Error; err != nil {
		return nil, err
	}

	stamp := time.Now().UTC().Format("20060102-150405")

	if ActiveRenderer != nil {
		filename := fmt.Sprintf("asset-report-%s.%s", stamp, extensionFor(filters.Format))
		if err := ActiveRenderer.Render(filters.Format, assets, filename); err == nil {
			return &ReportResult{
				URL:      config.AppConfig.ReportBaseURL + "/" + filename,
				Filename: filename,
			}, nil
		} else {
			log.Printf("Warning: report renderer failed, falling back to CSV: %v", err)
		}
	}

	filename := fmt.Sprintf("asset-report-%s.csv", stamp)
	if err := writeCSVReport(assets, filename); err != nil {
		return nil, err
	}
	return &ReportResult{
		URL:      config.AppConfig.ReportBaseURL + "/" + filename,
		Filename: filename,
	}, nil
}

func extensionFor(format string) string {
	if format == ReportFormatXLSX {
		return "xlsx"
	}
	return "pdf"
}

func writeCSVReport(assets []database.Asset, filename string) error {
	if err := os.MkdirAll(config.AppConfig.ReportDir, os.ModePerm); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(config.AppConfig.ReportDir, filename))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "name", "category", "condition", "owner", "scan_code", "archived", "created_at"}); err != nil {
		return err
	}
	for _, asset := range assets {
		owner := ""
		if asset.Owner != nil {
			owner = *asset.Owner
		}
		record := []string{
			asset.ID,
			asset.Name,
			asset.Category,
			asset.Condition,
			owner,
			asset.ScanCode,
			fmt.Sprintf("%t", asset.IsArchived),
			asset.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
