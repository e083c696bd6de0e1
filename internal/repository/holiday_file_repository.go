package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/kalender-api/internal/models"
)

type holidayFile struct {
	Holidays []holidayFileEntry `yaml:"holidays"`
}

type holidayFileEntry struct {
	Date string            `yaml:"date"`
	Name map[string]string `yaml:"name"`
}

// HolidayFileRepository reads fixed-date holidays from a YAML document:
//
//	holidays:
//	  - date: 2025-01-01
//	    name:
//	      id: Tahun Baru Masehi
//	      en: New Year (Gregorian)
type HolidayFileRepository struct {
	path string
}

// NewHolidayFileRepository constructs a file-backed holiday repository.
func NewHolidayFileRepository(path string) *HolidayFileRepository {
	return &HolidayFileRepository{path: path}
}

// ListFixed parses the file into one row per (date, language).
func (r *HolidayFileRepository) ListFixed(ctx context.Context) ([]models.FixedHolidayRow, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read holiday file %s: %w", r.path, err)
	}
	return ParseHolidayYAML(raw)
}

// ParseHolidayYAML decodes the YAML holiday document.
func ParseHolidayYAML(raw []byte) ([]models.FixedHolidayRow, error) {
	var doc holidayFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode holiday yaml: %w", err)
	}

	var rows []models.FixedHolidayRow
	for i, entry := range doc.Holidays {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %d: invalid date %q", i, entry.Date)
		}
		if len(entry.Name) == 0 {
			return nil, fmt.Errorf("holiday %d (%s): no name", i, entry.Date)
		}
		langs := make([]string, 0, len(entry.Name))
		for lang := range entry.Name {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			rows = append(rows, models.FixedHolidayRow{HolidayDate: date, Lang: lang, Name: entry.Name[lang]})
		}
	}
	return rows, nil
}
