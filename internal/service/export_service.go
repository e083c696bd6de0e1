package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/kalender-api/internal/calendar"
	"github.com/noah-isme/kalender-api/internal/dto"
	"github.com/noah-isme/kalender-api/internal/models"
	appErrors "github.com/noah-isme/kalender-api/pkg/errors"
	"github.com/noah-isme/kalender-api/pkg/export"
)

type daySource interface {
	SynthesizeDays(ctx context.Context, req dto.KalenderRequest) ([]Day, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

var exportHeaders = []string{"Tanggal", "Hari", "Hijriyah", "Jawa", "China", "Libur"}

// ExportService renders a synthesized month as CSV or PDF.
type ExportService struct {
	days   daySource
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(days daySource, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{days: days, csv: csv, pdf: pdf, logger: logger}
}

// Export synthesizes the month and encodes it in the requested format.
func (s *ExportService) Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportFile, error) {
	if req.Format != models.ExportFormatCSV && req.Format != models.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("format must be csv or pdf, got %q", req.Format))
	}
	days, err := s.days.SynthesizeDays(ctx, req.KalenderRequest)
	if err != nil {
		return nil, err
	}

	lang := req.Lang
	if lang == "" {
		lang = calendar.DefaultLanguage
	}
	dataset := BuildDataset(lang, days)
	base := fmt.Sprintf("kalender-%04d-%02d", req.Year, req.Month)

	var (
		content     []byte
		contentType string
	)
	switch req.Format {
	case models.ExportFormatCSV:
		content, err = s.csv.Render(dataset)
		contentType = "text/csv; charset=utf-8"
	case models.ExportFormatPDF:
		title := fmt.Sprintf("Kalender %s %d", calendar.MonthName(lang, time.Month(req.Month)), req.Year)
		content, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	}
	if err != nil {
		s.logger.Error("month export failed", zap.String("file", base), zap.String("format", string(req.Format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &dto.ExportFile{
		Filename:    base + "." + string(req.Format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// BuildDataset flattens days into export rows. Lunar dates are numeric, with
// an "L" suffix on leap months.
func BuildDataset(lang string, days []Day) export.Dataset {
	rows := make([]map[string]string, 0, len(days))
	for _, day := range days {
		rec := day.Record
		row := map[string]string{
			"Tanggal": day.Date.String(),
			"Hari":    rec.Masehi.Hari,
			"Jawa":    fmt.Sprintf("%d %s %d (%s)", rec.Jawa.Tanggal, rec.Jawa.Bulan, rec.Jawa.Tahun, rec.Jawa.Pasaran),
		}
		if h := day.Hijri.Ptr(); h != nil {
			row["Hijriyah"] = fmt.Sprintf("%d %s %d", h.Day, calendar.HijriMonthName(lang, h.Month), h.Year)
		}
		if l := day.Lunar.Ptr(); l != nil {
			leap := ""
			if l.Leap {
				leap = "L"
			}
			row["China"] = fmt.Sprintf("%d/%d%s/%d", l.Day, l.Month, leap, l.Year)
		}
		if rec.Libur != nil {
			row["Libur"] = *rec.Libur
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}
