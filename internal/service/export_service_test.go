package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/kalender-api/internal/calendar"
	"github.com/noah-isme/kalender-api/internal/converter"
	"github.com/noah-isme/kalender-api/internal/dto"
	"github.com/noah-isme/kalender-api/internal/models"
	appErrors "github.com/noah-isme/kalender-api/pkg/errors"
	"github.com/noah-isme/kalender-api/pkg/export"
)

type failingCSV struct{}

func (failingCSV) Render(export.Dataset) ([]byte, error) {
	return nil, errors.New("disk full")
}

func newExportServiceForTest(t *testing.T) *ExportService {
	t.Helper()
	lunar := converter.LunarFunc(func(d calendar.Date) converter.Result[calendar.LunarDate] {
		return converter.Success(calendar.LunarDate{Year: 2024, Month: 12, Day: d.Day, Leap: d.Day == 2})
	})
	days := newKalenderServiceForTest(hijriMonthOf(7), lunar, nil)
	return NewExportService(days, export.NewCSVExporter(), export.NewPDFExporter(), zap.NewNop())
}

func exportRequest(format models.ExportFormat) dto.ExportRequest {
	return dto.ExportRequest{
		KalenderRequest: dto.KalenderRequest{Year: 2025, Month: 1, Lang: calendar.LangIndonesian},
		Format:          format,
	}
}

func TestExportServiceCSV(t *testing.T) {
	svc := newExportServiceForTest(t)

	file, err := svc.Export(context.Background(), exportRequest(models.ExportFormatCSV))
	require.NoError(t, err)
	assert.Equal(t, "kalender-2025-01.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Content)), "\n")
	require.Len(t, lines, 32)
	assert.Equal(t, "Tanggal,Hari,Hijriyah,Jawa,China,Libur", lines[0])
	assert.Equal(t, "2025-01-01,Rabu,1 Rajab 1446,8 Mulud 1958 (Pon),1/12/2024,Tahun Baru Masehi", lines[1])
	assert.Equal(t, "2025-01-02,Kamis,2 Rajab 1446,9 Mulud 1958 (Wage),2/12L/2024,", lines[2])
}

func TestExportServicePDF(t *testing.T) {
	svc := newExportServiceForTest(t)

	file, err := svc.Export(context.Background(), exportRequest(models.ExportFormatPDF))
	require.NoError(t, err)
	assert.Equal(t, "kalender-2025-01.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := newExportServiceForTest(t)

	_, err := svc.Export(context.Background(), exportRequest("xlsx"))
	require.True(t, appErrors.Is(err, appErrors.ErrUnsupportedFormat))
}

func TestExportServicePropagatesRangeErrors(t *testing.T) {
	svc := newExportServiceForTest(t)
	req := exportRequest(models.ExportFormatCSV)
	req.Month = 13

	_, err := svc.Export(context.Background(), req)
	require.True(t, appErrors.Is(err, appErrors.ErrInvalidRange))
}

func TestExportServiceRenderFailure(t *testing.T) {
	days := newKalenderServiceForTest(hijriMonthOf(7), noLunar(), nil)
	svc := NewExportService(days, failingCSV{}, export.NewPDFExporter(), nil)

	_, err := svc.Export(context.Background(), exportRequest(models.ExportFormatCSV))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}

func TestBuildDatasetLeavesFailedCalendarsEmpty(t *testing.T) {
	svc := newKalenderServiceForTest(hijriMonthOf(7), noLunar(), nil)
	days, err := svc.SynthesizeDays(context.Background(), dto.KalenderRequest{Year: 2025, Month: 1})
	require.NoError(t, err)

	data := BuildDataset(calendar.LangEnglish, days)
	require.Len(t, data.Rows, 31)
	assert.Equal(t, "", data.Rows[0]["China"])
	assert.Equal(t, "1 Rajab 1446", data.Rows[0]["Hijriyah"])
}
