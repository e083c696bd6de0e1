package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Tanggal", "Libur"},
		Rows: []map[string]string{
			{"Tanggal": "1", "Libur": "Tahun Baru Masehi"},
			{"Tanggal": "2"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	require.Equal(t, "Tanggal,Libur\n1,Tahun Baru Masehi\n2,\n", string(out))
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Kalender Januari 2025")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	require.Error(t, err)
}

func TestColumnWidthsSumToTotal(t *testing.T) {
	widths := columnWidths(sampleDataset(), 100)
	require.Len(t, widths, 2)
	require.InDelta(t, 100, widths[0]+widths[1], 0.0001)
	require.Greater(t, widths[1], widths[0])
}

func TestCSVRenderSemicolon(t *testing.T) {
	out, err := NewCSVExporter().WithComma(';').Render(sampleDataset())
	require.NoError(t, err)
	require.Equal(t, "Tanggal;Libur\n1;Tahun Baru Masehi\n2;\n", string(out))
}
