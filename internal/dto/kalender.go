package dto

import "github.com/noah-isme/kalender-api/internal/models"

// KalenderRequest identifies the month to synthesize.
type KalenderRequest struct {
	Year  int `validate:"min=1,max=9999"`
	Month int `validate:"min=1,max=12"`
	Lang  string
}

// KalenderResponse is the body of GET /kalender/{year}/{month}.
type KalenderResponse struct {
	Kalender []models.DayRecord `json:"kalender"`
}

// ExportRequest describes a month export.
type ExportRequest struct {
	KalenderRequest
	Format models.ExportFormat
}

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
