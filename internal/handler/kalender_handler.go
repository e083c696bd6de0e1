package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kalender-api/internal/dto"
	"github.com/noah-isme/kalender-api/internal/models"
	appErrors "github.com/noah-isme/kalender-api/pkg/errors"
	"github.com/noah-isme/kalender-api/pkg/response"
)

// IndexMessage is the plain-text banner served at the root path.
const IndexMessage = "API Kalender Nasional, Islam, China, Jawa — Support semua tahun!"

type kalenderService interface {
	SynthesizeMonth(ctx context.Context, req dto.KalenderRequest) ([]models.DayRecord, error)
}

// ExportService renders a month as a downloadable file.
type ExportService interface {
	Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportFile, error)
}

// KalenderHandler serves the calendar endpoints.
type KalenderHandler struct {
	service   kalenderService
	exporter  ExportService
	languages *LanguageNegotiator
}

// NewKalenderHandler constructs the handler. exporter may be nil when exports are disabled.
func NewKalenderHandler(service kalenderService, exporter ExportService, languages *LanguageNegotiator) *KalenderHandler {
	return &KalenderHandler{service: service, exporter: exporter, languages: languages}
}

// Index godoc
// @Summary Service banner
// @Tags Kalender
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *KalenderHandler) Index(c *gin.Context) {
	response.Text(c, http.StatusOK, IndexMessage)
}

// Month godoc
// @Summary Multi-calendar view of one Gregorian month
// @Tags Kalender
// @Produce json
// @Param year path int true "Gregorian year (1-9999)"
// @Param month path int true "Month (1-12)"
// @Param lang query string false "Language code (id, en)"
// @Success 200 {object} dto.KalenderResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /kalender/{year}/{month} [get]
func (h *KalenderHandler) Month(c *gin.Context) {
	req, err := h.bindRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	records, err := h.service.SynthesizeMonth(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.KalenderResponse{Kalender: records})
}

// Export godoc
// @Summary Download one month as CSV or PDF
// @Tags Kalender
// @Produce octet-stream
// @Param year path int true "Gregorian year (1-9999)"
// @Param month path int true "Month (1-12)"
// @Param format query string false "csv (default) or pdf"
// @Param lang query string false "Language code (id, en)"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /kalender/{year}/{month}/export [get]
func (h *KalenderHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export is disabled"))
		return
	}
	req, err := h.bindRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := models.ExportFormat(strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", string(models.ExportFormatCSV)))))
	file, err := h.exporter.Export(c.Request.Context(), dto.ExportRequest{KalenderRequest: req, Format: format})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Content)
}

func (h *KalenderHandler) bindRequest(c *gin.Context) (dto.KalenderRequest, error) {
	if h.service == nil {
		return dto.KalenderRequest{}, appErrors.ErrInternal
	}
	year, month, err := parseYearMonth(c)
	if err != nil {
		return dto.KalenderRequest{}, err
	}
	req := dto.KalenderRequest{Year: year, Month: month}
	if h.languages != nil {
		req.Lang = h.languages.Negotiate(c)
	}
	return req, nil
}
