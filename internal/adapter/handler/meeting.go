package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-insights/internal/usecase/calendar"
	"github.com/johnquangdev/meeting-insights/internal/usecase/export"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meetings"
)

// Meeting handles meeting analysis endpoints
type Meeting struct {
	svc      meetings.Service
	exporter *export.Exporter
	storage  *storage.MinIOClient
	logger   *zap.Logger
}

// NewMeetingHandler creates a new meeting handler. Storage may be nil when
// object storage is disabled; the upload endpoint then rejects requests.
func NewMeetingHandler(svc meetings.Service, exporter *export.Exporter, store *storage.MinIOClient, logger *zap.Logger) *Meeting {
	return &Meeting{
		svc:      svc,
		exporter: exporter,
		storage:  store,
		logger:   logger,
	}
}

// Analyze runs the full analytics pipeline over a posted meeting record
// POST /v1/meetings/analyze
func (h *Meeting) Analyze(c echo.Context) error {
	var req meeting.AnalyzeMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidRecord(err))
	}

	entry, err := h.svc.Analyze(c.Request().Context(), req.ToEntity())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(entry))
}

// Get returns one stored analysis
// GET /v1/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting id"))
	}

	entry, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(entry))
}

// List returns stored analyses newest first
// GET /v1/meetings
func (h *Meeting) List(c echo.Context) error {
	page := getQueryParamAsInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := getQueryParamAsInt(c, "page_size", 20)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	entries, total, err := h.svc.List(c.Request().Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(entries, total, page, pageSize))
}

// Export renders one stored analysis as a downloadable document
// GET /v1/meetings/:id/export?format=json|csv|text
func (h *Meeting) Export(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting id"))
	}

	format := c.QueryParam("format")
	if format == "" {
		format = export.FormatJSON
	}

	entry, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.exporter.Render(entry, format)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	return c.Blob(http.StatusOK, out.ContentType, out.Data)
}

// EventsICS serves suggested events as an importable calendar file
// GET /v1/meetings/:id/events.ics
func (h *Meeting) EventsICS(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting id"))
	}

	entry, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	ics := calendar.RenderICS(entry.EventCandidates.Data(), time.Now)

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="suggested_events.ics"`)
	return c.Blob(http.StatusOK, "text/calendar", []byte(ics))
}

// Upload stores a raw meeting recording in object storage
// POST /v1/meetings/upload
func (h *Meeting) Upload(c echo.Context) error {
	if h.storage == nil {
		return HandleError(h.logger, c,
			apperrors.ErrStorageFailed("upload", stdErrors.New("object storage is not enabled")))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("recording file is required"))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("open", err))
	}
	defer src.Close()

	objectName := fmt.Sprintf("recordings/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx := c.Request().Context()
	if err := h.storage.UploadRecording(ctx, objectName, src, contentType); err != nil {
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("upload", err))
	}

	url, err := h.storage.GetFileURL(ctx, objectName, 24*time.Hour)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrStorageFailed("presign", err))
	}

	return HandleSuccess(h.logger, c, map[string]string{
		"object_name": objectName,
		"url":         url,
	})
}
