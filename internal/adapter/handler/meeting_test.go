package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/export"
	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"
)

// stubService is a canned meetings.Service for handler tests
type stubService struct {
	entry *entities.MeetingHistoryEntry
	err   error
}

func (s *stubService) Analyze(_ context.Context, rec *entities.MeetingRecord) (*entities.MeetingHistoryEntry, error) {
	return s.entry, s.err
}

func (s *stubService) GetByID(_ context.Context, id uuid.UUID) (*entities.MeetingHistoryEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entry, nil
}

func (s *stubService) List(_ context.Context, limit, offset int) ([]entities.MeetingHistoryEntry, int64, error) {
	if s.entry == nil {
		return []entities.MeetingHistoryEntry{}, 0, nil
	}
	return []entities.MeetingHistoryEntry{*s.entry}, 1, nil
}

func storedEntry() *entities.MeetingHistoryEntry {
	rec := &entities.MeetingRecord{
		TranscriptText:       "We decided to ship the feature.",
		AudioDurationSeconds: 60,
	}
	report := &entities.AnalyticsReport{
		MeetingMetrics:  entities.MeetingMetrics{WordCount: 6, SpeakerCount: 1},
		ContentAnalysis: entities.ContentAnalysis{SentimentTrend: entities.SentimentNeutral},
		EngagementScore: entities.EngagementScore{OverallScore: 20.4},
	}
	ev := entities.NewEventCandidate("Discussion: Action Items", "generated")
	return entities.NewMeetingHistoryEntry(rec, report, []entities.EventCandidate{ev})
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAnalyze_Success(t *testing.T) {
	h := NewMeetingHandler(&stubService{entry: storedEntry()}, export.NewExporter(), nil, nil)

	body := `{"transcript_text":"We decided to ship the feature.","audio_duration_seconds":60}`
	c, rec := newTestContext(http.MethodPost, "/v1/meetings/analyze", body)

	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data in %v", resp)
	}
	if data["word_count"].(float64) != 6 {
		t.Fatalf("unexpected word count %v", data["word_count"])
	}
}

func TestAnalyze_InvalidPayload(t *testing.T) {
	h := NewMeetingHandler(&stubService{}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodPost, "/v1/meetings/analyze", `{"audio_duration_seconds":-5}`)

	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyze_ServiceError(t *testing.T) {
	h := NewMeetingHandler(&stubService{err: apperrors.ErrInvalidRecord(nil)}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodPost, "/v1/meetings/analyze", `{"transcript_text":"hi"}`)

	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGet_InvalidID(t *testing.T) {
	h := NewMeetingHandler(&stubService{}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/meetings/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGet_NotFound(t *testing.T) {
	id := uuid.New()
	h := NewMeetingHandler(&stubService{err: apperrors.ErrReportNotFound(id.String())}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/meetings/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestList_Success(t *testing.T) {
	h := NewMeetingHandler(&stubService{entry: storedEntry()}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/meetings?page=1&page_size=10", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":1`) {
		t.Fatalf("missing total in %s", rec.Body.String())
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	entry := storedEntry()
	h := NewMeetingHandler(&stubService{entry: entry}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/meetings/"+entry.ID.String()+"/export?format=xml", "")
	c.SetParamNames("id")
	c.SetParamValues(entry.ID.String())

	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestExport_CSV(t *testing.T) {
	entry := storedEntry()
	h := NewMeetingHandler(&stubService{entry: entry}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/meetings/"+entry.ID.String()+"/export?format=csv", "")
	c.SetParamNames("id")
	c.SetParamValues(entry.ID.String())

	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Metric,Value") {
		t.Fatalf("missing csv header in %s", rec.Body.String())
	}
}

func TestEventsICS(t *testing.T) {
	entry := storedEntry()
	h := NewMeetingHandler(&stubService{entry: entry}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/meetings/"+entry.ID.String()+"/events.ics", "")
	c.SetParamNames("id")
	c.SetParamValues(entry.ID.String())

	if err := h.EventsICS(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "BEGIN:VEVENT") {
		t.Fatalf("invalid ics body:\n%s", body)
	}
}

func TestUpload_StorageDisabled(t *testing.T) {
	h := NewMeetingHandler(&stubService{}, export.NewExporter(), nil, nil)

	c, rec := newTestContext(http.MethodPost, "/v1/meetings/upload", "")

	if err := h.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
