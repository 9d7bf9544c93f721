package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Supported export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatText = "text"
)

// Output is one rendered export document
type Output struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Exporter renders stored analysis results into downloadable documents. The
// clock is injectable so filenames and headers stay deterministic in tests.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates an Exporter using the wall clock
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// NewExporterWithClock creates an Exporter with a fixed clock
func NewExporterWithClock(now func() time.Time) *Exporter {
	return &Exporter{now: now}
}

// Render serializes the history entry in the requested format
func (e *Exporter) Render(entry *entities.MeetingHistoryEntry, format string) (*Output, error) {
	switch format {
	case FormatJSON:
		return e.renderJSON(entry)
	case FormatCSV:
		return e.renderCSV(entry)
	case FormatText:
		return e.renderText(entry)
	default:
		return nil, apperrors.ErrUnsupportedFormat(format)
	}
}

func (e *Exporter) renderJSON(entry *entities.MeetingHistoryEntry) (*Output, error) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, apperrors.ErrExportFailed(FormatJSON, err)
	}
	return &Output{
		Data:        data,
		ContentType: "application/json",
		Filename:    e.filename("meeting_analysis", "json"),
	}, nil
}

// renderCSV emits a simplified two-column metric table
func (e *Exporter) renderCSV(entry *entities.MeetingHistoryEntry) (*Output, error) {
	report := entry.Report.Data()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		{"Metric", "Value"},
		{"Duration", fmt.Sprintf("%.1fs", entry.DurationSeconds)},
		{"Speakers", fmt.Sprintf("%d", entry.SpeakerCount)},
		{"Words", fmt.Sprintf("%d", entry.WordCount)},
		{"Engagement Score", fmt.Sprintf("%.1f", entry.EngagementScore)},
		{"Sentiment", entry.SentimentTrend},
		{"Questions", fmt.Sprintf("%d", report.ContentAnalysis.QuestionCount)},
		{"Dominant Speaker", report.ParticipantInsights.DominantSpeaker},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, apperrors.ErrExportFailed(FormatCSV, err)
	}
	return &Output{
		Data:        buf.Bytes(),
		ContentType: "text/csv",
		Filename:    e.filename("meeting_analysis", "csv"),
	}, nil
}

func (e *Exporter) renderText(entry *entities.MeetingHistoryEntry) (*Output, error) {
	report := entry.Report.Data()

	var b strings.Builder
	b.WriteString("MEETING INSIGHTS REPORT\n")
	b.WriteString("Generated: " + e.now().Format("2006-01-02 15:04") + "\n\n")

	b.WriteString("KEY METRICS:\n")
	fmt.Fprintf(&b, "- Duration: %.1f seconds\n", entry.DurationSeconds)
	fmt.Fprintf(&b, "- Speakers: %d\n", entry.SpeakerCount)
	fmt.Fprintf(&b, "- Words: %d\n", entry.WordCount)
	fmt.Fprintf(&b, "- Engagement Score: %.1f\n", entry.EngagementScore)
	fmt.Fprintf(&b, "- Sentiment: %s\n", entry.SentimentTrend)
	fmt.Fprintf(&b, "- Questions Asked: %d\n", report.ContentAnalysis.QuestionCount)

	b.WriteString("\nDECISION POINTS:\n")
	if len(report.ContentAnalysis.DecisionPoints) == 0 {
		b.WriteString("- none detected\n")
	}
	for i, d := range report.ContentAnalysis.DecisionPoints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}

	b.WriteString("\nRECOMMENDATIONS:\n")
	for i, r := range report.EngagementScore.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	events := entry.EventCandidates.Data()
	if len(events) > 0 {
		b.WriteString("\nSUGGESTED FOLLOW-UPS:\n")
		for i, ev := range events {
			fmt.Fprintf(&b, "%d. %s (%s, confidence %.1f)\n", i+1, ev.Title, ev.SuggestedTime, ev.Confidence)
		}
	}

	return &Output{
		Data:        []byte(b.String()),
		ContentType: "text/plain",
		Filename:    e.filename("meeting_report", "txt"),
	}, nil
}

func (e *Exporter) filename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, e.now().Format("20060102_1504"), ext)
}
