package analytics

import (
	"context"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Service generates a full analytics report from one meeting record
type Service interface {
	GenerateReport(ctx context.Context, rec *entities.MeetingRecord) (*entities.AnalyticsReport, error)
}

// engine wires the analyzers together. The independent analyzers run
// concurrently; engagement and visualizations are derived from their outputs
// afterwards.
type engine struct {
	metrics       *MetricsCalculator
	participation *ParticipationAnalyzer
	temporal      *TemporalAnalyzer
	content       *ContentAnalyzer
	engagement    *EngagementScorer
	visualization *VisualizationAdapter
	logger        *zap.Logger
}

// NewService creates the analytics engine with all analyzers wired
func NewService(logger *zap.Logger) Service {
	return &engine{
		metrics:       NewMetricsCalculator(),
		participation: NewParticipationAnalyzer(),
		temporal:      NewTemporalAnalyzer(),
		content:       NewContentAnalyzer(),
		engagement:    NewEngagementScorer(),
		visualization: NewVisualizationAdapter(),
		logger:        logger,
	}
}

// GenerateReport runs every analyzer over the record and assembles the
// aggregate report. A structurally invalid record is the only failure mode;
// degraded inputs (empty transcript, no segments) still yield a full report
// with marker values.
func (e *engine) GenerateReport(ctx context.Context, rec *entities.MeetingRecord) (*entities.AnalyticsReport, error) {
	if rec == nil {
		return nil, apperrors.ErrInvalidArgument("meeting record is required")
	}
	if err := rec.Validate(); err != nil {
		if e.logger != nil {
			e.logger.Warn("rejected invalid meeting record", zap.Error(err))
		}
		return nil, apperrors.ErrInvalidRecord(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if e.logger != nil {
		e.logger.Info("📊 Generating analytics report",
			zap.Int("transcript_chars", len(rec.TranscriptText)),
			zap.Int("segments", len(rec.Segments)))
	}

	report := &entities.AnalyticsReport{}

	// The four base analyzers are pure and independent, so they run in
	// parallel. Each writes its own report field only.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		report.MeetingMetrics = e.metrics.Calculate(rec)
	}()
	go func() {
		defer wg.Done()
		report.ParticipantInsights = e.participation.Analyze(rec.Segments)
	}()
	go func() {
		defer wg.Done()
		report.TemporalPatterns = e.temporal.Analyze(rec.Segments)
	}()
	go func() {
		defer wg.Done()
		report.ContentAnalysis = e.content.Analyze(rec.TranscriptText)
	}()
	wg.Wait()

	report.EngagementScore = e.engagement.Score(report.MeetingMetrics, report.ParticipantInsights)
	report.Visualizations = e.visualization.Build(report.ParticipantInsights, report.TemporalPatterns, report.EngagementScore)

	if e.logger != nil {
		e.logger.Info("✅ Analytics report generated",
			zap.Float64("engagement_score", report.EngagementScore.OverallScore),
			zap.String("sentiment", report.ContentAnalysis.SentimentTrend))
	}

	return report, nil
}
