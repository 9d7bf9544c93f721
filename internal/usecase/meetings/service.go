package meetings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analytics"
	"github.com/johnquangdev/meeting-insights/internal/usecase/calendar"
)

// HistoryStore is the append-only persistence boundary for analyzed meetings
type HistoryStore interface {
	Append(ctx context.Context, entry *entities.MeetingHistoryEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingHistoryEntry, error)
	List(ctx context.Context, limit, offset int) ([]entities.MeetingHistoryEntry, int64, error)
}

// Service is the application boundary for meeting analysis
type Service interface {
	Analyze(ctx context.Context, rec *entities.MeetingRecord) (*entities.MeetingHistoryEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MeetingHistoryEntry, error)
	List(ctx context.Context, limit, offset int) ([]entities.MeetingHistoryEntry, int64, error)
}

type service struct {
	analytics analytics.Service
	events    *calendar.SuggestionEngine
	history   HistoryStore
	cache     cache.Store
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewService wires the analytics engine, event suggestion and persistence
// into one meeting analysis service. History and cache may be nil; the
// service then runs compute-only.
func NewService(
	analyticsSvc analytics.Service,
	events *calendar.SuggestionEngine,
	history HistoryStore,
	cacheStore cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) Service {
	return &service{
		analytics: analyticsSvc,
		events:    events,
		history:   history,
		cache:     cacheStore,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Analyze runs the full pipeline over one record: analytics report, event
// suggestions, history persistence. Identical records short-circuit through
// the cache and return the previously stored entry.
func (s *service) Analyze(ctx context.Context, rec *entities.MeetingRecord) (*entities.MeetingHistoryEntry, error) {
	if rec == nil {
		return nil, apperrors.ErrInvalidArgument("meeting record is required")
	}
	rec.Normalize()

	key := recordFingerprint(rec)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var entry entities.MeetingHistoryEntry
			if err := json.Unmarshal([]byte(cached), &entry); err == nil {
				if s.logger != nil {
					s.logger.Info("⚡ Returning cached analysis", zap.String("id", entry.ID.String()))
				}
				return &entry, nil
			}
			s.cache.Delete(ctx, key)
		}
	}

	report, err := s.analytics.GenerateReport(ctx, rec)
	if err != nil {
		return nil, err
	}

	suggestions := s.events.Suggest(rec.TranscriptText, rec.SummaryText)

	entry := entities.NewMeetingHistoryEntry(rec, report, suggestions)

	if s.history != nil {
		if err := s.history.Append(ctx, entry); err != nil {
			return nil, apperrors.ErrDBQueryFailed(err)
		}
	}

	if s.cache != nil {
		if serialized, err := json.Marshal(entry); err == nil {
			s.cache.Set(ctx, key, string(serialized), s.cacheTTL)
		}
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting analyzed",
			zap.String("id", entry.ID.String()),
			zap.Float64("engagement_score", entry.EngagementScore),
			zap.Int("suggested_events", len(suggestions)))
	}

	return entry, nil
}

// GetByID loads one stored analysis
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*entities.MeetingHistoryEntry, error) {
	if s.history == nil {
		return nil, apperrors.ErrReportNotFound(id.String())
	}
	entry, err := s.history.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if entry == nil {
		return nil, apperrors.ErrReportNotFound(id.String())
	}
	return entry, nil
}

// List returns stored analyses newest first
func (s *service) List(ctx context.Context, limit, offset int) ([]entities.MeetingHistoryEntry, int64, error) {
	if s.history == nil {
		return []entities.MeetingHistoryEntry{}, 0, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	entries, total, err := s.history.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.ErrDBQueryFailed(err)
	}
	return entries, total, nil
}

// recordFingerprint hashes the normalized record content so identical inputs
// map to the same cache slot
func recordFingerprint(rec *entities.MeetingRecord) string {
	h := sha256.New()
	h.Write([]byte(rec.TranscriptText))
	h.Write([]byte{0})
	h.Write([]byte(rec.SummaryText))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%f", rec.AudioDurationSeconds)
	for _, s := range rec.Segments {
		fmt.Fprintf(h, "|%s:%f:%f:%f", s.Speaker, s.StartTime, s.EndTime, s.Duration)
	}
	return "meeting:analysis:" + hex.EncodeToString(h.Sum(nil))
}
