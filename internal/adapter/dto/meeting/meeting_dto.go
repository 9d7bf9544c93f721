package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/audio"
)

// SegmentRequest is one diarized span in an analyze request
type SegmentRequest struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time" validate:"gte=0"`
	EndTime   float64 `json:"end_time" validate:"gtefield=StartTime"`
	Duration  float64 `json:"duration" validate:"gte=0"`
}

// AnalyzeMeetingRequest is the payload for POST /v1/meetings/analyze. An
// empty transcript is allowed; the analysis then degrades rather than fails.
type AnalyzeMeetingRequest struct {
	TranscriptText       string           `json:"transcript_text"`
	SummaryText          string           `json:"summary_text"`
	AudioDurationSeconds float64          `json:"audio_duration_seconds" validate:"gte=0"`
	Segments             []SegmentRequest `json:"segments" validate:"dive"`
}

// ToEntity converts the request to a domain record
func (r *AnalyzeMeetingRequest) ToEntity() *entities.MeetingRecord {
	segments := make([]entities.Segment, len(r.Segments))
	for i, s := range r.Segments {
		segments[i] = entities.Segment{
			Speaker:   s.Speaker,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Duration:  s.Duration,
		}
	}
	return &entities.MeetingRecord{
		TranscriptText:       r.TranscriptText,
		SummaryText:          r.SummaryText,
		AudioDurationSeconds: r.AudioDurationSeconds,
		Segments:             segments,
	}
}

// MeetingResponse is one analyzed meeting
type MeetingResponse struct {
	ID              string                    `json:"id"`
	DurationSeconds float64                   `json:"duration_seconds"`
	SpeakerCount    int                       `json:"speaker_count"`
	WordCount       int                       `json:"word_count"`
	EngagementScore float64                   `json:"engagement_score"`
	SentimentTrend  string                    `json:"sentiment_trend"`
	Report          entities.AnalyticsReport  `json:"report"`
	EventCandidates []entities.EventCandidate `json:"event_candidates"`
	CreatedAt       time.Time                 `json:"created_at"`
}

// MeetingSummaryResponse is a list item without the full report payload
type MeetingSummaryResponse struct {
	ID              string    `json:"id"`
	DurationSeconds float64   `json:"duration_seconds"`
	SpeakerCount    int       `json:"speaker_count"`
	WordCount       int       `json:"word_count"`
	EngagementScore float64   `json:"engagement_score"`
	SentimentTrend  string    `json:"sentiment_trend"`
	CreatedAt       time.Time `json:"created_at"`
}

// MeetingListResponse is a paginated history listing
type MeetingListResponse struct {
	Meetings   []MeetingSummaryResponse `json:"meetings"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}

// EnhanceAudioRequest is the payload for POST /v1/audio/enhance
type EnhanceAudioRequest struct {
	Samples    []float64 `json:"samples" validate:"required,min=1"`
	SampleRate int       `json:"sample_rate" validate:"gte=0"`
	Methods    []string  `json:"methods"`
}

// EnhanceAudioResponse carries processed samples and quality statistics
type EnhanceAudioResponse struct {
	Samples            []float64                `json:"samples"`
	AppliedMethods     []string                 `json:"applied_methods"`
	OriginalStats      audio.QualityStats       `json:"original_stats"`
	EnhancedStats      audio.QualityStats       `json:"enhanced_stats"`
	ImprovementMetrics audio.ImprovementMetrics `json:"improvement_metrics"`
}
