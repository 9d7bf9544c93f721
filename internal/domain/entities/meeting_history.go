package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingHistoryEntry is one analyzed meeting in the append-only history
// store. Entries are created once and never updated; the history itself is
// externally owned and passed into the service by reference.
type MeetingHistoryEntry struct {
	ID              uuid.UUID                              `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptText  string                                 `json:"transcript_text" gorm:"type:text"`
	DurationSeconds float64                                `json:"duration_seconds"`
	SpeakerCount    int                                    `json:"speaker_count"`
	WordCount       int                                    `json:"word_count"`
	EngagementScore float64                                `json:"engagement_score"`
	SentimentTrend  string                                 `json:"sentiment_trend" gorm:"type:varchar(20)"`
	Report          datatypes.JSONType[AnalyticsReport]    `json:"report" gorm:"type:jsonb"`
	EventCandidates datatypes.JSONType[[]EventCandidate]   `json:"event_candidates" gorm:"type:jsonb"`
	EnhancementInfo datatypes.JSONType[map[string]float64] `json:"enhancement_info,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time                              `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for MeetingHistoryEntry
func (MeetingHistoryEntry) TableName() string {
	return "meeting_history"
}

// NewMeetingHistoryEntry creates a history entry from an analyzed record
func NewMeetingHistoryEntry(rec *MeetingRecord, report *AnalyticsReport, events []EventCandidate) *MeetingHistoryEntry {
	return &MeetingHistoryEntry{
		ID:              uuid.New(),
		TranscriptText:  rec.TranscriptText,
		DurationSeconds: rec.AudioDurationSeconds,
		SpeakerCount:    report.MeetingMetrics.SpeakerCount,
		WordCount:       report.MeetingMetrics.WordCount,
		EngagementScore: report.EngagementScore.OverallScore,
		SentimentTrend:  report.ContentAnalysis.SentimentTrend,
		Report:          datatypes.NewJSONType(*report),
		EventCandidates: datatypes.NewJSONType(events),
	}
}
