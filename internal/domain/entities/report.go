package entities

// Degraded-data markers. Analyzers return these instead of erroring when the
// input carries too little signal; consumers must treat them as valid results.
const (
	MarkerInsufficientSpeakerData = "Insufficient speaker data"
	MarkerNoTemporalData          = "No temporal data available"
)

// EngagementTrendStable is the only trend the temporal analyzer reports
const EngagementTrendStable = "stable"

// Sentiment trend labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// MeetingMetrics holds basic volume and rate metrics for one meeting
type MeetingMetrics struct {
	DurationMinutes  float64 `json:"duration_minutes"`
	WordCount        int     `json:"word_count"`
	SentenceCount    int     `json:"sentence_count"`
	WordsPerMinute   float64 `json:"words_per_minute"`
	SpeakerCount     int     `json:"speaker_count"`
	UniqueTopicCount int     `json:"unique_topics"`
}

// SpeakerTime is one speaker's share of the total speaking time
type SpeakerTime struct {
	TimeSeconds float64 `json:"time_seconds"`
	Percentage  float64 `json:"percentage"`
}

// ParticipantInsights aggregates per-speaker talk time and the balance score.
// Analysis carries MarkerInsufficientSpeakerData when no segments were
// available; the balance then holds its neutral 0.5 default.
type ParticipantInsights struct {
	Analysis                 string                 `json:"analysis,omitempty"`
	SpeakingTimeDistribution map[string]SpeakerTime `json:"speaking_time_distribution,omitempty"`
	SpeakerOrder             []string               `json:"speaker_order,omitempty"`
	DominantSpeaker          string                 `json:"dominant_speaker,omitempty"`
	ParticipationBalance     float64                `json:"participation_balance"`
}

// Degraded reports whether the insights carry the insufficient-data marker
func (p ParticipantInsights) Degraded() bool {
	return p.Analysis == MarkerInsufficientSpeakerData
}

// TemporalPatterns holds binned speaking activity over the meeting timeline.
// Analysis carries MarkerNoTemporalData when no segments were available.
type TemporalPatterns struct {
	Analysis         string    `json:"analysis,omitempty"`
	ActivityOverTime []float64 `json:"activity_over_time,omitempty"`
	PeakActivityTime float64   `json:"peak_activity_time"`
	EngagementTrend  string    `json:"engagement_trend,omitempty"`
}

// TopicCluster is a heuristically grouped set of sentences sharing key tokens
type TopicCluster struct {
	Topic                  string `json:"topic"`
	RepresentativeSentence string `json:"representative_sentence"`
	Frequency              int    `json:"frequency"`
}

// KeywordSample is a keyword snapshot taken at one position in the transcript
type KeywordSample struct {
	Position        int      `json:"position"`
	Keywords        []string `json:"keywords"`
	SentencePreview string   `json:"sentence_preview"`
}

// ContentAnalysis holds topic, sentiment and decision signals derived from the
// transcript text
type ContentAnalysis struct {
	TopicClusters    []TopicCluster  `json:"topic_clusters"`
	SentimentTrend   string          `json:"sentiment_trend"`
	KeywordEvolution []KeywordSample `json:"keyword_evolution"`
	QuestionCount    int             `json:"question_count"`
	DecisionPoints   []string        `json:"decision_points"`
}

// EngagementComponents are the three 0-100 sub-scores of the engagement score
type EngagementComponents struct {
	ContentRichness      float64 `json:"content_richness"`
	ParticipationBalance float64 `json:"participation_balance"`
	TopicDiversity       float64 `json:"topic_diversity"`
}

// EngagementScore is the composite 0-100 engagement metric
type EngagementScore struct {
	OverallScore    float64              `json:"overall_score"`
	Components      EngagementComponents `json:"components"`
	Recommendations []string             `json:"recommendations"`
}

// PieChart is a chart-ready label/value series
type PieChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// TimeSeries is a chart-ready indexed series
type TimeSeries struct {
	TimePoints     []int     `json:"time_points"`
	ActivityLevels []float64 `json:"activity_levels"`
}

// RadarChart is a chart-ready named-axis series
type RadarChart struct {
	Metrics []string  `json:"metrics"`
	Scores  []float64 `json:"scores"`
}

// VisualizationBundle reshapes analyzer outputs into chart-ready series for a
// rendering layer; it performs no computation of its own
type VisualizationBundle struct {
	SpeakerPieChart  PieChart   `json:"speaker_pie_chart"`
	ActivityTimeline TimeSeries `json:"activity_timeline"`
	EngagementRadar  RadarChart `json:"engagement_radar"`
}

// AnalyticsReport is the aggregate output of one analytics invocation. It is
// entirely derived from the input record; no state is shared across calls.
type AnalyticsReport struct {
	MeetingMetrics      MeetingMetrics      `json:"meeting_metrics"`
	ParticipantInsights ParticipantInsights `json:"participant_insights"`
	ContentAnalysis     ContentAnalysis     `json:"content_analysis"`
	TemporalPatterns    TemporalPatterns    `json:"temporal_patterns"`
	EngagementScore     EngagementScore     `json:"engagement_score"`
	Visualizations      VisualizationBundle `json:"visualizations"`
}
