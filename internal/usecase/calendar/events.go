package calendar

import (
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// At most this many event candidates are suggested per meeting
const maxSuggestedEvents = 3

// Confidence starts here and decreases by the step per event
const (
	baseConfidence = 0.7
	confidenceStep = 0.1
)

// defaultEventTime is the fallback when no time-like token was found
const defaultEventTime = "10:00 AM"

// Date-like phrase patterns. Matched content is not parsed; every hit
// resolves to a placeholder one week out. Real date parsing is a known gap.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)(\d{1,2}(?:st|nd|rd|th) of \w+)`),
	regexp.MustCompile(`(?i)(next \w+)`),
	regexp.MustCompile(`(?i)(\w+ \d{1,2})`),
}

// Time-like token patterns, collected as raw strings without normalization
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)`),
	regexp.MustCompile(`(?i)(\d{1,2}\s*(?:AM|PM))`),
	regexp.MustCompile(`(?i)(at \d{1,2})`),
}

// Action phrase patterns scanned for event topics
var topicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)follow up on ([^.!?]+)`),
	regexp.MustCompile(`(?i)discuss ([^.!?]+) next`),
	regexp.MustCompile(`(?i)review ([^.!?]+)`),
	regexp.MustCompile(`(?i)meet about ([^.!?]+)`),
}

// defaultTopics stands in when no action phrase matched
var defaultTopics = []string{"Action Items", "Project Update", "Team Discussion"}

// SuggestionEngine proposes calendar events from transcript phrasing. The
// clock is injectable for deterministic tests.
type SuggestionEngine struct {
	now    func() time.Time
	logger *zap.Logger
}

// NewSuggestionEngine creates a SuggestionEngine using the wall clock
func NewSuggestionEngine(logger *zap.Logger) *SuggestionEngine {
	return &SuggestionEngine{now: time.Now, logger: logger}
}

// NewSuggestionEngineWithClock creates a SuggestionEngine with a fixed clock
func NewSuggestionEngineWithClock(logger *zap.Logger, now func() time.Time) *SuggestionEngine {
	return &SuggestionEngine{now: now, logger: logger}
}

// Suggest scans transcript and summary text for topic, date and time cues and
// proposes up to 3 events with decreasing confidence. Topics come from the
// transcript alone; date and time cues from both texts.
func (e *SuggestionEngine) Suggest(transcript, summary string) []entities.EventCandidate {
	combined := transcript + " " + summary

	dates := e.extractDates(combined)
	times := extractTimes(combined)
	topics := extractEventTopics(transcript)

	if len(topics) > maxSuggestedEvents {
		topics = topics[:maxSuggestedEvents]
	}

	events := make([]entities.EventCandidate, 0, len(topics))
	for i, topic := range topics {
		candidate := entities.NewEventCandidate(
			eventTitle(topic),
			"Automatically generated from meeting discussion about: "+topic,
		)
		candidate.SuggestedDate = e.suggestDate(dates, i)
		candidate.SuggestedTime = suggestTime(times, i)
		candidate.Confidence = baseConfidence - confidenceStep*float64(i)
		events = append(events, candidate)
	}

	if e.logger != nil {
		e.logger.Info("📅 Suggested calendar events",
			zap.Int("count", len(events)),
			zap.Int("date_cues", len(dates)),
			zap.Int("time_cues", len(times)))
	}

	return events
}

// extractDates resolves every date-like phrase to a placeholder one week out.
// The phrase content is deliberately not parsed.
func (e *SuggestionEngine) extractDates(text string) []time.Time {
	placeholder := e.now().AddDate(0, 0, 7)

	dates := make([]time.Time, 0)
	for _, pattern := range datePatterns {
		for range pattern.FindAllString(text, -1) {
			dates = append(dates, placeholder)
		}
	}
	return dates
}

func extractTimes(text string) []string {
	times := make([]string, 0)
	for _, pattern := range timePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			times = append(times, m[1])
		}
	}
	return times
}

// extractEventTopics collects action phrase captures from the transcript,
// falling back to generic topics, capped at 5 before the per-event cut.
func extractEventTopics(text string) []string {
	topics := make([]string, 0)
	for _, pattern := range topicPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			topics = append(topics, m[1])
		}
	}
	if len(topics) == 0 {
		topics = append(topics, defaultTopics...)
	}
	if len(topics) > 5 {
		topics = topics[:5]
	}
	return topics
}

func eventTitle(topic string) string {
	lower := strings.ToLower(topic)
	switch {
	case strings.Contains(lower, "follow"):
		return "Follow-up: " + topic
	case strings.Contains(lower, "review"):
		return "Review: " + topic
	default:
		return "Discussion: " + topic
	}
}

// suggestDate returns the i-th extracted date, or the next business day
func (e *SuggestionEngine) suggestDate(dates []time.Time, index int) time.Time {
	if index < len(dates) {
		return dates[index]
	}
	next := e.now().AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func suggestTime(times []string, index int) string {
	if index < len(times) {
		return times[index]
	}
	return defaultEventTime
}
