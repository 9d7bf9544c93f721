package analytics

import (
	"math"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MetricsCalculator derives basic volume and rate metrics from a meeting
// record. All fields default to zero on empty input; there are no failure
// modes.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new MetricsCalculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// Calculate computes word, sentence and rate metrics for the record
func (c *MetricsCalculator) Calculate(rec *entities.MeetingRecord) entities.MeetingMetrics {
	words := strings.Fields(rec.TranscriptText)
	sentences := splitSentences(rec.TranscriptText)

	durationMinutes := rec.DurationMinutes()

	// Floor the divisor at one minute so near-zero recordings do not explode
	// the speaking rate.
	wpmDivisor := durationMinutes
	if wpmDivisor < 1 {
		wpmDivisor = 1
	}

	wordsPerMinute := 0.0
	if len(words) > 0 {
		wordsPerMinute = float64(len(words)) / wpmDivisor
	}

	return entities.MeetingMetrics{
		DurationMinutes:  math.Round(durationMinutes*100) / 100,
		WordCount:        len(words),
		SentenceCount:    len(sentences),
		WordsPerMinute:   wordsPerMinute,
		SpeakerCount:     countSpeakers(rec.Segments),
		UniqueTopicCount: len(extractTopics(rec.TranscriptText)),
	}
}

// countSpeakers counts distinct speaker labels across segments
func countSpeakers(segments []entities.Segment) int {
	seen := make(map[string]struct{}, len(segments))
	for _, s := range segments {
		speaker := s.Speaker
		if speaker == "" {
			speaker = entities.UnknownSpeaker
		}
		seen[speaker] = struct{}{}
	}
	return len(seen)
}
