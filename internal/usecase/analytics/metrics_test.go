package analytics

import (
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const sampleTranscript = "We decided to ship the feature. Should we also review the budget? Great work everyone."

func TestCalculate_BasicCounts(t *testing.T) {
	rec := &entities.MeetingRecord{
		TranscriptText:       sampleTranscript,
		AudioDurationSeconds: 120,
		Segments: []entities.Segment{
			{Speaker: "Alice", StartTime: 0, EndTime: 60, Duration: 60},
			{Speaker: "Bob", StartTime: 60, EndTime: 120, Duration: 60},
		},
	}

	m := NewMetricsCalculator().Calculate(rec)

	if m.WordCount != 15 {
		t.Fatalf("expected 15 words got %d", m.WordCount)
	}
	if m.SentenceCount != 3 {
		t.Fatalf("expected 3 sentences got %d", m.SentenceCount)
	}
	if m.DurationMinutes != 2 {
		t.Fatalf("expected 2 minutes got %f", m.DurationMinutes)
	}
	if m.WordsPerMinute != 7.5 {
		t.Fatalf("expected 7.5 wpm got %f", m.WordsPerMinute)
	}
	if m.SpeakerCount != 2 {
		t.Fatalf("expected 2 speakers got %d", m.SpeakerCount)
	}
}

func TestCalculate_ShortRecordingFloorsDivisor(t *testing.T) {
	// 30 seconds is half a minute; the divisor floors at 1 so the rate does
	// not double.
	rec := &entities.MeetingRecord{
		TranscriptText:       "one two three four five six",
		AudioDurationSeconds: 30,
	}

	m := NewMetricsCalculator().Calculate(rec)

	if m.WordsPerMinute != 6 {
		t.Fatalf("expected floored wpm 6 got %f", m.WordsPerMinute)
	}
	if m.DurationMinutes != 0.5 {
		t.Fatalf("expected 0.5 minutes got %f", m.DurationMinutes)
	}
}

func TestCalculate_EmptyRecord(t *testing.T) {
	m := NewMetricsCalculator().Calculate(&entities.MeetingRecord{})

	if m.WordCount != 0 || m.SentenceCount != 0 || m.WordsPerMinute != 0 {
		t.Fatalf("expected all-zero metrics got %+v", m)
	}
	if m.SpeakerCount != 0 || m.UniqueTopicCount != 0 {
		t.Fatalf("expected zero speakers and topics got %+v", m)
	}
}

func TestCalculate_TopicCountIgnoresStopWordsAndShortWords(t *testing.T) {
	rec := &entities.MeetingRecord{
		TranscriptText: "this budget about budget the it would review",
	}

	m := NewMetricsCalculator().Calculate(rec)

	// Only "budget" and "review" qualify: stop words and words under 4
	// letters are excluded.
	if m.UniqueTopicCount != 2 {
		t.Fatalf("expected 2 unique topics got %d", m.UniqueTopicCount)
	}
}

func TestCalculate_UnlabeledSpeakersCollapseToUnknown(t *testing.T) {
	rec := &entities.MeetingRecord{
		Segments: []entities.Segment{
			{StartTime: 0, EndTime: 1, Duration: 1},
			{StartTime: 1, EndTime: 2, Duration: 1},
			{Speaker: "Alice", StartTime: 2, EndTime: 3, Duration: 1},
		},
	}

	m := NewMetricsCalculator().Calculate(rec)

	if m.SpeakerCount != 2 {
		t.Fatalf("expected Unknown and Alice to count as 2 speakers got %d", m.SpeakerCount)
	}
}
