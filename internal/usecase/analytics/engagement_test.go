package analytics

import (
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestScore_EmptyMeeting(t *testing.T) {
	metrics := entities.MeetingMetrics{}
	participation := entities.ParticipantInsights{
		Analysis:             entities.MarkerInsufficientSpeakerData,
		ParticipationBalance: 0.5,
	}

	s := NewEngagementScorer().Score(metrics, participation)

	// Only the neutral balance contributes: 0.5 / 3 scaled to 100.
	if s.OverallScore != 16.7 {
		t.Fatalf("expected 16.7 got %f", s.OverallScore)
	}
	if s.Components.ContentRichness != 0 || s.Components.TopicDiversity != 0 {
		t.Fatalf("expected zero content and topic components got %+v", s.Components)
	}
	if s.Components.ParticipationBalance != 50 {
		t.Fatalf("expected 50 balance component got %f", s.Components.ParticipationBalance)
	}
	if len(s.Recommendations) != 3 {
		t.Fatalf("expected 3 low-tier recommendations got %v", s.Recommendations)
	}
	if s.Recommendations[0] != "Consider shorter, more focused meetings" {
		t.Fatalf("unexpected recommendation %q", s.Recommendations[0])
	}
}

func TestScore_SaturatedComponents(t *testing.T) {
	metrics := entities.MeetingMetrics{WordCount: 5000, UniqueTopicCount: 25}
	participation := entities.ParticipantInsights{ParticipationBalance: 1.0}

	s := NewEngagementScorer().Score(metrics, participation)

	if s.OverallScore != 100 {
		t.Fatalf("expected saturated 100 got %f", s.OverallScore)
	}
	if s.Components.ContentRichness != 100 || s.Components.TopicDiversity != 100 {
		t.Fatalf("expected saturated components got %+v", s.Components)
	}
	if s.Recommendations[0] != "Excellent meeting engagement" {
		t.Fatalf("unexpected recommendation %q", s.Recommendations[0])
	}
}

func TestScore_ContentSaturatesAt500Words(t *testing.T) {
	participation := entities.ParticipantInsights{ParticipationBalance: 0}

	at500 := NewEngagementScorer().Score(entities.MeetingMetrics{WordCount: 500}, participation)
	at900 := NewEngagementScorer().Score(entities.MeetingMetrics{WordCount: 900}, participation)

	if at500.Components.ContentRichness != 100 {
		t.Fatalf("expected 100 at 500 words got %f", at500.Components.ContentRichness)
	}
	if at900.Components.ContentRichness != at500.Components.ContentRichness {
		t.Fatalf("expected no growth past saturation, got %f vs %f",
			at900.Components.ContentRichness, at500.Components.ContentRichness)
	}
}

func TestScore_Monotonic(t *testing.T) {
	participation := entities.ParticipantInsights{ParticipationBalance: 0.5}

	prev := -1.0
	for _, wc := range []int{0, 100, 250, 400, 500} {
		s := NewEngagementScorer().Score(entities.MeetingMetrics{WordCount: wc}, participation)
		if s.OverallScore < prev {
			t.Fatalf("score decreased at %d words: %f < %f", wc, s.OverallScore, prev)
		}
		prev = s.OverallScore
	}
}

func TestScore_ModerateTier(t *testing.T) {
	// content 0.5, balance 0.8, topics 0.5 averages to 0.6
	metrics := entities.MeetingMetrics{WordCount: 250, UniqueTopicCount: 5}
	participation := entities.ParticipantInsights{ParticipationBalance: 0.8}

	s := NewEngagementScorer().Score(metrics, participation)

	if s.OverallScore != 60 {
		t.Fatalf("expected 60 got %f", s.OverallScore)
	}
	if len(s.Recommendations) != 2 {
		t.Fatalf("expected 2 mid-tier recommendations got %v", s.Recommendations)
	}
	if s.Recommendations[0] != "Good meeting structure, could improve participation balance" {
		t.Fatalf("unexpected recommendation %q", s.Recommendations[0])
	}
}

func TestScore_DegradedParticipationUsesNeutralBalance(t *testing.T) {
	metrics := entities.MeetingMetrics{WordCount: 500, UniqueTopicCount: 10}
	participation := entities.ParticipantInsights{
		Analysis:             entities.MarkerInsufficientSpeakerData,
		ParticipationBalance: 0.9,
	}

	s := NewEngagementScorer().Score(metrics, participation)

	// Degraded insights force the neutral 0.5 regardless of the stored value.
	if s.Components.ParticipationBalance != 50 {
		t.Fatalf("expected neutral 50 got %f", s.Components.ParticipationBalance)
	}
}
