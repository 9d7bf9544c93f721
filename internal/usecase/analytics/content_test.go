package analytics

import (
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestAnalyzeContent_Sample(t *testing.T) {
	c := NewContentAnalyzer().Analyze(sampleTranscript)

	if c.SentimentTrend != entities.SentimentPositive {
		t.Fatalf("expected positive sentiment got %q", c.SentimentTrend)
	}
	if c.QuestionCount != 1 {
		t.Fatalf("expected 1 question got %d", c.QuestionCount)
	}
	if len(c.DecisionPoints) != 2 {
		t.Fatalf("expected 2 decision points got %v", c.DecisionPoints)
	}
	if c.DecisionPoints[0] != "ship the feature" {
		t.Fatalf("expected 'ship the feature' first got %q", c.DecisionPoints[0])
	}
	if c.DecisionPoints[1] != "we also review the budget" {
		t.Fatalf("expected should-clause capture got %q", c.DecisionPoints[1])
	}
}

func TestClusterTopics_KeyTokensAndMerge(t *testing.T) {
	text := "The budget review meeting starts now. The budget review plan looks good. Something entirely different happened today."

	c := NewContentAnalyzer().Analyze(text)

	if len(c.TopicClusters) != 2 {
		t.Fatalf("expected 2 clusters got %v", c.TopicClusters)
	}
	// The two budget sentences share key tokens and merge; highest frequency
	// sorts first.
	if c.TopicClusters[0].Frequency != 2 {
		t.Fatalf("expected merged cluster frequency 2 got %d", c.TopicClusters[0].Frequency)
	}
	if !strings.Contains(c.TopicClusters[0].Topic, "budget") {
		t.Fatalf("expected budget topic got %q", c.TopicClusters[0].Topic)
	}
	if !strings.HasSuffix(c.TopicClusters[0].RepresentativeSentence, "...") {
		t.Fatalf("expected ellipsis suffix got %q", c.TopicClusters[0].RepresentativeSentence)
	}
}

func TestClusterTopics_ShortSentencesSkipped(t *testing.T) {
	// Under 11 characters, or fewer than 4 words, no cluster forms.
	c := NewContentAnalyzer().Analyze("Yes. No way. Fine then people!")

	if len(c.TopicClusters) != 0 {
		t.Fatalf("expected no clusters got %v", c.TopicClusters)
	}
}

func TestSentimentTrend_Cases(t *testing.T) {
	a := NewContentAnalyzer()

	cases := []struct {
		text string
		want string
	}{
		{"this was a good and great success", entities.SentimentPositive},
		{"a bad problem and a real concern", entities.SentimentNegative},
		{"nothing notable here", entities.SentimentNeutral},
		{"good outcome but a bad problem overall", entities.SentimentNegative},
		// Substring containment: "goodness" still counts as "good".
		{"pure goodness", entities.SentimentPositive},
	}
	for _, tc := range cases {
		if got := a.sentimentTrend(tc.text); got != tc.want {
			t.Fatalf("sentiment(%q) = %q want %q", tc.text, got, tc.want)
		}
	}
}

func TestKeywordEvolution_SamplePositions(t *testing.T) {
	c := NewContentAnalyzer().Analyze(sampleTranscript)

	if len(c.KeywordEvolution) != 4 {
		t.Fatalf("expected 4 samples got %d", len(c.KeywordEvolution))
	}
	wantPositions := []int{0, 1, 2, 2}
	for i, s := range c.KeywordEvolution {
		if s.Position != wantPositions[i] {
			t.Fatalf("sample %d: expected position %d got %d", i, wantPositions[i], s.Position)
		}
	}
	// Keywords keep original casing and need more than 4 characters.
	first := c.KeywordEvolution[0]
	if len(first.Keywords) != 2 || first.Keywords[0] != "decided" || first.Keywords[1] != "feature" {
		t.Fatalf("unexpected keywords %v", first.Keywords)
	}
	last := c.KeywordEvolution[3]
	if len(last.Keywords) != 2 || last.Keywords[0] != "Great" {
		t.Fatalf("unexpected keywords %v", last.Keywords)
	}
}

func TestKeywordEvolution_SingleSentenceRepeats(t *testing.T) {
	c := NewContentAnalyzer().Analyze("A single standalone sentence about planning")

	if len(c.KeywordEvolution) != 4 {
		t.Fatalf("expected 4 samples for one sentence got %d", len(c.KeywordEvolution))
	}
	for _, s := range c.KeywordEvolution {
		if s.Position != 0 {
			t.Fatalf("expected every sample at position 0 got %d", s.Position)
		}
	}
}

func TestDecisionPoints_CappedAtFive(t *testing.T) {
	text := "We will fix A. We will fix B. We will fix C. We will fix D. We will fix E. We will fix F."

	c := NewContentAnalyzer().Analyze(text)

	if len(c.DecisionPoints) != 5 {
		t.Fatalf("expected cap of 5 got %d", len(c.DecisionPoints))
	}
}

func TestAnalyzeContent_EmptyText(t *testing.T) {
	c := NewContentAnalyzer().Analyze("")

	if len(c.TopicClusters) != 0 || len(c.KeywordEvolution) != 0 || len(c.DecisionPoints) != 0 {
		t.Fatalf("expected empty analysis got %+v", c)
	}
	if c.SentimentTrend != entities.SentimentNeutral {
		t.Fatalf("expected neutral sentiment got %q", c.SentimentTrend)
	}
	if c.QuestionCount != 0 {
		t.Fatalf("expected 0 questions got %d", c.QuestionCount)
	}
}
