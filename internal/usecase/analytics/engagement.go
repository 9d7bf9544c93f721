package analytics

import (
	"math"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Component saturation points: beyond these the component contributes its
// maximum score
const (
	contentSaturationWords = 500
	topicSaturationCount   = 10
)

// Score thresholds (0-1 scale) for picking recommendation tiers
const (
	lowEngagementThreshold      = 0.3
	moderateEngagementThreshold = 0.7
)

// EngagementScorer combines volume, balance and topic diversity into one
// composite score with tiered recommendations
type EngagementScorer struct{}

// NewEngagementScorer creates a new EngagementScorer
func NewEngagementScorer() *EngagementScorer {
	return &EngagementScorer{}
}

// Score averages three equally weighted components. Each component saturates
// at 1.0, so a single strong dimension cannot push the composite past its
// third of the total.
func (s *EngagementScorer) Score(metrics entities.MeetingMetrics, participation entities.ParticipantInsights) entities.EngagementScore {
	content := math.Min(float64(metrics.WordCount)/contentSaturationWords, 1.0)

	balance := participation.ParticipationBalance
	if participation.Degraded() {
		balance = neutralBalance
	}

	topics := math.Min(float64(metrics.UniqueTopicCount)/topicSaturationCount, 1.0)

	overall := (content + balance + topics) / 3

	return entities.EngagementScore{
		OverallScore: round1(overall * 100),
		Components: entities.EngagementComponents{
			ContentRichness:      round1(content * 100),
			ParticipationBalance: round1(balance * 100),
			TopicDiversity:       round1(topics * 100),
		},
		Recommendations: recommendations(overall),
	}
}

// recommendations returns fixed advice strings for the score tier
func recommendations(overall float64) []string {
	switch {
	case overall < lowEngagementThreshold:
		return []string{
			"Consider shorter, more focused meetings",
			"Encourage more participant interaction",
			"Prepare agenda to stay on topic",
		}
	case overall < moderateEngagementThreshold:
		return []string{
			"Good meeting structure, could improve participation balance",
			"Consider time management for more efficient discussions",
		}
	default:
		return []string{
			"Excellent meeting engagement",
			"Maintain current participation levels",
		}
	}
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
