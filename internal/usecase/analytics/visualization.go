package analytics

import (
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Radar axis names, aligned with the engagement component order
var radarMetrics = []string{"Content", "Participation", "Topics"}

// VisualizationAdapter reshapes analyzer outputs into chart-ready series. It
// never recomputes values; labels and values are emitted in the deterministic
// speaker order recorded by the participation analyzer.
type VisualizationAdapter struct{}

// NewVisualizationAdapter creates a new VisualizationAdapter
func NewVisualizationAdapter() *VisualizationAdapter {
	return &VisualizationAdapter{}
}

// Build assembles the chart bundle from already-computed analyzer results
func (v *VisualizationAdapter) Build(
	participation entities.ParticipantInsights,
	temporal entities.TemporalPatterns,
	engagement entities.EngagementScore,
) entities.VisualizationBundle {
	return entities.VisualizationBundle{
		SpeakerPieChart:  speakerPieChart(participation),
		ActivityTimeline: activityTimeline(temporal),
		EngagementRadar:  engagementRadar(engagement),
	}
}

func speakerPieChart(p entities.ParticipantInsights) entities.PieChart {
	labels := make([]string, 0, len(p.SpeakerOrder))
	values := make([]float64, 0, len(p.SpeakerOrder))
	for _, speaker := range p.SpeakerOrder {
		labels = append(labels, speaker)
		values = append(values, p.SpeakingTimeDistribution[speaker].TimeSeconds)
	}
	return entities.PieChart{Labels: labels, Values: values}
}

func activityTimeline(t entities.TemporalPatterns) entities.TimeSeries {
	points := make([]int, len(t.ActivityOverTime))
	for i := range points {
		points[i] = i
	}
	return entities.TimeSeries{
		TimePoints:     points,
		ActivityLevels: t.ActivityOverTime,
	}
}

func engagementRadar(e entities.EngagementScore) entities.RadarChart {
	return entities.RadarChart{
		Metrics: radarMetrics,
		Scores: []float64{
			e.Components.ContentRichness,
			e.Components.ParticipationBalance,
			e.Components.TopicDiversity,
		},
	}
}
