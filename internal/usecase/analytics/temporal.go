package analytics

import (
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// activityBins is the fixed number of time windows the meeting is split into
const activityBins = 9

// TemporalAnalyzer bins segment activity into fixed time windows and locates
// the peak activity window
type TemporalAnalyzer struct{}

// NewTemporalAnalyzer creates a new TemporalAnalyzer
func NewTemporalAnalyzer() *TemporalAnalyzer {
	return &TemporalAnalyzer{}
}

// Analyze partitions [0, maxEndTime] into 9 equal-width bins and sums segment
// durations per bin. A segment is attributed to the bin its start time falls
// into; spans crossing bin boundaries are not split. With no segments it
// returns the documented no-temporal-data marker.
func (a *TemporalAnalyzer) Analyze(segments []entities.Segment) entities.TemporalPatterns {
	if len(segments) == 0 {
		return entities.TemporalPatterns{
			Analysis: entities.MarkerNoTemporalData,
		}
	}

	var maxEnd float64
	for _, s := range segments {
		if s.EndTime > maxEnd {
			maxEnd = s.EndTime
		}
	}

	binWidth := maxEnd / activityBins
	activity := make([]float64, activityBins)
	for _, s := range segments {
		for i := 0; i < activityBins; i++ {
			binStart := binWidth * float64(i)
			binEnd := binWidth * float64(i+1)
			if s.StartTime >= binStart && s.StartTime < binEnd {
				activity[i] += s.Duration
				break
			}
		}
	}

	// Earliest bin wins ties.
	peakBin := 0
	for i, v := range activity {
		if v > activity[peakBin] {
			peakBin = i
		}
	}

	return entities.TemporalPatterns{
		ActivityOverTime: activity,
		PeakActivityTime: binWidth * float64(peakBin),
		EngagementTrend:  entities.EngagementTrendStable,
	}
}
