package analytics

import (
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestAnalyzeTemporal_NoSegments(t *testing.T) {
	p := NewTemporalAnalyzer().Analyze(nil)

	if p.Analysis != entities.MarkerNoTemporalData {
		t.Fatalf("expected no-data marker got %q", p.Analysis)
	}
	if len(p.ActivityOverTime) != 0 {
		t.Fatalf("expected no activity bins got %d", len(p.ActivityOverTime))
	}
}

func TestAnalyzeTemporal_NineBins(t *testing.T) {
	segments := []entities.Segment{
		{Speaker: "Alice", StartTime: 0, EndTime: 90, Duration: 90},
	}

	p := NewTemporalAnalyzer().Analyze(segments)

	if len(p.ActivityOverTime) != 9 {
		t.Fatalf("expected 9 bins got %d", len(p.ActivityOverTime))
	}
	if p.EngagementTrend != entities.EngagementTrendStable {
		t.Fatalf("expected stable trend got %q", p.EngagementTrend)
	}
}

func TestAnalyzeTemporal_AttributionByStartTime(t *testing.T) {
	// maxEnd 90 makes bin width 10. A segment spanning several bins lands
	// entirely in the bin of its start time.
	segments := []entities.Segment{
		{Speaker: "Alice", StartTime: 5, EndTime: 90, Duration: 85},
		{Speaker: "Bob", StartTime: 25, EndTime: 30, Duration: 5},
	}

	p := NewTemporalAnalyzer().Analyze(segments)

	if p.ActivityOverTime[0] != 85 {
		t.Fatalf("expected 85 in first bin got %f", p.ActivityOverTime[0])
	}
	if p.ActivityOverTime[2] != 5 {
		t.Fatalf("expected 5 in third bin got %f", p.ActivityOverTime[2])
	}
	if p.PeakActivityTime != 0 {
		t.Fatalf("expected peak at bin start 0 got %f", p.PeakActivityTime)
	}
}

func TestAnalyzeTemporal_PeakTiesResolveEarliest(t *testing.T) {
	// Equal activity in two bins; the earlier bin is reported as the peak.
	segments := []entities.Segment{
		{Speaker: "Alice", StartTime: 0, EndTime: 10, Duration: 10},
		{Speaker: "Bob", StartTime: 80, EndTime: 90, Duration: 10},
	}

	p := NewTemporalAnalyzer().Analyze(segments)

	if p.PeakActivityTime != 0 {
		t.Fatalf("expected earliest peak 0 got %f", p.PeakActivityTime)
	}
}

func TestAnalyzeTemporal_SegmentAtMaxEndDropped(t *testing.T) {
	// The bin test is half-open even for the last bin, so a segment starting
	// exactly at the max end time is not counted.
	segments := []entities.Segment{
		{Speaker: "Alice", StartTime: 0, EndTime: 90, Duration: 90},
		{Speaker: "Bob", StartTime: 90, EndTime: 90, Duration: 0},
	}

	p := NewTemporalAnalyzer().Analyze(segments)

	var total float64
	for _, v := range p.ActivityOverTime {
		total += v
	}
	if total != 90 {
		t.Fatalf("expected only the first segment counted, total %f", total)
	}
}
