package analytics

import (
	"math"
	"sort"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// neutralBalance is the midpoint returned when no speaking time is available
const neutralBalance = 0.5

// ParticipationAnalyzer aggregates per-speaker talk time and computes how
// evenly speaking time is distributed
type ParticipationAnalyzer struct{}

// NewParticipationAnalyzer creates a new ParticipationAnalyzer
func NewParticipationAnalyzer() *ParticipationAnalyzer {
	return &ParticipationAnalyzer{}
}

// Analyze aggregates segment durations per speaker. With no segments it
// returns the documented insufficient-data marker with the neutral balance, a
// degraded but valid result.
func (a *ParticipationAnalyzer) Analyze(segments []entities.Segment) entities.ParticipantInsights {
	if len(segments) == 0 {
		return entities.ParticipantInsights{
			Analysis:             entities.MarkerInsufficientSpeakerData,
			ParticipationBalance: neutralBalance,
		}
	}

	// First-encountered order is kept for stable dominant-speaker tie breaks
	// and chart label ordering.
	times := make(map[string]float64)
	order := make([]string, 0)
	for _, s := range segments {
		speaker := s.Speaker
		if speaker == "" {
			speaker = entities.UnknownSpeaker
		}
		if _, seen := times[speaker]; !seen {
			order = append(order, speaker)
		}
		times[speaker] += s.Duration
	}

	var total float64
	for _, t := range times {
		total += t
	}

	distribution := make(map[string]entities.SpeakerTime, len(times))
	for speaker, t := range times {
		percentage := 0.0
		if total > 0 {
			percentage = math.Round(t/total*100*100) / 100
		}
		distribution[speaker] = entities.SpeakerTime{
			TimeSeconds: t,
			Percentage:  percentage,
		}
	}

	dominant := order[0]
	for _, speaker := range order[1:] {
		if times[speaker] > times[dominant] {
			dominant = speaker
		}
	}

	return entities.ParticipantInsights{
		SpeakingTimeDistribution: distribution,
		SpeakerOrder:             order,
		DominantSpeaker:          dominant,
		ParticipationBalance:     participationBalance(times),
	}
}

// participationBalance computes a 0-1 balance score where 1 is perfectly
// balanced, via a normalized Gini coefficient over aggregated speaking times.
func participationBalance(times map[string]float64) float64 {
	if len(times) == 0 {
		return neutralBalance
	}

	sorted := make([]float64, 0, len(times))
	var total float64
	for _, t := range times {
		sorted = append(sorted, t)
		total += t
	}
	if total == 0 {
		return neutralBalance
	}
	sort.Float64s(sorted)

	n := float64(len(sorted))
	var gini float64
	for i, t := range sorted {
		rank := float64(i + 1)
		gini += (2*rank - n - 1) * t
	}
	gini /= n * total

	return 1 - gini
}
