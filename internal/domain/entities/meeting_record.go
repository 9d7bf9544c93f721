package entities

import (
	"fmt"
)

// UnknownSpeaker is the sentinel speaker label for segments without diarization info
const UnknownSpeaker = "Unknown"

// Segment represents one contiguous attributed span of speaking time.
// Segments may overlap and carry no ordering guarantee; each one is treated
// independently by the analyzers.
type Segment struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time" validate:"gte=0"`
	EndTime   float64 `json:"end_time" validate:"gtefield=StartTime"`
	Duration  float64 `json:"duration"`
}

// MeetingRecord is the structured input produced by external transcription and
// diarization collaborators. It is immutable for the analytics engine.
type MeetingRecord struct {
	TranscriptText       string    `json:"transcript_text"`
	SummaryText          string    `json:"summary_text,omitempty"`
	AudioDurationSeconds float64   `json:"audio_duration_seconds" validate:"gte=0"`
	Segments             []Segment `json:"segments" validate:"dive"`
}

// NewMeetingRecord builds a validated MeetingRecord. Segments with a zero
// duration get it derived from their timing; invalid timing is rejected here,
// the engine does not sanitize segments downstream.
func NewMeetingRecord(transcript string, audioDurationSeconds float64, segments []Segment) (*MeetingRecord, error) {
	rec := &MeetingRecord{
		TranscriptText:       transcript,
		AudioDurationSeconds: audioDurationSeconds,
		Segments:             segments,
	}
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Normalize fills derived fields: segment duration from timing, missing
// speaker labels with the Unknown sentinel.
func (r *MeetingRecord) Normalize() {
	for i := range r.Segments {
		s := &r.Segments[i]
		if s.Duration == 0 {
			s.Duration = s.EndTime - s.StartTime
		}
		if s.Speaker == "" {
			s.Speaker = UnknownSpeaker
		}
	}
}

// Validate checks structural invariants of the record
func (r *MeetingRecord) Validate() error {
	if r.AudioDurationSeconds < 0 {
		return fmt.Errorf("audio duration must be >= 0, got %f", r.AudioDurationSeconds)
	}
	for i, s := range r.Segments {
		if s.StartTime < 0 {
			return fmt.Errorf("segment %d: start time must be >= 0, got %f", i, s.StartTime)
		}
		if s.EndTime < s.StartTime {
			return fmt.Errorf("segment %d: end time %f before start time %f", i, s.EndTime, s.StartTime)
		}
		if s.Duration < 0 {
			return fmt.Errorf("segment %d: duration must be >= 0, got %f", i, s.Duration)
		}
	}
	return nil
}

// DurationMinutes returns the audio duration in minutes
func (r *MeetingRecord) DurationMinutes() float64 {
	return r.AudioDurationSeconds / 60
}
