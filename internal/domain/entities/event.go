package entities

import (
	"time"

	"github.com/google/uuid"
)

// EventType constants
const (
	EventTypeSuggested = "suggested"
)

// EventCandidate is a heuristically proposed follow-up calendar event derived
// from transcript phrasing, not a confirmed scheduling action
type EventCandidate struct {
	ID              uuid.UUID `json:"event_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	SuggestedDate   time.Time `json:"suggested_date"`
	SuggestedTime   string    `json:"suggested_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Confidence      float64   `json:"confidence"`
	Type            string    `json:"type"`
	Participants    []string  `json:"participants"`
}

// NewEventCandidate creates a suggested event with a fresh ID
func NewEventCandidate(title, description string) EventCandidate {
	return EventCandidate{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		DurationMinutes: 30,
		Type:            EventTypeSuggested,
		Participants:    []string{},
	}
}
