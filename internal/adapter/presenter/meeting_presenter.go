package presenter

import (
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/audio"
)

// ToMeetingResponse converts a history entry to its full response DTO
func ToMeetingResponse(e *entities.MeetingHistoryEntry) *meeting.MeetingResponse {
	if e == nil {
		return nil
	}
	return &meeting.MeetingResponse{
		ID:              e.ID.String(),
		DurationSeconds: e.DurationSeconds,
		SpeakerCount:    e.SpeakerCount,
		WordCount:       e.WordCount,
		EngagementScore: e.EngagementScore,
		SentimentTrend:  e.SentimentTrend,
		Report:          e.Report.Data(),
		EventCandidates: e.EventCandidates.Data(),
		CreatedAt:       e.CreatedAt,
	}
}

// ToMeetingListResponse converts history entries to a paginated listing
func ToMeetingListResponse(entries []entities.MeetingHistoryEntry, total int64, page, pageSize int) *meeting.MeetingListResponse {
	summaries := make([]meeting.MeetingSummaryResponse, len(entries))
	for i, e := range entries {
		summaries[i] = meeting.MeetingSummaryResponse{
			ID:              e.ID.String(),
			DurationSeconds: e.DurationSeconds,
			SpeakerCount:    e.SpeakerCount,
			WordCount:       e.WordCount,
			EngagementScore: e.EngagementScore,
			SentimentTrend:  e.SentimentTrend,
			CreatedAt:       e.CreatedAt,
		}
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &meeting.MeetingListResponse{
		Meetings:   summaries,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ToEnhanceAudioResponse converts an enhancement result to its response DTO
func ToEnhanceAudioResponse(res audio.EnhanceResult) *meeting.EnhanceAudioResponse {
	return &meeting.EnhanceAudioResponse{
		Samples:            res.Samples,
		AppliedMethods:     res.AppliedMethods,
		OriginalStats:      res.OriginalStats,
		EnhancedStats:      res.EnhancedStats,
		ImprovementMetrics: res.ImprovementMetrics,
	}
}
