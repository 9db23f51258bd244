package models

import (
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// Request модели

// RespondMeetingRequest запрос на ответ на приглашение
type RespondMeetingRequest struct {
	UserID   int64  `json:"userId"`
	Response string `json:"response"` // "accepted" / "declined"
}

// Response модели

// MeetingResponse ответ с данными встречи
type MeetingResponse struct {
	ID            int64  `json:"id"`
	OrganizerID   int64  `json:"organizerId"`
	ParticipantID int64  `json:"participantId"`
	Topic         string `json:"topic"`
	Location      string `json:"location,omitempty"`
	StartTime     string `json:"startTime"` // RFC3339
	EndTime       string `json:"endTime"`   // RFC3339
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// MeetingListResponse список встреч
type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Total    int               `json:"total"`
}

// FromDomainMeeting конвертирует доменную модель в response
func FromDomainMeeting(m *domain.Meeting) *MeetingResponse {
	return &MeetingResponse{
		ID:            m.ID,
		OrganizerID:   m.OrganizerID,
		ParticipantID: m.ParticipantID,
		Topic:         m.Topic,
		Location:      m.Location,
		StartTime:     m.StartTime.Format(time.RFC3339),
		EndTime:       m.EndTime.Format(time.RFC3339),
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     m.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainMeetingList конвертирует список встреч в response
func FromDomainMeetingList(meetings []*domain.Meeting) *MeetingListResponse {
	resp := &MeetingListResponse{
		Meetings: make([]MeetingResponse, 0, len(meetings)),
		Total:    len(meetings),
	}
	for _, m := range meetings {
		resp.Meetings = append(resp.Meetings, *FromDomainMeeting(m))
	}
	return resp
}

// ToDomainMeetingResponse конвертирует строковый ответ в статус встречи
func ToDomainMeetingResponse(s string) (domain.MeetingStatus, bool) {
	switch domain.MeetingStatus(s) {
	case domain.MeetingStatusAccepted, domain.MeetingStatusDeclined:
		return domain.MeetingStatus(s), true
	default:
		return "", false
	}
}
