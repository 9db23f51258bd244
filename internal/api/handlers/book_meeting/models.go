package book_meeting

import (
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	bookMeeting "github.com/m04kA/EVP-GatewayService/internal/usecase/book_meeting"
	"github.com/m04kA/EVP-GatewayService/pkg/types"
)

// BookMeetingRequest HTTP request model
type BookMeetingRequest struct {
	OrganizerID   int64  `json:"organizerId"`
	ParticipantID int64  `json:"participantId"`
	Topic         string `json:"topic"`
	Location      string `json:"location,omitempty"`
	Date          string `json:"date"`      // "2025-09-01"
	StartTime     string `json:"startTime"` // "10:00"
}

// MeetingResponse HTTP response model
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
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookMeetingRequest) ToUseCaseRequest() (*bookMeeting.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookMeeting.Request{
		OrganizerID:   r.OrganizerID,
		ParticipantID: r.ParticipantID,
		Topic:         r.Topic,
		Location:      r.Location,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookMeeting.Response) *MeetingResponse {
	return &MeetingResponse{
		ID:            resp.ID,
		OrganizerID:   resp.OrganizerID,
		ParticipantID: resp.ParticipantID,
		Topic:         resp.Topic,
		Location:      resp.Location,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
