package platformapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// ListBookedSlots получает занятые слоты пользователя
func (c *Client) ListBookedSlots(ctx context.Context, userID int64) ([]*domain.BookedSlot, error) {
	var dtos []SlotDTO
	err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/users/%d/slots", userID), "", nil, &dtos, http.StatusOK)
	if err != nil {
		return nil, err
	}

	slots := make([]*domain.BookedSlot, 0, len(dtos))
	for i := range dtos {
		slots = append(slots, dtos[i].ToDomain())
	}
	return slots, nil
}

// CreateMeeting создает встречу.
// idempotencyKey защищает от дублей при повторной отправке.
func (c *Client) CreateMeeting(ctx context.Context, req *CreateMeetingRequest, idempotencyKey string) (*domain.Meeting, error) {
	var dto MeetingDTO
	err := c.doJSON(ctx, http.MethodPost, "/meetings", idempotencyKey, req, &dto, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return dto.ToDomain(), nil
}

// ListMeetings получает встречи пользователя
func (c *Client) ListMeetings(ctx context.Context, userID int64) ([]*domain.Meeting, error) {
	var dtos []MeetingDTO
	err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/users/%d/meetings", userID), "", nil, &dtos, http.StatusOK)
	if err != nil {
		return nil, err
	}

	meetings := make([]*domain.Meeting, 0, len(dtos))
	for i := range dtos {
		meetings = append(meetings, dtos[i].ToDomain())
	}
	return meetings, nil
}

// RespondMeeting отвечает на приглашение (accepted/declined)
func (c *Client) RespondMeeting(ctx context.Context, meetingID int64, response domain.MeetingStatus) (*domain.Meeting, error) {
	body := map[string]string{"response": string(response)}

	var dto MeetingDTO
	err := c.doJSON(ctx, http.MethodPatch,
		fmt.Sprintf("/meetings/%d/respond", meetingID), "", body, &dto, http.StatusOK)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return dto.ToDomain(), nil
}

// CancelMeeting отменяет встречу
func (c *Client) CancelMeeting(ctx context.Context, meetingID int64) error {
	err := c.doJSON(ctx, http.MethodPatch,
		fmt.Sprintf("/meetings/%d/cancel", meetingID), "", nil, nil, http.StatusOK)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return ErrMeetingNotFound
		}
		return err
	}
	return nil
}
