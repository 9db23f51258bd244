package meetings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/service/meetings/models"
)

// Service сервис для работы со встречами.
// Операции проксируются платформе; мутации инвалидируют кеш занятых
// слотов участников, чтобы проверки доступности видели свежие брони.
type Service struct {
	platform  PlatformClient
	slotCache SlotCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(platform PlatformClient, slotCache SlotCache, logger Logger) *Service {
	return &Service{
		platform:  platform,
		slotCache: slotCache,
		logger:    logger,
	}
}

// GetUserMeetings получает встречи пользователя
func (s *Service) GetUserMeetings(ctx context.Context, userID int64) (*models.MeetingListResponse, error) {
	s.logger.Info("GetUserMeetings: fetching meetings for user=%d", userID)

	meetings, err := s.platform.ListMeetings(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserMeetings: platform error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("GetUserMeetings: successfully fetched %d meetings for user=%d", len(meetings), userID)
	return models.FromDomainMeetingList(meetings), nil
}

// Respond отвечает на приглашение на встречу (accepted/declined).
// Любой ответ меняет занятость слотов, поэтому кеш обоих участников
// инвалидируется.
func (s *Service) Respond(ctx context.Context, meetingID int64, req *models.RespondMeetingRequest) (*models.MeetingResponse, error) {
	s.logger.Info("Respond: meeting id=%d, user=%d, response=%s", meetingID, req.UserID, req.Response)

	status, ok := models.ToDomainMeetingResponse(req.Response)
	if !ok {
		s.logger.Warn("Respond: invalid response=%s for meeting id=%d", req.Response, meetingID)
		return nil, fmt.Errorf("%w: response must be accepted or declined", ErrInvalidResponse)
	}

	meeting, err := s.platform.RespondMeeting(ctx, meetingID, status)
	if err != nil {
		if errors.Is(err, platformapi.ErrMeetingNotFound) {
			s.logger.Warn("Respond: meeting id=%d not found", meetingID)
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("Respond: platform error for meeting id=%d: %v", meetingID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.slotCache.Invalidate(meeting.OrganizerID, meeting.ParticipantID)

	s.logger.Info("Respond: meeting id=%d now %s", meetingID, meeting.Status)
	return models.FromDomainMeeting(meeting), nil
}

// Cancel отменяет встречу.
// Платформа сама проверяет права; шлюз инвалидирует кеш слотов.
func (s *Service) Cancel(ctx context.Context, meetingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling meeting id=%d by user=%d", meetingID, userID)

	if err := s.platform.CancelMeeting(ctx, meetingID); err != nil {
		if errors.Is(err, platformapi.ErrMeetingNotFound) {
			s.logger.Warn("Cancel: meeting id=%d not found", meetingID)
			return ErrMeetingNotFound
		}
		s.logger.Error("Cancel: platform error for meeting id=%d: %v", meetingID, err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// ID второго участника неизвестен без дополнительного чтения,
	// поэтому инвалидируем хотя бы инициатора
	s.slotCache.Invalidate(userID)

	s.logger.Info("Cancel: successfully cancelled meeting id=%d", meetingID)
	return nil
}
