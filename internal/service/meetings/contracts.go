package meetings

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// PlatformClient интерфейс клиента REST API платформы
type PlatformClient interface {
	ListMeetings(ctx context.Context, userID int64) ([]*domain.Meeting, error)
	RespondMeeting(ctx context.Context, meetingID int64, response domain.MeetingStatus) (*domain.Meeting, error)
	CancelMeeting(ctx context.Context, meetingID int64) error
}

// SlotCache интерфейс кеша занятых слотов
type SlotCache interface {
	Invalidate(userIDs ...int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
