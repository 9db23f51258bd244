package list_meetings

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/meetings/models"
)

type MeetingService interface {
	GetUserMeetings(ctx context.Context, userID int64) (*models.MeetingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
