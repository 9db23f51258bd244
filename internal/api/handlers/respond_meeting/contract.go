package respond_meeting

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/meetings/models"
)

type MeetingService interface {
	Respond(ctx context.Context, meetingID int64, req *models.RespondMeetingRequest) (*models.MeetingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
