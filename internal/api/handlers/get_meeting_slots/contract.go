package get_meeting_slots

import (
	"context"

	getMeetingSlots "github.com/m04kA/EVP-GatewayService/internal/usecase/get_meeting_slots"
)

type GetMeetingSlotsUseCase interface {
	Execute(ctx context.Context, req *getMeetingSlots.Request) (*getMeetingSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
