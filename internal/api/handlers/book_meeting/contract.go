package book_meeting

import (
	"context"

	bookMeeting "github.com/m04kA/EVP-GatewayService/internal/usecase/book_meeting"
)

type BookMeetingUseCase interface {
	Execute(ctx context.Context, req *bookMeeting.Request) (*bookMeeting.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
