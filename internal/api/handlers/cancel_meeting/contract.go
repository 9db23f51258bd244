package cancel_meeting

import "context"

type MeetingService interface {
	Cancel(ctx context.Context, meetingID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
