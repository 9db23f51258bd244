package get_messages

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/conversations/models"
)

type ConversationService interface {
	GetMessages(ctx context.Context, userID int64, conversationID, cursor string, limit int) (*models.MessagePageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
