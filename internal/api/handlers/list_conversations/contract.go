package list_conversations

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/conversations/models"
)

type ConversationService interface {
	GetUserConversations(ctx context.Context, userID int64) (*models.ConversationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
