package send_message

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/service/conversations/models"
)

type ConversationService interface {
	SendMessage(ctx context.Context, conversationID string, req *models.SendMessageRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
