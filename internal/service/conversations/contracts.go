package conversations

import (
	"context"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/realtime"
)

// PlatformClient интерфейс клиента REST API платформы
type PlatformClient interface {
	ListConversations(ctx context.Context, userID int64) ([]*domain.Conversation, error)
	ListMessages(ctx context.Context, conversationID, cursor string, limit int) (*domain.MessagePage, error)
	SendMessage(ctx context.Context, conversationID string, req *platformapi.SendMessageRequest) (*domain.Message, error)
	MarkMessageRead(ctx context.Context, conversationID, messageID string, userID int64) error
}

// ConversationCache интерфейс кеша страниц сообщений
type ConversationCache interface {
	Get(conversationID string) (*domain.MessagePage, bool)
	Append(conversationID string, msg *domain.Message) bool
	Reconcile(conversationID string, fetched *domain.MessagePage) *domain.MessagePage
	Invalidate(conversationID string)
	ConversationIDs() []string
}

// RealtimeClient интерфейс клиента pub/sub канала
type RealtimeClient interface {
	Subscribe(conversationID string) error
	Unsubscribe(conversationID string)
	Events() <-chan realtime.MessageEvent
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
