package realtime

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// Названия событий "сообщение создано". Бэкенды платформы исторически
// публикуют событие под разными именами, поэтому подписка слушает
// фиксированный набор алиасов.
var messageCreatedAliases = []string{
	"message.created",
	"message_created",
	"new-message",
	"client-message-created",
}

// Служебные события протокола, не доставляемые подписчикам
const (
	eventConnectionEstablished = "connection_established"
	eventSubscriptionSucceeded = "subscription_succeeded"
	eventPong                  = "pong"
)

// frame кадр wire-протокола pub/sub канала.
// Поле data может быть как объектом, так и JSON-строкой с объектом внутри
// (вариативность бэкенда), поэтому декодируется в два шага.
type frame struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// MessageEvent событие "в диалоге создано сообщение"
type MessageEvent struct {
	ConversationID string
	Message        *domain.Message
}

// messagePayload тело события message-created
type messagePayload struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// isMessageCreated проверяет имя события по набору алиасов
func isMessageCreated(event string) bool {
	for _, alias := range messageCreatedAliases {
		if event == alias {
			return true
		}
	}
	return false
}

// decodePayload декодирует поле data кадра.
// Сначала пробует прямой объект, затем вариант "JSON в строке".
func decodePayload(data json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}

	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	return json.Unmarshal([]byte(inner), out)
}

// conversationIDFromChannel извлекает id диалога из имени канала.
// Канал имеет вид "<prefix>.<conversation_id>".
func conversationIDFromChannel(channel, prefix string) string {
	return strings.TrimPrefix(channel, prefix+".")
}
