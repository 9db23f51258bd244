package domain

import "time"

// Conversation диалог между участниками платформы.
// Сущность принадлежит платформе; шлюз держит только read-only кеш.
type Conversation struct {
	ID             string
	Subject        string
	ParticipantIDs []int64
	LastMessageAt  *time.Time
	CreatedAt      time.Time
}

// ReadReceipt отметка о прочтении сообщения пользователем
type ReadReceipt struct {
	UserID int64
	ReadAt time.Time
}

// Message сообщение в диалоге
type Message struct {
	ID             string
	ConversationID string
	SenderID       int64
	Body           string
	ReadReceipts   []ReadReceipt
	CreatedAt      time.Time
}

// ReadBy возвращает true, если пользователь уже читал сообщение
func (m *Message) ReadBy(userID int64) bool {
	for _, r := range m.ReadReceipts {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// MessagePage страница кеша сообщений одного диалога.
// Сообщения упорядочены по времени получения (старые первыми).
type MessagePage struct {
	ConversationID string
	Messages       []*Message
	NextCursor     string // Курсор следующей страницы, пустой = конец
}
