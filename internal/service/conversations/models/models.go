package models

import (
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/pkg/ptr"
)

// Request модели

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	UserID int64  `json:"userId"`
	Body   string `json:"body"`
}

// Response модели

// ConversationResponse диалог
type ConversationResponse struct {
	ID             string  `json:"id"`
	Subject        string  `json:"subject,omitempty"`
	ParticipantIDs []int64 `json:"participantIds"`
	LastMessageAt  *string `json:"lastMessageAt,omitempty"` // RFC3339
	CreatedAt      string  `json:"createdAt"`
}

// ConversationListResponse список диалогов
type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int                    `json:"total"`
}

// ReadReceiptResponse отметка о прочтении
type ReadReceiptResponse struct {
	UserID int64  `json:"userId"`
	ReadAt string `json:"readAt"` // RFC3339
}

// MessageResponse сообщение диалога
type MessageResponse struct {
	ID             string                `json:"id"`
	ConversationID string                `json:"conversationId"`
	SenderID       int64                 `json:"senderId"`
	Body           string                `json:"body"`
	ReadReceipts   []ReadReceiptResponse `json:"readReceipts"`
	CreatedAt      string                `json:"createdAt"` // RFC3339
}

// MessagePageResponse страница сообщений
type MessagePageResponse struct {
	ConversationID string            `json:"conversationId"`
	Messages       []MessageResponse `json:"messages"`
	NextCursor     string            `json:"nextCursor,omitempty"`
}

// FromDomainConversation конвертирует доменную модель в response
func FromDomainConversation(c *domain.Conversation) *ConversationResponse {
	resp := &ConversationResponse{
		ID:             c.ID,
		Subject:        c.Subject,
		ParticipantIDs: c.ParticipantIDs,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
	if c.LastMessageAt != nil {
		resp.LastMessageAt = ptr.Ptr(c.LastMessageAt.Format(time.RFC3339))
	}
	return resp
}

// FromDomainConversationList конвертирует список диалогов в response
func FromDomainConversationList(conversations []*domain.Conversation) *ConversationListResponse {
	resp := &ConversationListResponse{
		Conversations: make([]ConversationResponse, 0, len(conversations)),
		Total:         len(conversations),
	}
	for _, c := range conversations {
		resp.Conversations = append(resp.Conversations, *FromDomainConversation(c))
	}
	return resp
}

// FromDomainMessage конвертирует сообщение в response
func FromDomainMessage(m *domain.Message) *MessageResponse {
	receipts := make([]ReadReceiptResponse, 0, len(m.ReadReceipts))
	for _, r := range m.ReadReceipts {
		receipts = append(receipts, ReadReceiptResponse{
			UserID: r.UserID,
			ReadAt: r.ReadAt.Format(time.RFC3339),
		})
	}
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Body:           m.Body,
		ReadReceipts:   receipts,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainMessagePage конвертирует страницу сообщений в response
func FromDomainMessagePage(p *domain.MessagePage) *MessagePageResponse {
	resp := &MessagePageResponse{
		ConversationID: p.ConversationID,
		Messages:       make([]MessageResponse, 0, len(p.Messages)),
		NextCursor:     p.NextCursor,
	}
	for _, m := range p.Messages {
		resp.Messages = append(resp.Messages, *FromDomainMessage(m))
	}
	return resp
}
