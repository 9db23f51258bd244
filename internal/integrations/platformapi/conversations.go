package platformapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// ListConversations получает диалоги пользователя
func (c *Client) ListConversations(ctx context.Context, userID int64) ([]*domain.Conversation, error) {
	var dtos []ConversationDTO
	err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/users/%d/conversations", userID), "", nil, &dtos, http.StatusOK)
	if err != nil {
		return nil, err
	}

	conversations := make([]*domain.Conversation, 0, len(dtos))
	for i := range dtos {
		conversations = append(conversations, dtos[i].ToDomain())
	}
	return conversations, nil
}

// ListMessages получает страницу сообщений диалога.
// cursor - курсор пагинации (пустой = первая страница),
// limit - размер страницы (0 = серверный дефолт).
func (c *Client) ListMessages(ctx context.Context, conversationID, cursor string, limit int) (*domain.MessagePage, error) {
	path := fmt.Sprintf("/conversations/%s/messages", url.PathEscape(conversationID))

	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var dto MessagePageDTO
	err := c.doJSON(ctx, http.MethodGet, path, "", nil, &dto, http.StatusOK)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	page := &domain.MessagePage{
		ConversationID: conversationID,
		Messages:       make([]*domain.Message, 0, len(dto.Messages)),
		NextCursor:     dto.NextCursor,
	}
	for i := range dto.Messages {
		page.Messages = append(page.Messages, dto.Messages[i].ToDomain())
	}
	return page, nil
}

// SendMessage отправляет сообщение в диалог
func (c *Client) SendMessage(ctx context.Context, conversationID string, req *SendMessageRequest) (*domain.Message, error) {
	var dto MessageDTO
	err := c.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/conversations/%s/messages", url.PathEscape(conversationID)), "", req, &dto, http.StatusCreated)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return dto.ToDomain(), nil
}

// MarkMessageRead отмечает сообщение прочитанным пользователем
func (c *Client) MarkMessageRead(ctx context.Context, conversationID, messageID string, userID int64) error {
	body := map[string]int64{"user_id": userID}

	err := c.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/conversations/%s/messages/%s/read",
			url.PathEscape(conversationID), url.PathEscape(messageID)),
		"", body, nil, http.StatusNoContent)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}
