package convcache

import (
	"sync"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// Cache кеш страниц сообщений по диалогам.
//
// Два пути записи:
//   - Reconcile: страница, полученная от платформы, заменяет запись,
//     сохраняя ранее полученные real-time сообщения, которых нет в выборке;
//   - Append: real-time событие дописывает сообщение в конец страницы
//     (или создает одноэлементную страницу, если записи еще нет).
//
// Оба пути дедуплицируют по id сообщения: доставка событий не гарантирует
// exactly-once, и событие может гоняться с ответом пагинации.
type Cache struct {
	mu    sync.RWMutex
	pages map[string]*domain.MessagePage
}

// New создает кеш диалогов
func New() *Cache {
	return &Cache{pages: make(map[string]*domain.MessagePage)}
}

// Get возвращает снимок закешированной страницы диалога.
// Снимок не разделяет слайс сообщений с кешем, чтобы конкурентный
// Append не гонялся с читателями.
func (c *Cache) Get(conversationID string) (*domain.MessagePage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page, ok := c.pages[conversationID]
	if !ok {
		return nil, false
	}
	return snapshot(page), true
}

// Append дописывает real-time сообщение в конец страницы диалога.
// Если записи нет - создает одноэлементную страницу.
// Возвращает false, если сообщение уже присутствует (дубль по id).
func (c *Cache) Append(conversationID string, msg *domain.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	page, ok := c.pages[conversationID]
	if !ok {
		c.pages[conversationID] = &domain.MessagePage{
			ConversationID: conversationID,
			Messages:       []*domain.Message{msg},
		}
		return true
	}

	if containsMessage(page.Messages, msg.ID) {
		return false
	}

	page.Messages = append(page.Messages, msg)
	return true
}

// Reconcile заменяет запись диалога страницей, полученной от платформы.
// Сообщения, дописанные real-time событиями до прихода ответа и
// отсутствующие в выборке, переносятся в конец новой страницы
// в порядке их получения.
func (c *Cache) Reconcile(conversationID string, fetched *domain.MessagePage) *domain.MessagePage {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := &domain.MessagePage{
		ConversationID: conversationID,
		Messages:       make([]*domain.Message, 0, len(fetched.Messages)),
		NextCursor:     fetched.NextCursor,
	}

	seen := make(map[string]struct{}, len(fetched.Messages))
	for _, m := range fetched.Messages {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		merged.Messages = append(merged.Messages, m)
	}

	if prev, ok := c.pages[conversationID]; ok {
		for _, m := range prev.Messages {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			// Переносим только сообщения не старше хвоста выборки:
			// все более ранние платформа уже вернула бы в странице
			if len(merged.Messages) > 0 {
				tail := merged.Messages[len(merged.Messages)-1]
				if m.CreatedAt.Before(tail.CreatedAt) {
					continue
				}
			}
			seen[m.ID] = struct{}{}
			merged.Messages = append(merged.Messages, m)
		}
	}

	c.pages[conversationID] = merged
	return snapshot(merged)
}

// Invalidate удаляет запись диалога
func (c *Cache) Invalidate(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.pages, conversationID)
}

// ConversationIDs возвращает id всех закешированных диалогов
func (c *Cache) ConversationIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.pages))
	for id := range c.pages {
		ids = append(ids, id)
	}
	return ids
}

func snapshot(page *domain.MessagePage) *domain.MessagePage {
	return &domain.MessagePage{
		ConversationID: page.ConversationID,
		Messages:       append([]*domain.Message(nil), page.Messages...),
		NextCursor:     page.NextCursor,
	}
}

func containsMessage(messages []*domain.Message, id string) bool {
	for _, m := range messages {
		if m.ID == id {
			return true
		}
	}
	return false
}
