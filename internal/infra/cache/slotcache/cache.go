package slotcache

import (
	"sync"
	"time"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// Cache кеш занятых слотов по пользователям.
//
// Записи заменяются целиком и инвалидируются при любой мутации встреч
// (создание, ответ, отмена), чтобы последующие проверки доступности
// видели новую бронь. Чтение разделяется конкурентными запросами.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[int64]entry
	now     func() time.Time
}

type entry struct {
	slots    []*domain.BookedSlot
	storedAt time.Time
}

// New создает кеш занятых слотов.
// ttl ограничивает время жизни записи (0 = без ограничения).
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[int64]entry),
		now:     time.Now,
	}
}

// Get возвращает закешированные слоты пользователя.
// Просроченная запись считается промахом.
func (c *Cache) Get(userID int64) ([]*domain.BookedSlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[userID]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.slots, true
}

// Set сохраняет слоты пользователя, заменяя запись целиком
func (c *Cache) Set(userID int64, slots []*domain.BookedSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[userID] = entry{slots: slots, storedAt: c.now()}
}

// Invalidate удаляет записи указанных пользователей
func (c *Cache) Invalidate(userIDs ...int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range userIDs {
		delete(c.entries, id)
	}
}
