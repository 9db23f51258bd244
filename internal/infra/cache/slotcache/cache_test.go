package slotcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

func slots(ids ...int64) []*domain.BookedSlot {
	res := make([]*domain.BookedSlot, 0, len(ids))
	for _, id := range ids {
		res = append(res, &domain.BookedSlot{ID: id, UserID: 1})
	}
	return res
}

func TestCache_GetSet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, slots(10, 11))

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Len(t, got, 2)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New(time.Minute)

	current := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set(1, slots(10))

	_, ok := c.Get(1)
	assert.True(t, ok)

	// Через две минуты запись просрочена
	current = current.Add(2 * time.Minute)
	_, ok = c.Get(1)
	assert.False(t, ok)
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	c := New(0)

	current := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set(1, slots(10))
	current = current.Add(24 * time.Hour)

	_, ok := c.Get(1)
	assert.True(t, ok)
}

func TestCache_Invalidate(t *testing.T) {
	c := New(time.Minute)

	c.Set(1, slots(10))
	c.Set(2, slots(20))
	c.Set(3, slots(30))

	c.Invalidate(1, 2)

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestCache_SetReplacesEntry(t *testing.T) {
	c := New(time.Minute)

	c.Set(1, slots(10, 11))
	c.Set(1, slots(12))

	got, ok := c.Get(1)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, int64(12), got[0].ID)
}
