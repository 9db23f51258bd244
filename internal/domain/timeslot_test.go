package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	// 08:00 - 24:00 по 30 минут
	require.Len(t, slots, 32)

	assert.Equal(t, "08:00", slots[0].Start.String())
	assert.Equal(t, "08:30", slots[0].End.String())
	assert.Equal(t, "08:00 - 08:30", slots[0].Display)

	last := slots[len(slots)-1]
	assert.Equal(t, "23:30", last.Start.String())
	assert.Equal(t, "24:00", last.End.String())

	// Сетка непрерывна
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start, "slot %d must start where slot %d ends", i, i-1)
	}
}

func TestSlotInterval(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	day := ThreeDayRange(now)[0]
	slots := TimeSlots()

	iv, err := SlotInterval(day, slots[0])
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2025, time.September, 1, 8, 30, 0, 0, time.UTC), iv.End)
	assert.True(t, iv.IsValid())
}

func TestSlotInterval_LastSlotEndsAtMidnight(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	day := ThreeDayRange(now)[0]
	slots := TimeSlots()

	iv, err := SlotInterval(day, slots[len(slots)-1])
	require.NoError(t, err)

	// "24:00" конец последнего слота - полночь следующего дня
	assert.Equal(t, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC), iv.End)
}
