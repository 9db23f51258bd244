package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreeDayRange(t *testing.T) {
	// Понедельник, середина дня
	now := time.Date(2025, time.September, 1, 15, 42, 10, 0, time.UTC)

	days := ThreeDayRange(now)
	require.Len(t, days, ScheduleWindowDays)

	assert.Equal(t, "2025-09-01", days[0].Date)
	assert.Equal(t, "2025-09-02", days[1].Date)
	assert.Equal(t, "2025-09-03", days[2].Date)

	assert.Equal(t, "Пн, 1 сентября", days[0].Display)
	assert.Equal(t, "Вт, 2 сентября", days[1].Display)
	assert.Equal(t, "Ср, 3 сентября", days[2].Display)

	// FullDate - полночь соответствующего дня
	for _, d := range days {
		assert.Equal(t, 0, d.FullDate.Hour())
		assert.Equal(t, 0, d.FullDate.Minute())
		assert.Equal(t, now.Location(), d.FullDate.Location())
	}
}

func TestThreeDayRange_MonthBoundary(t *testing.T) {
	now := time.Date(2025, time.August, 31, 23, 59, 0, 0, time.UTC)

	days := ThreeDayRange(now)

	assert.Equal(t, "2025-08-31", days[0].Date)
	assert.Equal(t, "2025-09-01", days[1].Date)
	assert.Equal(t, "2025-09-02", days[2].Date)
}

func TestThreeDayRange_SlidesWithNow(t *testing.T) {
	today := time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	// После перехода через полночь окно сдвигается на день
	assert.Equal(t, ThreeDayRange(today)[1], ThreeDayRange(tomorrow)[0])
}
