package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	return Interval{Start: s, End: e}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"),
			b:    interval(t, "2025-09-01T09:15:00Z", "2025-09-01T09:45:00Z"),
			want: true,
		},
		{
			name: "touching boundaries are not an overlap",
			a:    interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"),
			b:    interval(t, "2025-09-01T09:30:00Z", "2025-09-01T10:00:00Z"),
			want: false,
		},
		{
			name: "touching boundaries reversed order",
			a:    interval(t, "2025-09-01T09:30:00Z", "2025-09-01T10:00:00Z"),
			b:    interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"),
			want: false,
		},
		{
			name: "full containment",
			a:    interval(t, "2025-09-01T09:00:00Z", "2025-09-01T10:00:00Z"),
			b:    interval(t, "2025-09-01T09:15:00Z", "2025-09-01T09:45:00Z"),
			want: true,
		},
		{
			name: "identical intervals",
			a:    interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"),
			b:    interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"),
			want: true,
		},
		{
			name: "disjoint intervals",
			a:    interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"),
			b:    interval(t, "2025-09-01T11:00:00Z", "2025-09-01T11:30:00Z"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z").IsValid())
	assert.False(t, interval(t, "2025-09-01T09:30:00Z", "2025-09-01T09:00:00Z").IsValid())

	// Пустой интервал некорректен
	zero := interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:00:00Z")
	assert.False(t, zero.IsValid())
}

func TestIsAvailable(t *testing.T) {
	booked := []Interval{
		interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"),
		interval(t, "2025-09-01T12:00:00Z", "2025-09-01T13:00:00Z"),
	}

	t.Run("free slot", func(t *testing.T) {
		candidate := interval(t, "2025-09-01T10:00:00Z", "2025-09-01T10:30:00Z")
		assert.True(t, IsAvailable(candidate, booked))
	})

	t.Run("conflicting slot", func(t *testing.T) {
		candidate := interval(t, "2025-09-01T12:30:00Z", "2025-09-01T13:00:00Z")
		assert.False(t, IsAvailable(candidate, booked))
	})

	t.Run("slot adjacent to booked one", func(t *testing.T) {
		candidate := interval(t, "2025-09-01T09:30:00Z", "2025-09-01T10:00:00Z")
		assert.True(t, IsAvailable(candidate, booked))
	})

	t.Run("empty booked list", func(t *testing.T) {
		candidate := interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z")
		assert.True(t, IsAvailable(candidate, nil))
	})
}

func TestUnionIntervals(t *testing.T) {
	a := []Interval{interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z")}
	b := []Interval{
		interval(t, "2025-09-01T10:00:00Z", "2025-09-01T10:30:00Z"),
		interval(t, "2025-09-01T09:00:00Z", "2025-09-01T09:30:00Z"), // дубликат из другого списка
	}

	union := UnionIntervals(a, b)
	assert.Len(t, union, 3)

	assert.Empty(t, UnionIntervals())
	assert.Empty(t, UnionIntervals(nil, nil))
}
