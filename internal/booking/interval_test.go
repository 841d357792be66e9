package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dateTime(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustInterval(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	iv, err := NewInterval(start, end)
	assert.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		iv, err := NewInterval(date("2024-01-10"), date("2024-01-12"))
		assert.NoError(t, err)
		assert.Equal(t, date("2024-01-10"), iv.Start)
	})

	t.Run("Zero length rejected", func(t *testing.T) {
		_, err := NewInterval(date("2024-01-10"), date("2024-01-10"))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("Inverted rejected", func(t *testing.T) {
		_, err := NewInterval(date("2024-01-12"), date("2024-01-10"))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"Exactly two days", "2024-01-10 09:00", "2024-01-12 09:00", 2},
		{"Partial day rounds up", "2024-01-10 09:00", "2024-01-12 10:00", 3},
		{"Same day counts as one", "2024-01-10 09:00", "2024-01-10 17:00", 1},
		{"Single full day", "2024-01-10 00:00", "2024-01-11 00:00", 1},
		{"Two weeks", "2024-01-01 08:00", "2024-01-15 08:00", 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := mustInterval(t, dateTime(tt.start), dateTime(tt.end))
			days, err := DurationDays(iv)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, days)
			assert.GreaterOrEqual(t, days, 1)
		})
	}

	t.Run("Invalid interval", func(t *testing.T) {
		_, err := DurationDays(Interval{Start: date("2024-01-12"), End: date("2024-01-10")})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestOverlaps(t *testing.T) {
	a := mustInterval(t, date("2024-01-10"), date("2024-01-15"))
	b := mustInterval(t, date("2024-01-12"), date("2024-01-18"))
	c := mustInterval(t, date("2024-01-15"), date("2024-01-20"))
	d := mustInterval(t, date("2024-02-01"), date("2024-02-05"))

	t.Run("Overlapping", func(t *testing.T) {
		assert.True(t, Overlaps(a, b))
	})

	t.Run("Symmetry", func(t *testing.T) {
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a))
		assert.Equal(t, Overlaps(a, c), Overlaps(c, a))
		assert.Equal(t, Overlaps(a, d), Overlaps(d, a))
	})

	t.Run("Adjacent intervals do not conflict", func(t *testing.T) {
		// One ends exactly when the other starts: half-open, no overlap.
		assert.False(t, Overlaps(a, c))
	})

	t.Run("Disjoint", func(t *testing.T) {
		assert.False(t, Overlaps(a, d))
	})

	t.Run("Contained", func(t *testing.T) {
		inner := mustInterval(t, date("2024-01-11"), date("2024-01-13"))
		assert.True(t, Overlaps(a, inner))
		assert.True(t, Overlaps(inner, a))
	})
}
