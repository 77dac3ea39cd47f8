package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single day", d(2025, time.January, 5), d(2025, time.January, 5), 1},
		{"three days", d(2025, time.January, 5), d(2025, time.January, 7), 3},
		{"across month boundary", d(2025, time.January, 30), d(2025, time.February, 2), 4},
		{"inverted range", d(2025, time.January, 7), d(2025, time.January, 5), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DayCount(c.start, c.end))
		})
	}
}

func TestValidateRange(t *testing.T) {
	now := d(2025, time.January, 15)

	t.Run("valid current month", func(t *testing.T) {
		days, err := ValidateRange(d(2025, time.January, 20), d(2025, time.January, 22), now)
		assert.NoError(t, err)
		assert.Equal(t, 3, days)
	})

	t.Run("valid next month", func(t *testing.T) {
		days, err := ValidateRange(d(2025, time.February, 1), d(2025, time.February, 28), now)
		assert.NoError(t, err)
		assert.Equal(t, 28, days)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := ValidateRange(d(2025, time.January, 22), d(2025, time.January, 20), now)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("previous month", func(t *testing.T) {
		_, err := ValidateRange(d(2024, time.December, 30), d(2024, time.December, 31), now)
		assert.ErrorIs(t, err, ErrOutOfWindow)
	})

	t.Run("two months out", func(t *testing.T) {
		_, err := ValidateRange(d(2025, time.March, 1), d(2025, time.March, 2), now)
		assert.ErrorIs(t, err, ErrOutOfWindow)
	})

	t.Run("range leaking past window", func(t *testing.T) {
		_, err := ValidateRange(d(2025, time.February, 27), d(2025, time.March, 1), now)
		assert.ErrorIs(t, err, ErrOutOfWindow)
	})

	t.Run("year rollover", func(t *testing.T) {
		dec := d(2025, time.December, 10)
		days, err := ValidateRange(d(2026, time.January, 2), d(2026, time.January, 3), dec)
		assert.NoError(t, err)
		assert.Equal(t, 2, days)
	})
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"jan 5-7 vs jan 6-8", d(2025, 1, 5), d(2025, 1, 7), d(2025, 1, 6), d(2025, 1, 8), true},
		{"identical", d(2025, 1, 5), d(2025, 1, 7), d(2025, 1, 5), d(2025, 1, 7), true},
		{"touching endpoints", d(2025, 1, 5), d(2025, 1, 7), d(2025, 1, 7), d(2025, 1, 9), true},
		{"disjoint", d(2025, 1, 5), d(2025, 1, 7), d(2025, 1, 8), d(2025, 1, 9), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd))
			assert.Equal(t, c.want, Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd))
		})
	}
}
