package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccrualDue(t *testing.T) {
	first := date(2025, time.March, 1)

	t.Run("never accrued", func(t *testing.T) {
		assert.True(t, AccrualDue(nil, first))
	})

	t.Run("accrued last month", func(t *testing.T) {
		last := date(2025, time.February, 1)
		assert.True(t, AccrualDue(&last, first))
	})

	t.Run("already credited this month", func(t *testing.T) {
		last := date(2025, time.March, 1)
		assert.False(t, AccrualDue(&last, first))
	})

	t.Run("same month previous year", func(t *testing.T) {
		last := date(2024, time.March, 1)
		assert.True(t, AccrualDue(&last, first))
	})
}
