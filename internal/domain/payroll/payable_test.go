package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayable(t *testing.T) {
	salary := decimal.NewFromInt(5000)

	t.Run("full month", func(t *testing.T) {
		assert.True(t, Payable(salary, 26, 26).Equal(decimal.NewFromInt(5000)))
	})

	t.Run("prorated", func(t *testing.T) {
		// 5000 / 26 * 13 = 2500
		assert.True(t, Payable(salary, 26, 13).Equal(decimal.NewFromInt(2500)))
	})

	t.Run("rounds to cents", func(t *testing.T) {
		// 5000 / 26 * 10 = 1923.0769... -> 1923.08
		want := decimal.RequireFromString("1923.08")
		assert.True(t, Payable(salary, 26, 10).Equal(want))
	})

	t.Run("zero working days", func(t *testing.T) {
		assert.True(t, Payable(salary, 0, 5).IsZero())
	})

	t.Run("no attendance", func(t *testing.T) {
		assert.True(t, Payable(salary, 26, 0).IsZero())
	})
}
