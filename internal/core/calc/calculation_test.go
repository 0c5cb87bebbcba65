package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculationCompute(t *testing.T) {
	t.Run("matches direct application", func(t *testing.T) {
		for _, name := range Names() {
			op, err := FromName(name)
			require.NoError(t, err)

			a, b := dec(t, "7.5"), dec(t, "2.5")
			want, err := op.Apply(a, b)
			require.NoError(t, err)

			got, err := New(a, b, op).Compute()
			require.NoError(t, err, "Compute %s", name)
			assert.True(t, got.Equal(want), "%s: got %s, want %s", name, got, want)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		c := New(dec(t, "10"), dec(t, "3"), Division)

		first, err := c.Compute()
		require.NoError(t, err)
		second, err := c.Compute()
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	})

	t.Run("propagates division by zero", func(t *testing.T) {
		_, err := New(dec(t, "1"), dec(t, "0"), Division).Compute()
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestCalculationString(t *testing.T) {
	c := New(dec(t, "5"), dec(t, "3"), Addition)
	assert.Equal(t, "Calculation(5, 3, addition)", c.String())

	c = New(dec(t, "1.5"), dec(t, "-2"), Division)
	assert.Equal(t, "Calculation(1.5, -2, division)", c.String())
}
