package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "parse %q", s)
	return d
}

func TestOperationApply(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		a    string
		b    string
		want string
	}{
		{"addition", Addition, "5", "3", "8"},
		{"addition decimal", Addition, "0.1", "0.2", "0.3"},
		{"subtraction", Subtraction, "5", "3", "2"},
		{"subtraction negative", Subtraction, "3", "5", "-2"},
		{"multiplication", Multiplication, "4", "2.5", "10"},
		{"division exact", Division, "20", "4", "5"},
		{"division fractional", Division, "1", "8", "0.125"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op.Apply(dec(t, tc.a), dec(t, tc.b))
			require.NoError(t, err, "Apply")
			assert.True(t, got.Equal(dec(t, tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestAdditionCommutes(t *testing.T) {
	pairs := [][2]string{
		{"1", "2"},
		{"-3.5", "7.25"},
		{"0", "0.0001"},
		{"123456789.123456789", "-0.000000001"},
	}

	for _, p := range pairs {
		a, b := dec(t, p[0]), dec(t, p[1])

		ab, err := Addition.Apply(a, b)
		require.NoError(t, err)
		ba, err := Addition.Apply(b, a)
		require.NoError(t, err)
		assert.True(t, ab.Equal(ba), "add(%s,%s) != add(%s,%s)", a, b, b, a)

		sub, err := Subtraction.Apply(a, b)
		require.NoError(t, err)
		rev, err := Subtraction.Apply(b, a)
		require.NoError(t, err)
		assert.True(t, sub.Equal(rev.Neg()), "subtract(%s,%s) != -subtract(%s,%s)", a, b, b, a)
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, a := range []string{"0", "1", "-42", "3.14159"} {
		_, err := Division.Apply(dec(t, a), decimal.Zero)
		assert.ErrorIs(t, err, ErrDivisionByZero, "divide(%s, 0)", a)
	}
}

func TestDivisionPrecision(t *testing.T) {
	// Non-terminating quotients keep decimal.DivisionPrecision digits.
	got, err := Division.Apply(dec(t, "1"), dec(t, "3"))
	require.NoError(t, err)
	assert.Equal(t, "0.3333333333333333", got.String())
}

func TestFromName(t *testing.T) {
	t.Run("canonical names round trip", func(t *testing.T) {
		for _, name := range Names() {
			op, err := FromName(name)
			require.NoError(t, err, "FromName(%q)", name)
			assert.Equal(t, name, op.Name())
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		for _, name := range []string{"", "add", "ADDITION", "modulo"} {
			_, err := FromName(name)
			assert.ErrorIs(t, err, ErrUnknownOperation, "FromName(%q)", name)
		}
	})
}
