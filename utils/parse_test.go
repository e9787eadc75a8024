package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	t.Run("AcceptedForms", func(t *testing.T) {
		cases := []string{"$1,250.00", "1250", "USD 1250 (est.)"}
		for _, c := range cases {
			v, ok := ParsePrice(c)
			require.True(t, ok, c)
			assert.Equal(t, 1250.0, v, c)
		}
	})

	t.Run("NoNumber", func(t *testing.T) {
		for _, c := range []string{"", "N/A", "   ", "on request"} {
			_, ok := ParsePrice(c)
			assert.False(t, ok, c)
		}
	})

	t.Run("FirstNumberWins", func(t *testing.T) {
		v, ok := ParsePrice("USD 850 approx, was 900")
		require.True(t, ok)
		assert.Equal(t, 850.0, v)
	})

	t.Run("Negative", func(t *testing.T) {
		v, ok := ParsePrice("-120.50")
		require.True(t, ok)
		assert.Equal(t, -120.5, v)
	})

	t.Run("NonBreakingSpace", func(t *testing.T) {
		v, ok := ParsePrice("1 250")
		require.True(t, ok)
		assert.Equal(t, 1.0, v) // NBSP is not a thousands separator; first number wins
	})
}

func TestParsePercent(t *testing.T) {
	v, ok := ParsePercent("2.5%")
	require.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = ParsePercent("none")
	assert.False(t, ok)

	_, ok = ParsePercent("")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	t.Run("DayFirst", func(t *testing.T) {
		d, ok := ParseDate("14/03/2026")
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("ISO", func(t *testing.T) {
		d, ok := ParseDate("2026-03-14")
		require.True(t, ok)
		assert.Equal(t, time.March, d.Month())
	})

	t.Run("MonthName", func(t *testing.T) {
		_, ok := ParseDate("14-Mar-2026")
		assert.True(t, ok)
	})

	t.Run("Unparseable", func(t *testing.T) {
		for _, c := range []string{"", "soon", "TBD"} {
			_, ok := ParseDate(c)
			assert.False(t, ok, c)
		}
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,250.00", FormatMoney(1250))
	assert.Equal(t, "$0.50", FormatMoney(0.5))
	assert.Equal(t, "$1,000,000.00", FormatMoney(1e6))
	assert.Equal(t, "-$75.25", FormatMoney(-75.25))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "14-Mar-2026", FormatDate(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
}

func TestCleanContainerSize(t *testing.T) {
	assert.Equal(t, "20ft", CleanContainerSize("20 feet"))
	assert.Equal(t, "40ft", CleanContainerSize("40FT High Cube"))
	assert.Equal(t, "45ft special", CleanContainerSize(" 45ft special "))
	assert.Equal(t, "", CleanContainerSize("  "))
}
