package iso20022

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"111.03", "111.03"},
		{"111", "111.00"},
		{"111.035", "111.04"},
		{"0.005", "0.01"},
		{"-2.5", "-2.50"},
	}

	for _, tt := range tests {
		got := AmountString(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "amount %s", tt.in)
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 75)
	assert.Equal(t, strings.Repeat("a", 70), Truncate(long, MaxNameLength))

	short := "short name"
	assert.Equal(t, short, Truncate(short, MaxNameLength))
}

func TestTruncate_RuneSafe(t *testing.T) {
	s := strings.Repeat("ä", 40)
	out := Truncate(s, 35)
	assert.Equal(t, 35, len([]rune(out)))
	assert.Equal(t, strings.Repeat("ä", 35), out)
}

func TestParseDateTimeIn_Zoneless(t *testing.T) {
	tallinn, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)

	got, err := ParseDateTimeIn("2024-01-15T18:30:00", tallinn)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 15, 18, 30, 0, 0, tallinn), got)
}

func TestParseDateTimeIn_Zoned(t *testing.T) {
	tallinn, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)

	got, err := ParseDateTimeIn("2024-01-15T18:30:00+02:00", tallinn)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T18:30:00+02:00", got.Format(time.RFC3339))
}

func TestEndOfDay(t *testing.T) {
	tallinn, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)

	// Balance dates parse as UTC midnight; the calendar day must carry over
	// unchanged into the bank's zone.
	date, err := ParseDate("2024-01-15")
	require.NoError(t, err)

	got := EndOfDay(date, tallinn)
	assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 999999999, tallinn), got)
}
