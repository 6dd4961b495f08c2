package iso20022

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field length limits from the bank wire schemas. Overlong values are
// truncated, not rejected: a payment must not bounce because a beneficiary
// name is one character too long.
const (
	MaxIDLength         = 35
	MaxNameLength       = 70
	MaxRemittanceLength = 140
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z07:00"
)

// AmountString serializes a monetary amount with exactly 2 fractional
// digits, round-half-up.
func AmountString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Truncate cuts s to at most max runes. Silent by contract.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(dateTimeLayout, s)
}

// ParseDateTimeIn parses a date-time that may omit the zone offset, as bank
// statements do, anchoring zoneless values in loc. Day-level information is
// preserved exactly.
func ParseDateTimeIn(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}

// EndOfDay returns the last representable moment of t's calendar day in
// loc. The day is taken from t as-is: bank balances are dated, not
// timestamped, so the date must never shift across a zone conversion.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, loc)
}
