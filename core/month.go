package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKey is the canonical "YYYY-MM" month identifier. Ledger rows may carry
// either this form or a localized month label ("يناير 2026"); both normalize to
// the same key via ParseMonth.
type MonthKey string

const monthKeyLayout = "2006-01"

var arabicMonths = map[string]time.Month{
	"يناير":  time.January,
	"فبراير": time.February,
	"مارس":   time.March,
	"أبريل":  time.April,
	"ابريل":  time.April,
	"مايو":   time.May,
	"يونيو":  time.June,
	"يوليو":  time.July,
	"أغسطس":  time.August,
	"اغسطس":  time.August,
	"سبتمبر": time.September,
	"أكتوبر": time.October,
	"اكتوبر": time.October,
	"نوفمبر": time.November,
	"ديسمبر": time.December,
}

func NewMonthKey(t time.Time) MonthKey {
	return MonthKey(t.Format(monthKeyLayout))
}

// ParseMonth normalizes a month string to its canonical MonthKey. It accepts
// the canonical "YYYY-MM" form and the localized "<month name> <year>" label.
func ParseMonth(s string) (MonthKey, error) {
	s = CleanString(s)
	if t, err := time.Parse(monthKeyLayout, s); err == nil {
		return NewMonthKey(t), nil
	}

	parts := strings.Fields(s)
	if len(parts) == 2 {
		if month, ok := arabicMonths[parts[0]]; ok {
			if year, err := strconv.Atoi(foldDigits(parts[1])); err == nil && year > 0 {
				return NewMonthKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)), nil
			}
		}
	}
	return "", fmt.Errorf("unrecognized month %q", s)
}

// SameMonth reports whether two month strings, in any accepted representation,
// identify the same calendar month.
func SameMonth(a, b string) bool {
	ka, errA := ParseMonth(a)
	kb, errB := ParseMonth(b)
	if errA != nil || errB != nil {
		return false
	}
	return ka == kb
}

func (m MonthKey) Valid() bool {
	_, err := time.Parse(monthKeyLayout, string(m))
	return err == nil
}

// Start returns midnight UTC on the first day of the month.
func (m MonthKey) Start() time.Time {
	t, _ := time.Parse(monthKeyLayout, string(m))
	return t
}

// End returns the first instant of the following month.
func (m MonthKey) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Contains reports whether the given time falls within the month.
func (m MonthKey) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(m.Start()) && t.Before(m.End())
}

func (m MonthKey) String() string { return string(m) }

func foldDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + r - '٠')
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + r - '۰')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
