package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds a money amount to 2 decimal places. Per-record intermediate
// values are kept unrounded; only final aggregates go through Round2 so
// rounding error does not compound.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MaxZero clamps a money amount at zero.
func MaxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseAmount extracts the numeric value from a currency-formatted string
// ("1,500 ج.م", "٢٠٠", "150.50 EGP", ...). All non-numeric runes are stripped
// and Arabic-Indic digits are folded to ASCII before parsing. ok is false when
// nothing parseable remains; the caller treats the amount as zero and flags the
// record for audit instead of failing the whole computation.
func ParseAmount(s string) (amount decimal.Decimal, ok bool) {
	var b strings.Builder
	digitSeen := false
	pendingDot := false
	digit := func(r rune) {
		if pendingDot {
			b.WriteRune('.')
			pendingDot = false
		}
		b.WriteRune(r)
		digitSeen = true
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit(r)
		case r >= '٠' && r <= '٩': // ٠-٩
			digit('0' + r - '٠')
		case r >= '۰' && r <= '۹': // ۰-۹
			digit('0' + r - '۰')
		case r == '.':
			// A dot is a decimal separator only when it sits between
			// digits; dots in currency markers ("ج.م") are stripped.
			if digitSeen {
				pendingDot = true
			}
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
