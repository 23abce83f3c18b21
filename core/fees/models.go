package fees

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
)

var (
	// errors
	ErrNotFound = errors.New("fee record not found")
)

// Record is one student fee payment as recorded at collection time. Month and
// Amount carry whatever the collection UI stored: Month may be a canonical
// "YYYY-MM" key or a localized label, Amount a currency-formatted string.
type Record struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Month     string    `json:"month"`
	Amount    string    `json:"amount"`
	ReceiptNo string    `json:"receipt_no"`
	Date      time.Time `json:"date"`
	CreatedBy string    `json:"created_by"` // free-text collector identity
	// CollectorID is the explicit collector reference set at creation time for
	// new rows, or backfilled from CreatedBy for historical ones. Empty means
	// unresolved.
	CollectorID string `json:"collector_id,omitempty"`
}

// AmountValue extracts the numeric amount. ok is false for an unparseable
// amount; such rows contribute zero and get flagged for audit instead of
// failing the computation.
func (r Record) AmountValue() (decimal.Decimal, bool) {
	return core.ParseAmount(r.Amount)
}

// MonthKey normalizes the recorded month, in either representation.
func (r Record) MonthKey() (core.MonthKey, error) {
	return core.ParseMonth(r.Month)
}

// MergeMonth filters records down to those belonging to the given month,
// merging the canonical and localized representations into one bucket and
// deduplicating by record ID (a fee that appears under both representations
// counts once).
func MergeMonth(records []Record, month core.MonthKey) []Record {
	seen := make(map[string]bool, len(records))
	merged := make([]Record, 0, len(records))
	for _, rec := range records {
		key, err := rec.MonthKey()
		if err != nil || key != month {
			continue
		}
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		merged = append(merged, rec)
	}
	return merged
}

// SumAmounts totals the parseable amounts of the given records and returns the
// IDs of rows whose amount could not be parsed.
func SumAmounts(records []Record) (total decimal.Decimal, badRows []string) {
	for _, rec := range records {
		amt, ok := rec.AmountValue()
		if !ok {
			badRows = append(badRows, rec.ID)
			continue
		}
		total = total.Add(amt)
	}
	return total, badRows
}
