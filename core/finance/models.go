package finance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
)

var (
	// errors
	ErrNotFound          = errors.New("transaction not found")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Categories. The ledger historically stored these as free text; the
// recognized values are typed here and anything else rolls up under the
// "other" categories.
const (
	CategoryFeeCollection   = "fee_collection"
	CategoryTeacherHandover = "teacher_handover"
	CategorySalaryPayment   = "salary_payment"
	CategoryDonation        = "donation"
	CategoryUtilityExpense  = "utility_expense"
	CategorySalaryExpense   = "salary_expense"
	CategoryFeeExpense      = "fee_expense"
	CategoryOtherExpense    = "other_expense"
	CategoryOtherIncome     = "other_income"
)

// Transaction is one append-mostly money movement.
type Transaction struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Date          time.Time       `json:"date"` // UTC
	Description   string          `json:"description"`
	RelatedUserID string          `json:"related_user_id"` // teacher or student
	PerformedBy   string          `json:"performed_by"`
}

// Filter narrows a transaction query. Zero fields are ignored; set fields
// combine with AND.
type Filter struct {
	Category      string
	Type          string
	RelatedUserID string
	Month         core.MonthKey
}

func (f Filter) Matches(tx Transaction) bool {
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.RelatedUserID != "" && tx.RelatedUserID != f.RelatedUserID {
		return false
	}
	if f.Month != "" && !f.Month.Contains(tx.Date) {
		return false
	}
	return true
}

// Sum totals the amounts of the given transactions.
func Sum(txs []Transaction) decimal.Decimal {
	var total decimal.Decimal
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}
