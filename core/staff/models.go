package staff

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// errors
	ErrNotFound = errors.New("teacher not found")
)

// Accounting types
const (
	AccountingFixed       = "fixed"       // fixed monthly salary
	AccountingPartnership = "partnership" // percentage of own collection
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Teacher struct {
	ID                 string          `json:"id"`
	FullName           string          `json:"full_name"`
	Phone              string          `json:"phone"`
	AccountingType     string          `json:"accounting_type"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`        // fixed accounting
	PartnershipPercent decimal.Decimal `json:"partnership_percent"` // partnership accounting, 0-100
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"` // UTC
	UpdatedAt          time.Time       `json:"updated_at"` // UTC
}

func (t Teacher) IsActive() bool      { return t.Status == StatusActive }
func (t Teacher) IsPartnership() bool { return t.AccountingType == AccountingPartnership }
