package fees

import (
	"github.com/markaz/backend/core"
	"github.com/shopspring/decimal"
)

type (
	// Repository reads the fee ledger. Fee creation and deletion belong to the
	// external collection CRUD; this engine only consumes the rows.
	Repository interface {
		QueryAllFees() ([]Record, error)
		StudentFees(studentID string) ([]Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllFees()
}

// MonthFees returns the month's fee bucket with both month-key representations
// merged and duplicates dropped.
func (svc *Service) MonthFees(month core.MonthKey) ([]Record, error) {
	all, err := svc.repo.QueryAllFees()
	if err != nil {
		return nil, err
	}
	return MergeMonth(all, month), nil
}

// StudentPaid sums every parseable fee amount the student ever paid.
func (svc *Service) StudentPaid(studentID string) (decimal.Decimal, []string, error) {
	recs, err := svc.repo.StudentFees(studentID)
	if err != nil {
		return decimal.Zero, nil, err
	}
	total, badRows := SumAmounts(recs)
	return total, badRows, nil
}
