package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
)

type (
	Repository interface {
		AppendTransaction(tx Transaction) (Transaction, error)
		QueryTransactions(f Filter) ([]Transaction, error)
		DeleteTransaction(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(f Filter) ([]Transaction, error) {
	return svc.repo.QueryTransactions(f)
}

// SalaryPayments returns the teacher's salary payments within the month.
func (svc *Service) SalaryPayments(teacherID string, month core.MonthKey) ([]Transaction, error) {
	return svc.repo.QueryTransactions(Filter{
		Category:      CategorySalaryPayment,
		RelatedUserID: teacherID,
		Month:         month,
	})
}

// Handovers returns the teacher's cash handovers within the month.
func (svc *Service) Handovers(teacherID string, month core.MonthKey) ([]Transaction, error) {
	return svc.repo.QueryTransactions(Filter{
		Category:      CategoryTeacherHandover,
		RelatedUserID: teacherID,
		Month:         month,
	})
}

// RecordSalaryPayment appends a salary payment for the teacher. Paying an
// amount ≤ 0 is rejected; partial payments are legal and simply accumulate.
func (svc *Service) RecordSalaryPayment(actor core.Actor, teacherID string, amount decimal.Decimal, description string) (Transaction, error) {
	if !actor.CanEditLedgers() && !actor.IsManager() {
		return Transaction{}, core.NewPermissionError("not allowed to record salary payments")
	}
	if !amount.IsPositive() {
		return Transaction{}, core.NewValidationError(ErrNonPositiveAmount, core.FieldError{Field: "amount", Error: ErrNonPositiveAmount.Error()})
	}
	return svc.repo.AppendTransaction(Transaction{
		Amount:        amount,
		Type:          TypeExpense,
		Category:      CategorySalaryPayment,
		Date:          time.Now().UTC(),
		Description:   description,
		RelatedUserID: teacherID,
		PerformedBy:   actor.Name,
	})
}

// RecordHandover appends a teacher→manager cash handover as an income
// transaction. Handovers never match specific fee records; reconciliation is
// aggregate-only.
func (svc *Service) RecordHandover(actor core.Actor, teacherID string, amount decimal.Decimal, description string) (Transaction, error) {
	if !actor.CanEditLedgers() && !actor.IsManager() {
		return Transaction{}, core.NewPermissionError("not allowed to record handovers")
	}
	if !amount.IsPositive() {
		return Transaction{}, core.NewValidationError(ErrNonPositiveAmount, core.FieldError{Field: "amount", Error: ErrNonPositiveAmount.Error()})
	}
	return svc.repo.AppendTransaction(Transaction{
		Amount:        amount,
		Type:          TypeIncome,
		Category:      CategoryTeacherHandover,
		Date:          time.Now().UTC(),
		Description:   description,
		RelatedUserID: teacherID,
		PerformedBy:   actor.Name,
	})
}

// Delete removes a transaction. Director only; used by the external fee CRUD
// to neutralize the mirrored transaction when a fee record is deleted.
func (svc *Service) Delete(actor core.Actor, id string) error {
	if !actor.IsDirector() {
		return core.NewPermissionError("only a director may delete transactions")
	}
	return svc.repo.DeleteTransaction(id)
}
