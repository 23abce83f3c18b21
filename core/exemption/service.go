package exemption

import (
	"time"

	"github.com/markaz/backend/core"
)

type (
	Repository interface {
		MonthExemptions(month core.MonthKey) ([]Exemption, error)
		// UpsertExemption saves the exemption, replacing any existing row for
		// the same (student, month).
		UpsertExemption(ex Exemption) (Exemption, error)
		DeleteExemption(studentID string, month core.MonthKey) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) MonthExemptions(month core.MonthKey) ([]Exemption, error) {
	return svc.repo.MonthExemptions(month)
}

// Grant waives a student's fee for one month. Director only. Granting twice
// for the same (student, month) replaces the prior waiver instead of stacking.
func (svc *Service) Grant(actor core.Actor, ne NewExemption) (Exemption, error) {
	if !actor.IsDirector() {
		return Exemption{}, core.NewPermissionError("only a director may grant exemptions")
	}
	month, err := core.ParseMonth(ne.Month)
	if err != nil {
		return Exemption{}, core.NewValidationError(err, core.FieldError{Field: "month", Error: err.Error()})
	}

	return svc.repo.UpsertExemption(Exemption{
		StudentID:   ne.StudentID,
		StudentName: ne.StudentName,
		TeacherID:   ne.TeacherID,
		Month:       month,
		Amount:      ne.Amount,
		ExemptedBy:  actor.Name,
		CreatedAt:   time.Now().UTC(),
	})
}

// Revoke deletes the exemption; the student's deficit contribution becomes
// active again on the next computation (deficits are always recomputed from
// source ledgers, never cached).
func (svc *Service) Revoke(actor core.Actor, studentID string, month core.MonthKey) error {
	if !actor.IsDirector() {
		return core.NewPermissionError("only a director may revoke exemptions")
	}
	return svc.repo.DeleteExemption(studentID, month)
}
