package exemption

import (
	"errors"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
)

var (
	// errors
	ErrNotFound = errors.New("exemption not found")
)

// Exemption waives one student's fee for one month. At most one exemption
// exists per (student, month); the store upserts on that composite key, and
// readers treat "has any row" as a boolean rather than summing, so a duplicate
// slipping in can never inflate the waiver's effect.
type Exemption struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"student_id"`
	StudentName string          `json:"student_name"`
	TeacherID   string          `json:"teacher_id"`
	Month       core.MonthKey   `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	ExemptedBy  string          `json:"exempted_by"`
	CreatedAt   time.Time       `json:"created_at"` // UTC
}

// NewExemption contains information needed to grant an Exemption.
type NewExemption struct {
	StudentID   string          `json:"student_id" validate:"required"`
	StudentName string          `json:"student_name"`
	TeacherID   string          `json:"teacher_id"`
	Month       string          `json:"month" validate:"required,monthkey"`
	Amount      decimal.Decimal `json:"amount" validate:"dgt0"`
}

func (ne *NewExemption) Validate(validate *validator.Validate, _ ut.Translator) error {
	ne.StudentID = core.CleanString(ne.StudentID)
	ne.StudentName = core.CleanString(ne.StudentName)
	ne.Month = core.CleanString(ne.Month)
	return validate.Struct(ne)
}

// Exempted reports whether any exemption row exists for the student. Presence
// check only; duplicates are never summed.
func Exempted(exemptions []Exemption, studentID string) bool {
	for _, ex := range exemptions {
		if ex.StudentID == studentID {
			return true
		}
	}
	return false
}
