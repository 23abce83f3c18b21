package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/fees"
)

// StudentLine is one roster student's standing in the deficit summary.
type StudentLine struct {
	StudentID string          `json:"student_id"`
	FullName  string          `json:"full_name"`
	Expected  decimal.Decimal `json:"expected"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
	Exempted  bool            `json:"exempted"`
	// AuditRows lists fee record IDs whose amount could not be parsed and was
	// counted as zero.
	AuditRows []string `json:"audit_rows,omitempty"`
}

type DeficitSummary struct {
	TeacherExpected decimal.Decimal `json:"teacher_expected"`
	TeacherDeficit  decimal.Decimal `json:"teacher_deficit"`
	UnpaidCount     int             `json:"unpaid_count"`
	Students        []StudentLine   `json:"students"`
}

// Deficit computes the teacher's expected fees versus actual collection, net
// of exemptions. Exemption is a presence check per (student, month): duplicate
// rows can never deepen the waiver, and an exemption on an already-paid
// student changes nothing.
func (e *Engine) Deficit(snap Snapshot) DeficitSummary {
	var sum DeficitSummary
	sum.Students = make([]StudentLine, 0, len(snap.Cohort))

	for _, student := range snap.Cohort {
		line := StudentLine{
			StudentID: student.ID,
			FullName:  student.FullName,
			Expected:  student.MonthlyAmount,
			Exempted:  exemption.Exempted(snap.Exemptions, student.ID),
		}
		line.Paid, line.AuditRows = e.studentPaid(snap, student.ID)
		line.Remaining = core.MaxZero(line.Expected.Sub(line.Paid))

		sum.TeacherExpected = sum.TeacherExpected.Add(line.Expected)
		if !line.Exempted && line.Remaining.IsPositive() {
			sum.TeacherDeficit = sum.TeacherDeficit.Add(line.Remaining)
			sum.UnpaidCount++
		}
		sum.Students = append(sum.Students, line)
	}

	sum.TeacherExpected = core.Round2(sum.TeacherExpected)
	sum.TeacherDeficit = core.Round2(sum.TeacherDeficit)
	return sum
}

// studentPaid sums the student's fee payments under the configured scope:
// lifetime (the default, since month labels on fee rows are not trusted to
// match the covered month) or the month bucket only.
func (e *Engine) studentPaid(snap Snapshot, studentID string) (decimal.Decimal, []string) {
	source := snap.AllFees
	if e.cfg.PaidScope == PaidScopeMonth {
		source = snap.MonthFees
	}
	student := make([]fees.Record, 0, 4)
	for _, rec := range source {
		if rec.StudentID == studentID {
			student = append(student, rec)
		}
	}
	return fees.SumAmounts(student)
}

// TotalDeficit aggregates per-teacher summaries into the system-wide deficit.
func TotalDeficit(summaries ...DeficitSummary) decimal.Decimal {
	var total decimal.Decimal
	for _, s := range summaries {
		total = total.Add(s.TeacherDeficit)
	}
	return core.Round2(total)
}
