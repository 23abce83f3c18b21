package payroll

import (
	"fmt"
	"strings"
)

// MonthReport bundles the three summaries the UI and report layer consume.
type MonthReport struct {
	TeacherID   string             `json:"teacher_id"`
	TeacherName string             `json:"teacher_name"`
	Month       string             `json:"month"`
	Entitlement EntitlementSummary `json:"entitlement"`
	Deficit     DeficitSummary     `json:"deficit"`
	Handover    HandoverSummary    `json:"handover"`
}

// Summarize runs every calculator over one snapshot.
func (e *Engine) Summarize(snap Snapshot) MonthReport {
	return MonthReport{
		TeacherID:   snap.Teacher.ID,
		TeacherName: snap.Teacher.FullName,
		Month:       snap.Month.String(),
		Entitlement: e.Entitlement(snap),
		Deficit:     e.Deficit(snap),
		Handover:    e.Handover(snap),
	}
}

// Text renders the report as the plain-text message handed to the outbound
// notification collaborator.
func (r MonthReport) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Monthly report: %s (%s)\n", r.TeacherName, r.Month)
	b.WriteString("\nCompensation\n")
	fmt.Fprintf(&b, "  Basic salary:       %s\n", r.Entitlement.BasicSalary)
	fmt.Fprintf(&b, "  Rewards (auto):     %s\n", r.Entitlement.AutoRewards)
	fmt.Fprintf(&b, "  Rewards (manual):   %s\n", r.Entitlement.ManualRewards)
	fmt.Fprintf(&b, "  Deductions (auto):  %s\n", r.Entitlement.AutoDeductions)
	fmt.Fprintf(&b, "  Deductions (manual):%s\n", r.Entitlement.ManualDeductions)
	fmt.Fprintf(&b, "  Entitlement:        %s\n", r.Entitlement.Entitlement)
	fmt.Fprintf(&b, "  Paid so far:        %s\n", r.Entitlement.TotalPaid)
	fmt.Fprintf(&b, "  Remaining payable:  %s\n", r.Entitlement.RemainingPayable)
	if r.Entitlement.Overpaid {
		b.WriteString("  NOTE: payments exceed entitlement; flagged for audit\n")
	}

	b.WriteString("\nStudent fees\n")
	fmt.Fprintf(&b, "  Expected:           %s\n", r.Deficit.TeacherExpected)
	fmt.Fprintf(&b, "  Outstanding:        %s\n", r.Deficit.TeacherDeficit)
	fmt.Fprintf(&b, "  Unpaid students:    %d\n", r.Deficit.UnpaidCount)

	b.WriteString("\nCash position\n")
	fmt.Fprintf(&b, "  Collected:          %s\n", r.Handover.TotalCollected)
	fmt.Fprintf(&b, "  Handed over:        %s\n", r.Handover.TotalHandedOver)
	fmt.Fprintf(&b, "  Cash on hand:       %s\n", r.Handover.CashOnHandDeficit)

	return b.String()
}
