package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/finance"
)

var hundred = decimal.NewFromInt(100)

// EntitlementSummary is what a teacher has earned for the month and how much
// of it remains payable.
type EntitlementSummary struct {
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	AutoRewards      decimal.Decimal `json:"auto_rewards"`
	AutoDeductions   decimal.Decimal `json:"auto_deductions"`
	ManualRewards    decimal.Decimal `json:"manual_rewards"`
	ManualDeductions decimal.Decimal `json:"manual_deductions"`
	Entitlement      decimal.Decimal `json:"entitlement"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingPayable decimal.Decimal `json:"remaining_payable"`
	// Overpaid marks a clamped negative remainder for audit; overpayment is
	// not an error.
	Overpaid bool `json:"overpaid"`
}

// Entitlement computes the month's compensation summary.
// entitlement = round2(basic + autoRewards + manualRewards − autoDeductions −
// manualDeductions); rounding happens here only, never per record.
func (e *Engine) Entitlement(snap Snapshot) EntitlementSummary {
	basic := e.salaryBasis(snap)
	autoRewards, autoDeductions := e.attendanceAdjustments(snap, basic)
	manualRewards, manualDeductions := manualAdjustments(snap)

	entitlement := core.Round2(basic.
		Add(autoRewards).
		Add(manualRewards).
		Sub(autoDeductions).
		Sub(manualDeductions))

	totalPaid := finance.Sum(snap.Payments)
	remaining := core.Round2(entitlement.Sub(totalPaid))
	overpaid := remaining.IsNegative()

	return EntitlementSummary{
		BasicSalary:      basic,
		AutoRewards:      core.Round2(autoRewards),
		AutoDeductions:   core.Round2(autoDeductions),
		ManualRewards:    core.Round2(manualRewards),
		ManualDeductions: core.Round2(manualDeductions),
		Entitlement:      entitlement,
		TotalPaid:        totalPaid,
		RemainingPayable: core.MaxZero(remaining),
		Overpaid:         overpaid,
	}
}

// salaryBasis returns the month's base compensation: the basic salary for
// fixed-accounting teachers, or the partnership share of the teacher's own
// collection for partnership-accounting ones.
func (e *Engine) salaryBasis(snap Snapshot) decimal.Decimal {
	if !snap.Teacher.IsPartnership() {
		return snap.Teacher.BasicSalary
	}
	collected, _ := e.collectedByTeacher(snap)
	return snap.Teacher.PartnershipPercent.Mul(collected).Div(hundred)
}

// attendanceAdjustments prices the month's recorded non-present statuses
// against the daily rate (basis / working days per month). Only recorded days
// contribute; present and unmarked days are zero. Values stay unrounded here.
func (e *Engine) attendanceAdjustments(snap Snapshot, basis decimal.Decimal) (rewards, deductions decimal.Decimal) {
	dailyRate := basis.Div(decimal.NewFromInt(int64(e.cfg.WorkingDaysPerMonth)))

	for _, rec := range snap.Attendance {
		if !e.cfg.CountWeekendMarks && e.isWeekend(rec.Date.Weekday()) {
			continue
		}
		factor, reward := attendance.Factor(rec.Status)
		if factor.IsZero() {
			continue
		}
		amount := dailyRate.Mul(factor)
		if reward {
			rewards = rewards.Add(amount)
		} else {
			deductions = deductions.Add(amount)
		}
	}
	return rewards, deductions
}

func manualAdjustments(snap Snapshot) (rewards, deductions decimal.Decimal) {
	for _, adj := range snap.Adjustments {
		if adj.IsReward() {
			rewards = rewards.Add(adj.Amount.Abs())
		} else {
			deductions = deductions.Add(adj.Amount.Abs())
		}
	}
	return rewards, deductions
}
