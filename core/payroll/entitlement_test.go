package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core/adjustment"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/finance"
	"github.com/markaz/backend/core/staff"
)

func testEngine(cfg Config) *Engine {
	return NewEngine(cfg, fees.NewResolver(), nil, nil, nil, nil, nil, nil, nil)
}

func fixedTeacher(salary string) staff.Teacher {
	return staff.Teacher{
		ID:             "t1",
		FullName:       "أحمد سمير",
		Phone:          "01001234567",
		AccountingType: staff.AccountingFixed,
		BasicSalary:    decimal.RequireFromString(salary),
		Status:         staff.StatusActive,
	}
}

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestEntitlementAttendanceScenario(t *testing.T) {
	// salary 1000, dailyRate ≈ 45.45: one absent day and one half_reward day
	engine := testEngine(DefaultConfig())
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Attendance: []attendance.Record{
			{TeacherID: "t1", Date: day(5), Status: attendance.StatusAbsent},
			{TeacherID: "t1", Date: day(6), Status: attendance.StatusHalfReward},
			{TeacherID: "t1", Date: day(7), Status: attendance.StatusPresent},
		},
	}

	sum := engine.Entitlement(snap)

	if got := sum.AutoDeductions.String(); got != "45.45" {
		t.Errorf("AutoDeductions = %s, want 45.45", got)
	}
	if got := sum.AutoRewards.String(); got != "22.73" {
		t.Errorf("AutoRewards = %s, want 22.73", got)
	}
	if got := sum.Entitlement.String(); got != "977.27" {
		t.Errorf("Entitlement = %s, want 977.27", got)
	}
	if got := sum.RemainingPayable.String(); got != "977.27" {
		t.Errorf("RemainingPayable = %s, want 977.27", got)
	}
}

func TestEntitlementStatusFactors(t *testing.T) {
	tests := []struct {
		status         string
		wantRewards    string
		wantDeductions string
	}{
		{status: attendance.StatusAbsent, wantRewards: "0", wantDeductions: "100"},
		{status: attendance.StatusHalf, wantRewards: "0", wantDeductions: "50"},
		{status: attendance.StatusQuarter, wantRewards: "0", wantDeductions: "25"},
		{status: attendance.StatusHalfReward, wantRewards: "50", wantDeductions: "0"},
		{status: attendance.StatusQuarterReward, wantRewards: "25", wantDeductions: "0"},
		{status: attendance.StatusPresent, wantRewards: "0", wantDeductions: "0"},
	}

	// salary 2200 over 22 days gives a clean dailyRate of 100
	engine := testEngine(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			snap := Snapshot{
				Teacher:    fixedTeacher("2200"),
				Month:      "2026-01",
				Attendance: []attendance.Record{{TeacherID: "t1", Date: day(5), Status: tt.status}},
			}
			sum := engine.Entitlement(snap)
			if !sum.AutoRewards.Equal(decimal.RequireFromString(tt.wantRewards)) {
				t.Errorf("AutoRewards = %s, want %s", sum.AutoRewards, tt.wantRewards)
			}
			if !sum.AutoDeductions.Equal(decimal.RequireFromString(tt.wantDeductions)) {
				t.Errorf("AutoDeductions = %s, want %s", sum.AutoDeductions, tt.wantDeductions)
			}
		})
	}
}

func TestEntitlementWeekendMarks(t *testing.T) {
	// 2026-01-02 is a Friday
	friday := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if friday.Weekday() != time.Friday {
		t.Fatalf("fixture broken: %v is %v", friday, friday.Weekday())
	}
	snap := Snapshot{
		Teacher:    fixedTeacher("2200"),
		Month:      "2026-01",
		Attendance: []attendance.Record{{TeacherID: "t1", Date: friday, Status: attendance.StatusAbsent}},
	}

	counting := testEngine(DefaultConfig())
	if sum := counting.Entitlement(snap); !sum.AutoDeductions.Equal(decimal.NewFromInt(100)) {
		t.Errorf("weekend record must contribute when CountWeekendMarks is on, got %s", sum.AutoDeductions)
	}

	cfg := DefaultConfig()
	cfg.CountWeekendMarks = false
	skipping := testEngine(cfg)
	if sum := skipping.Entitlement(snap); !sum.AutoDeductions.IsZero() {
		t.Errorf("weekend record must be skipped when CountWeekendMarks is off, got %s", sum.AutoDeductions)
	}
}

func TestEntitlementManualAdjustments(t *testing.T) {
	engine := testEngine(DefaultConfig())
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Adjustments: []adjustment.Adjustment{
			{TeacherID: "t1", Amount: decimal.NewFromInt(50), Kind: adjustment.KindReward},
			{TeacherID: "t1", Amount: decimal.NewFromInt(30), Kind: adjustment.KindDeduction},
			{TeacherID: "t1", Amount: decimal.NewFromInt(20), Kind: adjustment.KindDeduction},
		},
	}

	sum := engine.Entitlement(snap)
	if got := sum.ManualRewards.String(); got != "50" {
		t.Errorf("ManualRewards = %s, want 50", got)
	}
	if got := sum.ManualDeductions.String(); got != "50" {
		t.Errorf("ManualDeductions = %s, want 50", got)
	}
	if got := sum.Entitlement.String(); got != "1000" {
		t.Errorf("Entitlement = %s, want 1000", got)
	}
}

func TestEntitlementOverpaymentClamps(t *testing.T) {
	engine := testEngine(DefaultConfig())
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Payments: []finance.Transaction{
			{Amount: decimal.NewFromInt(800), Category: finance.CategorySalaryPayment},
			{Amount: decimal.NewFromInt(400), Category: finance.CategorySalaryPayment},
		},
	}

	sum := engine.Entitlement(snap)
	if !sum.RemainingPayable.IsZero() {
		t.Errorf("RemainingPayable = %s, want 0 (overpayment clamps)", sum.RemainingPayable)
	}
	if !sum.Overpaid {
		t.Error("Overpaid must be flagged for audit on clamped overpayment")
	}
	if got := sum.TotalPaid.String(); got != "1200" {
		t.Errorf("TotalPaid = %s, want 1200", got)
	}
}

func TestEntitlementPartnershipBasis(t *testing.T) {
	engine := testEngine(DefaultConfig())
	snap := Snapshot{
		Teacher: staff.Teacher{
			ID:                 "t1",
			FullName:           "أحمد سمير",
			AccountingType:     staff.AccountingPartnership,
			PartnershipPercent: decimal.NewFromInt(40),
			Status:             staff.StatusActive,
		},
		Month: "2026-01",
		MonthFees: []fees.Record{
			{ID: "f1", StudentID: "s1", Month: "2026-01", Amount: "500", CreatedBy: "أحمد سمير"},
			{ID: "f2", StudentID: "s2", Month: "2026-01", Amount: "500", CreatedBy: "المدير"},
		},
	}

	sum := engine.Entitlement(snap)
	// 40% of the 500 the teacher collected themselves
	if got := sum.BasicSalary.String(); got != "200" {
		t.Errorf("BasicSalary = %s, want 200", got)
	}
	if got := sum.Entitlement.String(); got != "200" {
		t.Errorf("Entitlement = %s, want 200", got)
	}
}

func TestEntitlementEmptyLedgers(t *testing.T) {
	engine := testEngine(DefaultConfig())
	sum := engine.Entitlement(Snapshot{Teacher: fixedTeacher("1000"), Month: "2026-01"})

	if got := sum.Entitlement.String(); got != "1000" {
		t.Errorf("Entitlement = %s, want 1000 (empty ledgers contribute zero)", got)
	}
	if got := sum.RemainingPayable.String(); got != "1000" {
		t.Errorf("RemainingPayable = %s, want 1000", got)
	}
}
