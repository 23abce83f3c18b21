package payroll

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/roster"
)

func student(id, name, amount string) roster.Student {
	return roster.Student{
		ID:            id,
		FullName:      name,
		GroupID:       "g1",
		MonthlyAmount: decimal.RequireFromString(amount),
		Status:        roster.StatusActive,
	}
}

func TestDeficit(t *testing.T) {
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Cohort: []roster.Student{
			student("s1", "طالب واحد", "100"), // fully paid
			student("s2", "طالب اثنان", "100"), // partially paid
			student("s3", "طالب ثلاثة", "100"), // unpaid
			student("s4", "طالب أربعة", "100"), // unpaid but exempted
		},
		AllFees: []fees.Record{
			{ID: "f1", StudentID: "s1", Month: "2026-01", Amount: "100"},
			{ID: "f2", StudentID: "s2", Month: "2025-12", Amount: "60"}, // lifetime scope counts it
		},
		Exemptions: []exemption.Exemption{
			{ID: "e1", StudentID: "s4", Month: "2026-01", Amount: decimal.NewFromInt(100)},
		},
	}

	sum := testEngine(DefaultConfig()).Deficit(snap)

	if got := sum.TeacherExpected.String(); got != "400" {
		t.Errorf("TeacherExpected = %s, want 400", got)
	}
	// s2 owes 40, s3 owes 100; s4 is exempted
	if got := sum.TeacherDeficit.String(); got != "140" {
		t.Errorf("TeacherDeficit = %s, want 140", got)
	}
	if sum.UnpaidCount != 2 {
		t.Errorf("UnpaidCount = %d, want 2", sum.UnpaidCount)
	}

	// the deficit equals the sum of non-exempted unpaid remainders
	var want decimal.Decimal
	for _, line := range sum.Students {
		if !line.Exempted && line.Remaining.IsPositive() {
			want = want.Add(line.Remaining)
		}
	}
	if !sum.TeacherDeficit.Equal(want) {
		t.Errorf("TeacherDeficit = %s, want Σ remaining = %s", sum.TeacherDeficit, want)
	}
}

func TestDeficitPaidScopeMonth(t *testing.T) {
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Cohort:  []roster.Student{student("s1", "طالب", "100")},
		AllFees: []fees.Record{
			{ID: "f1", StudentID: "s1", Month: "2025-12", Amount: "100"},
		},
	}
	snap.MonthFees = fees.MergeMonth(snap.AllFees, snap.Month)

	lifetime := testEngine(DefaultConfig()).Deficit(snap)
	if !lifetime.TeacherDeficit.IsZero() {
		t.Errorf("lifetime scope: deficit = %s, want 0", lifetime.TeacherDeficit)
	}

	cfg := DefaultConfig()
	cfg.PaidScope = PaidScopeMonth
	monthScoped := testEngine(cfg).Deficit(snap)
	if got := monthScoped.TeacherDeficit.String(); got != "100" {
		t.Errorf("month scope: deficit = %s, want 100", got)
	}
}

func TestDeficitExemptionIrrelevantOncePaid(t *testing.T) {
	base := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Cohort:  []roster.Student{student("s1", "طالب", "100")},
		AllFees: []fees.Record{
			{ID: "f1", StudentID: "s1", Month: "2026-01", Amount: "100"},
		},
	}
	engine := testEngine(DefaultConfig())

	paid := engine.Deficit(base)
	if !paid.TeacherDeficit.IsZero() || paid.UnpaidCount != 0 {
		t.Fatalf("paid student must not count: deficit=%s unpaid=%d", paid.TeacherDeficit, paid.UnpaidCount)
	}

	base.Exemptions = []exemption.Exemption{
		{ID: "e1", StudentID: "s1", Month: "2026-01", Amount: decimal.NewFromInt(100)},
	}
	exempted := engine.Deficit(base)
	if !exempted.TeacherDeficit.IsZero() || exempted.UnpaidCount != 0 {
		t.Errorf("exemption on a paid student must change nothing: deficit=%s unpaid=%d",
			exempted.TeacherDeficit, exempted.UnpaidCount)
	}
}

func TestDeficitDuplicateExemptionRows(t *testing.T) {
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Cohort:  []roster.Student{student("s1", "طالب", "100")},
		Exemptions: []exemption.Exemption{
			{ID: "e1", StudentID: "s1", Month: "2026-01", Amount: decimal.NewFromInt(100)},
			{ID: "e2", StudentID: "s1", Month: "2026-01", Amount: decimal.NewFromInt(100)},
		},
	}

	sum := testEngine(DefaultConfig()).Deficit(snap)
	// presence check: duplicates neither stack nor flip anything
	if !sum.TeacherDeficit.IsZero() || sum.UnpaidCount != 0 {
		t.Errorf("duplicate exemption rows must act as one: deficit=%s unpaid=%d",
			sum.TeacherDeficit, sum.UnpaidCount)
	}
}

func TestDeficitRevokeRegrantIdempotent(t *testing.T) {
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Cohort:  []roster.Student{student("s1", "طالب", "100")},
	}
	engine := testEngine(DefaultConfig())

	granted := engine.Deficit(withExemption(snap))
	revoked := engine.Deficit(snap)
	regranted := engine.Deficit(withExemption(snap))

	if !granted.TeacherDeficit.IsZero() {
		t.Errorf("granted: deficit = %s, want 0", granted.TeacherDeficit)
	}
	if got := revoked.TeacherDeficit.String(); got != "100" {
		t.Errorf("revoked: deficit = %s, want 100", got)
	}
	if !regranted.TeacherDeficit.Equal(granted.TeacherDeficit) {
		t.Errorf("revoke+regrant must be idempotent: %s != %s",
			regranted.TeacherDeficit, granted.TeacherDeficit)
	}
}

func withExemption(snap Snapshot) Snapshot {
	snap.Exemptions = []exemption.Exemption{
		{ID: "e1", StudentID: "s1", Month: snap.Month, Amount: decimal.NewFromInt(100)},
	}
	return snap
}

func TestDeficitBadAmountFlagsAudit(t *testing.T) {
	snap := Snapshot{
		Teacher: fixedTeacher("1000"),
		Month:   "2026-01",
		Cohort:  []roster.Student{student("s1", "طالب", "100")},
		AllFees: []fees.Record{
			{ID: "f1", StudentID: "s1", Month: "2026-01", Amount: "paid in cash"},
		},
	}

	sum := testEngine(DefaultConfig()).Deficit(snap)
	if got := sum.TeacherDeficit.String(); got != "100" {
		t.Errorf("unparseable amount must count as zero paid: deficit = %s, want 100", got)
	}
	if len(sum.Students) != 1 || len(sum.Students[0].AuditRows) != 1 {
		t.Fatalf("bad row must be flagged for audit: %+v", sum.Students)
	}
	if sum.Students[0].AuditRows[0] != "f1" {
		t.Errorf("AuditRows = %v, want [f1]", sum.Students[0].AuditRows)
	}
}

func TestTotalDeficit(t *testing.T) {
	total := TotalDeficit(
		DeficitSummary{TeacherDeficit: decimal.NewFromInt(140)},
		DeficitSummary{TeacherDeficit: decimal.NewFromInt(60)},
		DeficitSummary{},
	)
	if got := total.String(); got != "200" {
		t.Errorf("TotalDeficit = %s, want 200", got)
	}
}
