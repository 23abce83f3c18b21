// Package payroll derives teacher compensation and fee reconciliation
// summaries from a snapshot of the source ledgers. The engine never mutates a
// ledger: it reads everything for one (teacher, month) up front and computes
// pure aggregates, so re-running it is always safe and callers own refetch
// timing after any write.
package payroll

import (
	"time"

	"github.com/pkg/errors"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/adjustment"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/finance"
	"github.com/markaz/backend/core/roster"
	"github.com/markaz/backend/core/staff"
)

// Paid scopes for the deficit calculator. The source ledger does not guarantee
// a fee row's month label matches the calendar month it covers, so the default
// compares lifetime payments against the month's expectation; month scope is
// the stricter alternative reading.
const (
	PaidScopeLifetime = "lifetime"
	PaidScopeMonth    = "month"
)

type Config struct {
	WorkingDaysPerMonth int
	PaidScope           string
	// CountWeekendMarks keeps attendance records that fall on a weekend day in
	// the calculation (a manually-entered weekend record may be an intentional
	// catch-up session). Setting it false skips them.
	CountWeekendMarks bool
	WeekendDays       []time.Weekday
}

func DefaultConfig() Config {
	return Config{
		WorkingDaysPerMonth: 22,
		PaidScope:           PaidScopeLifetime,
		CountWeekendMarks:   true,
		WeekendDays:         []time.Weekday{time.Friday, time.Saturday},
	}
}

// Snapshot holds every ledger read the engine needs for one (teacher, month).
// All constituent fetches complete before any aggregate is derived; a partial
// snapshot must never be handed to the calculators.
type Snapshot struct {
	Teacher staff.Teacher
	Month   core.MonthKey

	Attendance  []attendance.Record
	Adjustments []adjustment.Adjustment
	Cohort      []roster.Student
	MonthFees   []fees.Record // month bucket, representations merged, deduped by ID
	AllFees     []fees.Record // lifetime ledger, for the lifetime paid scope
	Exemptions  []exemption.Exemption
	Payments    []finance.Transaction // salary payments for the teacher in month
	Handovers   []finance.Transaction // cash handovers for the teacher in month
}

type Engine struct {
	cfg      Config
	resolver *fees.Resolver

	staffSvc  *staff.Service
	rosterSvc *roster.Service
	attSvc    *attendance.Service
	adjSvc    *adjustment.Service
	feeSvc    *fees.Service
	exSvc     *exemption.Service
	finSvc    *finance.Service
}

func NewEngine(
	cfg Config,
	resolver *fees.Resolver,
	staffSvc *staff.Service,
	rosterSvc *roster.Service,
	attSvc *attendance.Service,
	adjSvc *adjustment.Service,
	feeSvc *fees.Service,
	exSvc *exemption.Service,
	finSvc *finance.Service,
) *Engine {
	if cfg.WorkingDaysPerMonth <= 0 {
		cfg.WorkingDaysPerMonth = DefaultConfig().WorkingDaysPerMonth
	}
	if cfg.PaidScope == "" {
		cfg.PaidScope = PaidScopeLifetime
	}
	return &Engine{
		cfg:       cfg,
		resolver:  resolver,
		staffSvc:  staffSvc,
		rosterSvc: rosterSvc,
		attSvc:    attSvc,
		adjSvc:    adjSvc,
		feeSvc:    feeSvc,
		exSvc:     exSvc,
		finSvc:    finSvc,
	}
}

// Load fetches a consistent snapshot of every ledger for the teacher and
// month. Empty ledgers are valid and yield zero contributions downstream.
func (e *Engine) Load(teacherID string, month core.MonthKey) (Snapshot, error) {
	snap := Snapshot{Month: month}

	teacher, err := e.staffSvc.GetByID(teacherID)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "loading teacher")
	}
	snap.Teacher = teacher

	if snap.Attendance, err = e.attSvc.MonthRecords(teacherID, month); err != nil {
		return Snapshot{}, errors.Wrap(err, "loading attendance")
	}
	if snap.Adjustments, err = e.adjSvc.MonthAdjustments(teacherID, month); err != nil {
		return Snapshot{}, errors.Wrap(err, "loading adjustments")
	}
	if snap.Cohort, err = e.rosterSvc.MonthCohort(teacherID, month); err != nil {
		return Snapshot{}, errors.Wrap(err, "loading roster cohort")
	}
	if snap.AllFees, err = e.feeSvc.QueryAll(); err != nil {
		return Snapshot{}, errors.Wrap(err, "loading fees")
	}
	snap.MonthFees = fees.MergeMonth(snap.AllFees, month)
	if snap.Exemptions, err = e.exSvc.MonthExemptions(month); err != nil {
		return Snapshot{}, errors.Wrap(err, "loading exemptions")
	}
	if snap.Payments, err = e.finSvc.SalaryPayments(teacherID, month); err != nil {
		return Snapshot{}, errors.Wrap(err, "loading salary payments")
	}
	if snap.Handovers, err = e.finSvc.Handovers(teacherID, month); err != nil {
		return Snapshot{}, errors.Wrap(err, "loading handovers")
	}

	return snap, nil
}

func (e *Engine) isWeekend(day time.Weekday) bool {
	for _, w := range e.cfg.WeekendDays {
		if day == w {
			return true
		}
	}
	return false
}
