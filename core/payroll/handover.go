package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/finance"
)

// HandoverSummary reconciles the cash a teacher collected against what they
// handed over to management.
type HandoverSummary struct {
	TotalCollected    decimal.Decimal `json:"total_collected"`
	TotalHandedOver   decimal.Decimal `json:"total_handed_over"`
	CashOnHandDeficit decimal.Decimal `json:"cash_on_hand_deficit"`
	// AuditRows lists fee record IDs whose amount could not be parsed.
	AuditRows []string `json:"audit_rows,omitempty"`
}

// Handover computes the month's cash position for the teacher. Handovers are
// never matched to specific fee records (many-to-many); reconciliation is
// aggregate-only, and the deficit clamps at zero when a teacher hands over
// more than the resolver attributes to them.
func (e *Engine) Handover(snap Snapshot) HandoverSummary {
	collected, badRows := e.collectedByTeacher(snap)
	handedOver := finance.Sum(snap.Handovers)

	return HandoverSummary{
		TotalCollected:    core.Round2(collected),
		TotalHandedOver:   core.Round2(handedOver),
		CashOnHandDeficit: core.MaxZero(core.Round2(collected.Sub(handedOver))),
		AuditRows:         badRows,
	}
}

// collectedByTeacher sums the month's fees whose collector resolves to the
// snapshot teacher. Fees whose free-text identity matches neither the teacher
// nor a manager marker stay with the manager, so no amount ever drops out of
// every aggregate.
func (e *Engine) collectedByTeacher(snap Snapshot) (decimal.Decimal, []string) {
	var total decimal.Decimal
	var badRows []string
	for _, rec := range snap.MonthFees {
		if !e.resolver.CollectedBy(rec, snap.Teacher) {
			continue
		}
		amt, ok := rec.AmountValue()
		if !ok {
			badRows = append(badRows, rec.ID)
			continue
		}
		total = total.Add(amt)
	}
	return total, badRows
}
