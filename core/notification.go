package core

import "github.com/shopspring/decimal"

type NotificationKind string

const (
	NotifyReward    NotificationKind = "reward"
	NotifyDeduction NotificationKind = "deduction"
	NotifyReport    NotificationKind = "report"
)

// Notification is a one-way message to a teacher (or the manager inbox) about
// a ledger event or a generated report.
type Notification struct {
	TeacherID   string
	TeacherName string
	Kind        NotificationKind
	Amount      decimal.Decimal
	Note        string
	Body        string // pre-assembled content (report kind)
	Actor       string
}

// NotificationService is any service that can deliver notifications.
// Delivery is best-effort and fire-and-forget: implementations send
// concurrently and a failed delivery never propagates to the ledger write
// that triggered it.
type NotificationService interface {
	Notify(notifications ...*Notification)
}
