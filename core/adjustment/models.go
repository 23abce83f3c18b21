package adjustment

import (
	"errors"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
)

var (
	// errors
	ErrNotFound = errors.New("adjustment not found")
)

// Kinds. The kind is an explicit field on the record; the historical habit of
// encoding it as a "reward:" prefix on the reason text survives only in
// KindFromLegacyReason for importing old rows.
const (
	KindReward    = "reward"
	KindDeduction = "deduction"
)

// Adjustment is a free-form signed ledger entry. Amount is always stored
// positive; Kind determines the sign at aggregation time.
type Adjustment struct {
	ID        string          `json:"id"`
	TeacherID string          `json:"teacher_id"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      string          `json:"kind"`
	Reason    string          `json:"reason"`
	AppliedAt time.Time       `json:"applied_at"` // UTC
}

func (a Adjustment) IsReward() bool { return a.Kind == KindReward }

// NewAdjustment contains information needed to create a new Adjustment.
type NewAdjustment struct {
	TeacherID string          `json:"teacher_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"dgt0"`
	Kind      string          `json:"kind" validate:"required,oneof=reward deduction"`
	Reason    string          `json:"reason" validate:"required"`
}

func (na *NewAdjustment) Validate(validate *validator.Validate, _ ut.Translator) error {
	na.TeacherID = core.CleanString(na.TeacherID)
	na.Reason = core.CleanString(na.Reason)
	return validate.Struct(na)
}

var legacyRewardPrefixes = []string{"reward:", "مكافأة:", "مكافاه:"}

// KindFromLegacyReason classifies an imported row by its reason prefix:
// a recognized reward prefix means reward, anything else is a deduction.
func KindFromLegacyReason(reason string) string {
	reason = strings.ToLower(core.CleanString(reason))
	for _, p := range legacyRewardPrefixes {
		if strings.HasPrefix(reason, p) {
			return KindReward
		}
	}
	return KindDeduction
}
