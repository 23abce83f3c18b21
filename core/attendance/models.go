package attendance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// errors
	ErrNotFound      = errors.New("attendance record not found")
	ErrInvalidStatus = errors.New("invalid attendance status")
)

// Day statuses. A day with no record counts as present when it is past or
// today, and stays undetermined (no contribution) when it is in the future.
const (
	StatusPresent       = "present"
	StatusAbsent        = "absent"
	StatusQuarter       = "quarter"
	StatusHalf          = "half"
	StatusQuarterReward = "quarter_reward"
	StatusHalfReward    = "half_reward"
)

var statusFactors = map[string]struct {
	factor decimal.Decimal
	reward bool
}{
	StatusAbsent:        {decimal.NewFromInt(1), false},
	StatusHalf:          {decimal.NewFromFloat(0.5), false},
	StatusQuarter:       {decimal.NewFromFloat(0.25), false},
	StatusHalfReward:    {decimal.NewFromFloat(0.5), true},
	StatusQuarterReward: {decimal.NewFromFloat(0.25), true},
}

func ValidStatus(s string) bool {
	if s == StatusPresent {
		return true
	}
	_, ok := statusFactors[s]
	return ok
}

// Factor returns the daily-rate multiplier of a status and whether it is a
// reward. present and unknown statuses factor zero.
func Factor(status string) (factor decimal.Decimal, reward bool) {
	f, ok := statusFactors[status]
	if !ok {
		return decimal.Zero, false
	}
	return f.factor, f.reward
}

// Record is one teacher day. At most one record exists per (teacher, day);
// the store upserts on that composite key.
type Record struct {
	TeacherID string    `json:"teacher_id"`
	Date      time.Time `json:"date"` // normalized to midnight UTC
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// Day normalizes the record date to midnight UTC, the upsert key.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
