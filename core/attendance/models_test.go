package attendance

import (
	"testing"
	"time"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		StatusPresent, StatusAbsent, StatusQuarter, StatusHalf,
		StatusQuarterReward, StatusHalfReward,
	} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "late", "Present", "full"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		status string
		factor string
		reward bool
	}{
		{StatusAbsent, "1", false},
		{StatusHalf, "0.5", false},
		{StatusQuarter, "0.25", false},
		{StatusHalfReward, "0.5", true},
		{StatusQuarterReward, "0.25", true},
		{StatusPresent, "0", false},
		{"bogus", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			factor, reward := Factor(tt.status)
			if got := factor.String(); got != tt.factor {
				t.Errorf("factor = %s, want %s", got, tt.factor)
			}
			if reward != tt.reward {
				t.Errorf("reward = %t, want %t", reward, tt.reward)
			}
		})
	}
}

func TestDay(t *testing.T) {
	cairo := time.FixedZone("EET", 2*60*60)
	in := time.Date(2026, 1, 5, 1, 30, 0, 0, cairo) // 2026-01-04 23:30 UTC
	want := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	if got := Day(in); !got.Equal(want) {
		t.Errorf("Day(%v) = %v, want %v", in, got, want)
	}
	if got := Day(want); !got.Equal(want) {
		t.Errorf("Day must be idempotent: got %v", got)
	}
}
