package core

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    MonthKey
		wantErr bool
	}{
		{name: "canonical", in: "2026-01", want: "2026-01"},
		{name: "canonical trimmed", in: "  2026-01 ", want: "2026-01"},
		{name: "arabic label", in: "يناير 2026", want: "2026-01"},
		{name: "arabic label december", in: "ديسمبر 2025", want: "2025-12"},
		{name: "arabic label hamza variant", in: "اكتوبر 2026", want: "2026-10"},
		{name: "arabic-indic year digits", in: "مارس ٢٠٢٦", want: "2026-03"},
		{name: "unknown label", in: "lol 2026", wantErr: true},
		{name: "garbage", in: "not-a-month", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMonth(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameMonth(t *testing.T) {
	if !SameMonth("يناير 2026", "2026-01") {
		t.Error("localized and canonical forms of the same month must match")
	}
	if SameMonth("2026-01", "2026-02") {
		t.Error("different months must not match")
	}
	if SameMonth("garbage", "2026-01") {
		t.Error("unparseable month must not match anything")
	}
}

func TestMonthKeyContains(t *testing.T) {
	m := MonthKey("2026-01")

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "first instant", t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "mid month", t: time.Date(2026, 1, 15, 13, 30, 0, 0, time.UTC), want: true},
		{name: "last instant", t: time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC), want: true},
		{name: "next month", t: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), want: false},
		{name: "previous month", t: time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
