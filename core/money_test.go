package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "plain", in: "150", want: "150", wantOK: true},
		{name: "decimal", in: "150.50", want: "150.5", wantOK: true},
		{name: "thousands separator", in: "1,500", want: "1500", wantOK: true},
		{name: "currency suffix", in: "200 ج.م", want: "200", wantOK: true},
		{name: "currency suffix with thousands", in: "1,500 ج.م", want: "1500", wantOK: true},
		{name: "currency prefix", in: "EGP 200", want: "200", wantOK: true},
		{name: "dotted currency prefix", in: "ج.م 200", want: "200", wantOK: true},
		{name: "dotted currency prefix with decimal", in: "ج.م 150.50", want: "150.5", wantOK: true},
		{name: "arabic-indic digits", in: "٢٠٠", want: "200", wantOK: true},
		{name: "extended arabic digits", in: "۲۵۰", want: "250", wantOK: true},
		{name: "negative", in: "-75", want: "-75", wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "no digits", in: "paid in full", wantOK: false},
		{name: "lone minus", in: "-", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				if !got.IsZero() {
					t.Errorf("ParseAmount(%q) = %s, want zero on failure", tt.in, got)
				}
				return
			}
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	in := decimal.RequireFromString("977.272727272727")
	if got := Round2(in); got.String() != "977.27" {
		t.Errorf("Round2() = %s, want 977.27", got)
	}
}

func TestMaxZero(t *testing.T) {
	if got := MaxZero(decimal.RequireFromString("-50")); !got.IsZero() {
		t.Errorf("MaxZero(-50) = %s, want 0", got)
	}
	if got := MaxZero(decimal.RequireFromString("50")); got.String() != "50" {
		t.Errorf("MaxZero(50) = %s, want 50", got)
	}
}
