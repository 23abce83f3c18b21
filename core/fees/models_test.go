package fees

import (
	"testing"

	"github.com/markaz/backend/core"
)

func TestMergeMonth(t *testing.T) {
	records := []Record{
		{ID: "f1", StudentID: "s1", Month: "2026-01", Amount: "100"},
		{ID: "f2", StudentID: "s2", Month: "يناير 2026", Amount: "150"},
		{ID: "f1", StudentID: "s1", Month: "يناير 2026", Amount: "100"}, // same fee under the localized label
		{ID: "f3", StudentID: "s3", Month: "2026-02", Amount: "100"},
		{ID: "f4", StudentID: "s4", Month: "not-a-month", Amount: "100"},
	}

	merged := MergeMonth(records, core.MonthKey("2026-01"))
	if len(merged) != 2 {
		t.Fatalf("MergeMonth() returned %d records, want 2", len(merged))
	}
	total, badRows := SumAmounts(merged)
	if total.String() != "250" {
		t.Errorf("merged month total = %s, want 250 (duplicate must count once)", total)
	}
	if len(badRows) != 0 {
		t.Errorf("unexpected audit rows: %v", badRows)
	}
}

func TestSumAmounts(t *testing.T) {
	records := []Record{
		{ID: "f1", Amount: "100"},
		{ID: "f2", Amount: "1,500 ج.م"},
		{ID: "f3", Amount: "paid"},
		{ID: "f4", Amount: "٢٠٠"},
	}

	total, badRows := SumAmounts(records)
	if total.String() != "1800" {
		t.Errorf("SumAmounts() = %s, want 1800", total)
	}
	if len(badRows) != 1 || badRows[0] != "f3" {
		t.Errorf("badRows = %v, want [f3]", badRows)
	}
}
