package models

import "testing"

func TestSortedLabels(t *testing.T) {
	table := &StatementTable{Lines: map[string][]float64{
		"totalDebt":         nil,
		"accountsPayable":   nil,
		"netWorkingCapital": nil,
	}}

	got := table.SortedLabels()
	want := []string{"accountsPayable", "netWorkingCapital", "totalDebt"}
	if len(got) != len(want) {
		t.Fatalf("SortedLabels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFindLineScansSortedLabels(t *testing.T) {
	table := &StatementTable{Lines: map[string][]float64{
		"netDebtRepayment":      {10},
		"longTermDebtRepayment": {20},
	}}

	label, values, ok := table.FindLine("repayment", "debt")
	if !ok {
		t.Fatal("expected a matching line")
	}
	// Both lines match; the lexically first label must win every time
	if label != "longTermDebtRepayment" {
		t.Errorf("label = %s, want longTermDebtRepayment", label)
	}
	if len(values) != 1 || values[0] != 20 {
		t.Errorf("values = %v, want [20]", values)
	}
}
