package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/finlab/statements"
)

func writeWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	l := statements.NewLedger()
	l.Append(
		statements.NewTransaction(statements.NewDate(2024, time.January, 15), "Cash", statements.CatRevenue, statements.M(50_000, "USD"), statements.Credit),
		statements.NewTransaction(statements.NewDate(2024, time.January, 15), "Inventory", statements.CatCOGS, statements.M(20_000, "USD"), statements.Debit),
		statements.NewTransaction(statements.NewDate(2024, time.February, 15), "Cash", statements.CatRevenue, statements.M(60_000, "USD"), statements.Credit),
		statements.NewTransaction(statements.NewDate(2024, time.January, 1), "Cash", statements.CatAsset, statements.M(100_000, "USD"), statements.Debit),
		statements.NewTransaction(statements.NewDate(2024, time.January, 1), "Common Stock", statements.CatEquity, statements.M(100_000, "USD"), statements.Credit),
	)
	taxonomy := statements.DefaultTaxonomy()
	cfg := statements.DefaultConfig()
	current, prior := statements.NewPeriod(2024, time.February), statements.NewPeriod(2024, time.January)

	var buf bytes.Buffer
	err := Write(&buf,
		statements.NewIncomeStatement(l, taxonomy, cfg, current),
		statements.NewBalanceSheet(l, taxonomy, statements.Date{}),
		statements.NewVarianceAnalysis(l, taxonomy, cfg, current, prior),
	)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteSheets(t *testing.T) {
	f := writeWorkbook(t)

	got := f.GetSheetList()
	want := []string{SheetIncome, SheetBalance, SheetVariance}
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for _, name := range want {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			t.Errorf("missing sheet %q (index %d, err %v)", name, idx, err)
		}
	}
	if idx, _ := f.GetSheetIndex("Sheet1"); idx >= 0 {
		t.Error("default sheet was not removed")
	}
}

// cell reads a raw cell value, failing the test on error.
func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, axis, err)
	}
	return v
}

func TestWriteIncomeLayout(t *testing.T) {
	f := writeWorkbook(t)

	// Title on row 1, blank row 2, header on row 3, data from row 4.
	tests := []struct {
		axis, want string
	}{
		{"A1", "Income Statement - 2024-02"},
		{"A2", ""},
		{"A3", "Line Item"},
		{"B3", "Amount"},
		{"A4", "Revenue"},
		{"B4", "60000"},
	}
	for _, tc := range tests {
		if got := cell(t, f, SheetIncome, tc.axis); got != tc.want {
			t.Errorf("%s = %q, want %q", tc.axis, got, tc.want)
		}
	}
}

func TestWriteBalanceLayout(t *testing.T) {
	f := writeWorkbook(t)

	if got := cell(t, f, SheetBalance, "A1"); got != "Balance Sheet" {
		t.Errorf("A1 = %q, want %q", got, "Balance Sheet")
	}
	// First asset account, indented.
	if got := cell(t, f, SheetBalance, "A4"); got != "  Cash" {
		t.Errorf("A4 = %q, want %q", got, "  Cash")
	}
	if got := cell(t, f, SheetBalance, "B4"); got != "100000" {
		t.Errorf("B4 = %q, want %q", got, "100000")
	}
}

func TestWriteVarianceLayout(t *testing.T) {
	f := writeWorkbook(t)

	tests := []struct {
		axis, want string
	}{
		{"A1", "Variance Analysis: 2024-01 vs 2024-02"},
		{"F3", "Significant"},
		{"A4", "Revenue"},
		{"B4", "50000"},
		{"C4", "60000"},
		{"D4", "10000"},
		{"E4", "20"},
		{"F4", "yes"},
	}
	for _, tc := range tests {
		if got := cell(t, f, SheetVariance, tc.axis); got != tc.want {
			t.Errorf("%s = %q, want %q", tc.axis, got, tc.want)
		}
	}
}
