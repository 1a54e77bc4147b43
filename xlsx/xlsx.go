// Package xlsx writes derived statements to a styled spreadsheet. It is
// pure presentation: it lays out the row sequences produced by the
// statements package and computes nothing.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/finlab/statements"
)

// Sheet names of the exported workbook.
const (
	SheetIncome   = "Income Statement"
	SheetBalance  = "Balance Sheet"
	SheetVariance = "Variance Analysis"
)

const (
	headerFillColor = "366092"
	headerFontColor = "FFFFFF"
	currencyFormat  = `$#,##0.00`
	percentFormat   = `0.0"%"`
	maxColWidth     = 50
)

// Write renders the three statements into one workbook on w, one sheet per
// statement.
func Write(w io.Writer, is *statements.IncomeStatement, bs *statements.BalanceSheet, va *statements.VarianceAnalysis) error {
	f := excelize.NewFile()
	defer f.Close()

	b := &book{f: f}
	if err := b.styles(); err != nil {
		return err
	}
	if err := b.incomeSheet(is); err != nil {
		return err
	}
	if err := b.balanceSheet(bs); err != nil {
		return err
	}
	if err := b.varianceSheet(va); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on the income statement.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("could not remove default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(SheetIncome)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

// book wraps the excelize file with the shared style ids.
type book struct {
	f        *excelize.File
	title    int
	header   int
	currency int
	percent  int
}

func (b *book) styles() error {
	var err error
	b.title, err = b.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return fmt.Errorf("could not create title style: %w", err)
	}
	b.header, err = b.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}
	currencyFmt := currencyFormat
	b.currency, err = b.f.NewStyle(&excelize.Style{
		CustomNumFmt: &currencyFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return fmt.Errorf("could not create currency style: %w", err)
	}
	percentFmt := percentFormat
	b.percent, err = b.f.NewStyle(&excelize.Style{
		CustomNumFmt: &percentFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return fmt.Errorf("could not create percent style: %w", err)
	}
	return nil
}

func (b *book) incomeSheet(is *statements.IncomeStatement) error {
	s, err := b.newSheet(SheetIncome, fmt.Sprintf("Income Statement - %s", is.Period), "Line Item", "Amount")
	if err != nil {
		return err
	}
	for _, row := range is.Rows {
		s.cell(1, text(row.Label))
		s.cell(2, amount(row.Value, b.currency))
		s.next()
	}
	return s.finish()
}

func (b *book) balanceSheet(bs *statements.BalanceSheet) error {
	title := "Balance Sheet"
	if !bs.AsOf.IsZero() {
		title = fmt.Sprintf("Balance Sheet - as of %s", bs.AsOf)
	}
	s, err := b.newSheet(SheetBalance, title, "Line Item", "Amount")
	if err != nil {
		return err
	}

	section := func(sec statements.BalanceSection) {
		for _, line := range sec.Accounts {
			s.cell(1, text("  "+line.Account))
			s.cell(2, amount(line.Value, b.currency))
			s.next()
		}
		s.cell(1, text("Total "+sec.Label))
		s.cell(2, amount(sec.Total, b.currency))
		s.next()
	}
	section(bs.Assets)
	section(bs.Liabilities)
	section(bs.Equity)
	s.cell(1, text("TOTAL LIABILITIES & EQUITY"))
	s.cell(2, amount(bs.TotalLiabilitiesAndEquity(), b.currency))
	s.next()
	return s.finish()
}

func (b *book) varianceSheet(va *statements.VarianceAnalysis) error {
	title := fmt.Sprintf("Variance Analysis: %s vs %s", va.Prior, va.Current)
	s, err := b.newSheet(SheetVariance, title,
		"Line Item", "Prior Period", "Current Period", "Variance $", "Variance %", "Significant")
	if err != nil {
		return err
	}
	for _, row := range va.Rows {
		s.cell(1, text(row.Label))
		s.cell(2, amount(row.Prior, b.currency))
		s.cell(3, amount(row.Current, b.currency))
		s.cell(4, amount(row.Delta, b.currency))
		if row.Pct.Defined() {
			s.cell(5, cellValue{value: row.Pct.Ratio() * 100, style: b.percent, width: 8})
		}
		if row.Flagged {
			s.cell(6, text("yes"))
		}
		s.next()
	}
	return s.finish()
}

// cellValue is one cell to place: a value, its style, and the width it needs.
type cellValue struct {
	value any
	style int
	width float64
}

func text(s string) cellValue {
	return cellValue{value: s, width: float64(len(s))}
}

func amount(m statements.Money, style int) cellValue {
	return cellValue{value: m.AsFloat(), style: style, width: float64(len(m.String()))}
}

// sheet tracks the row cursor and per-column widths while a sheet is filled.
type sheet struct {
	b      *book
	name   string
	row    int
	widths map[int]float64
	err    error
}

// newSheet creates a sheet laid out like the original workbooks: a bold
// title on row 1, a blank row, then the styled header on row 3.
func (b *book) newSheet(name, title string, headers ...string) (*sheet, error) {
	if _, err := b.f.NewSheet(name); err != nil {
		return nil, fmt.Errorf("could not create sheet %q: %w", name, err)
	}
	s := &sheet{b: b, name: name, row: 3, widths: make(map[int]float64)}

	s.set(1, 1, title, b.title)
	for i, h := range headers {
		s.set(i+1, 3, h, b.header)
		s.grow(i+1, float64(len(h)))
	}
	s.row = 4
	return s, s.err
}

// cell places a value in the given column of the current row.
func (s *sheet) cell(col int, v cellValue) {
	s.set(col, s.row, v.value, v.style)
	s.grow(col, v.width)
}

// next advances to the next row.
func (s *sheet) next() { s.row++ }

func (s *sheet) set(col, row int, value any, style int) {
	if s.err != nil {
		return
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.b.f.SetCellValue(s.name, name, value); err != nil {
		s.err = fmt.Errorf("could not set cell %s!%s: %w", s.name, name, err)
		return
	}
	if style != 0 {
		if err := s.b.f.SetCellStyle(s.name, name, name, style); err != nil {
			s.err = fmt.Errorf("could not style cell %s!%s: %w", s.name, name, err)
		}
	}
}

func (s *sheet) grow(col int, width float64) {
	if width > s.widths[col] {
		s.widths[col] = width
	}
}

// finish sizes the columns to their content, capped like the original export.
func (s *sheet) finish() error {
	if s.err != nil {
		return s.err
	}
	for col, width := range s.widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		w := width + 2
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := s.b.f.SetColWidth(s.name, name, name, w); err != nil {
			return fmt.Errorf("could not size column %s!%s: %w", s.name, name, err)
		}
	}
	return nil
}
