// Package export renders expense lists as CSV or XLSX downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"budgetly/internal/analytics"
	"budgetly/internal/models"
)

// Format is a supported export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet holding exported expenses.
const SheetName = "Expenses"

var header = []string{"Date", "Title", "Category", "Amount", "Description"}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns the attachment name for an export generated at now.
func (f Format) Filename(now time.Time) string {
	return fmt.Sprintf("expenses_%s.%s", now.Format("20060102"), f)
}

// ParseFormat validates a format name. An empty name means CSV.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case "", FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}

// Write renders expenses in the given format. Dates are written as calendar
// days in loc.
func Write(w io.Writer, format Format, expenses []models.Expense, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	if format == FormatXLSX {
		return WriteXLSX(w, expenses, loc)
	}
	return WriteCSV(w, expenses, loc)
}

// escapeFormula prefixes user text that a spreadsheet would evaluate as a
// formula with a quote so it is shown literally.
func escapeFormula(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// WriteCSV writes a header row followed by one row per expense.
func WriteCSV(w io.Writer, expenses []models.Expense, loc *time.Location) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, e := range expenses {
		record := []string{
			e.Date.In(loc).Format(analytics.DayLayout),
			escapeFormula(e.Title),
			string(e.Category),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			escapeFormula(e.Description),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes a single-sheet workbook with numeric amount cells.
func WriteXLSX(w io.Writer, expenses []models.Expense, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	// rename the default sheet rather than adding a second one
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return err
		}
	}

	for idx, e := range expenses {
		row := idx + 2
		values := []interface{}{
			e.Date.In(loc).Format(analytics.DayLayout),
			escapeFormula(e.Title),
			string(e.Category),
			e.Amount,
			escapeFormula(e.Description),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 12)
	_ = f.SetColWidth(SheetName, "B", "B", 30)
	_ = f.SetColWidth(SheetName, "C", "C", 18)
	_ = f.SetColWidth(SheetName, "D", "D", 12)
	_ = f.SetColWidth(SheetName, "E", "E", 40)

	_, err := f.WriteTo(w)
	return err
}
