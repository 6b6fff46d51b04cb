// Package csvio maps expenses to and from the flat CSV shape used for
// import and export.
//
// Export format: UTF-8, comma separated, header
// Title,Amount,Date,Category,PaymentMethod,Notes. Category carries the
// resolved category name; an unresolved reference exports as the empty
// string. Import accepts the same vocabulary, ignores extra columns, and
// defaults missing ones.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"pocketledger/internal/ledger"
)

var header = []string{"Title", "Amount", "Date", "Category", "PaymentMethod", "Notes"}

// ToRows maps expenses to flat rows, header first.
func ToRows(expenses []ledger.Expense, categories []ledger.Category) [][]string {
	rows := make([][]string, 0, len(expenses)+1)
	rows = append(rows, header)

	for _, e := range expenses {
		categoryName := ""
		if c, ok := ledger.FindCategory(categories, e.CategoryID); ok {
			categoryName = c.Name
		}

		amount := ""
		if !math.IsNaN(e.Amount) {
			amount = strconv.FormatFloat(e.Amount, 'f', -1, 64)
		}

		rows = append(rows, []string{
			e.Title,
			amount,
			e.Date,
			categoryName,
			e.PaymentMethod,
			e.Notes,
		})
	}

	return rows
}

// FromRows maps flat rows back to expenses. The first row is the header;
// column order is not assumed. Every imported expense gets a fresh id.
//
// A non-numeric Amount is kept as NaN rather than rejected; the aggregation
// layer excludes NaN amounts from every sum. An unrecognized Category name
// leaves the reference unset.
func FromRows(rows [][]string, categories []ledger.Category) []ledger.Expense {
	if len(rows) == 0 {
		return []ledger.Expense{}
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	expenses := make([]ledger.Expense, 0, len(rows)-1)
	for _, row := range rows[1:] {
		amount, err := strconv.ParseFloat(field(row, "Amount"), 64)
		if err != nil {
			amount = math.NaN()
		}

		categoryID := ""
		if c, ok := ledger.FindCategoryByName(categories, field(row, "Category")); ok {
			categoryID = c.ID
		}

		currency := field(row, "Currency")
		if currency == "" {
			currency = ledger.DefaultCurrency
		}

		date := field(row, "Date")
		if date == "" {
			date = time.Now().Format(ledger.DateLayout)
		}

		expenses = append(expenses, ledger.Expense{
			ID:            ledger.NewExpenseID(),
			Title:         field(row, "Title"),
			Amount:        amount,
			Currency:      currency,
			CategoryID:    categoryID,
			Date:          date,
			PaymentMethod: field(row, "PaymentMethod"),
			Notes:         field(row, "Notes"),
		})
	}

	return expenses
}

// Export writes the expenses as CSV.
func Export(w io.Writer, expenses []ledger.Expense, categories []ledger.Category) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.WriteAll(ToRows(expenses, categories)); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

// Import reads CSV from r and maps every data row to an expense.
func Import(r io.Reader, categories []ledger.Category) ([]ledger.Expense, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}

	return FromRows(rows, categories), nil
}
