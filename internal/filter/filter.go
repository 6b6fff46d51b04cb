// Package filter narrows and orders an expense snapshot for list views.
package filter

import (
	"math"
	"sort"
	"strings"
	"time"

	"pocketledger/internal/ledger"
)

// ExpenseFilter holds filter criteria for expense listings. All fields are
// pointers to distinguish "not set" from zero values.
type ExpenseFilter struct {
	Query     *string    // substring match on title, payment method, or category name
	AmountMin *float64   // minimum amount (inclusive)
	AmountMax *float64   // maximum amount (inclusive)
	DateFrom  *time.Time // start date (inclusive)
	DateTo    *time.Time // end date (inclusive)
}

// SortField represents a field that can be sorted on.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOptions holds sorting preferences.
type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// Apply returns the expenses matching f, ordered by the sort options when
// given, otherwise in insertion order.
func (f *ExpenseFilter) Apply(expenses []ledger.Expense, categories []ledger.Category, sortOpts *SortOptions) []ledger.Expense {
	matched := make([]ledger.Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.matches(e, categories) {
			matched = append(matched, e)
		}
	}

	if sortOpts != nil {
		sortExpenses(matched, sortOpts)
	}

	return matched
}

func (f *ExpenseFilter) matches(e ledger.Expense, categories []ledger.Category) bool {
	if f.Query != nil {
		query := strings.ToLower(*f.Query)
		categoryName := ""
		if c, ok := ledger.FindCategory(categories, e.CategoryID); ok {
			categoryName = c.Name
		}

		if !strings.Contains(strings.ToLower(e.Title), query) &&
			!strings.Contains(strings.ToLower(e.PaymentMethod), query) &&
			!strings.Contains(strings.ToLower(categoryName), query) {
			return false
		}
	}

	if f.AmountMin != nil && (math.IsNaN(e.Amount) || e.Amount < *f.AmountMin) {
		return false
	}
	if f.AmountMax != nil && (math.IsNaN(e.Amount) || e.Amount > *f.AmountMax) {
		return false
	}

	if f.DateFrom != nil || f.DateTo != nil {
		date, ok := ledger.ParseDate(e.Date)
		if !ok {
			return false
		}
		if f.DateFrom != nil && date.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && date.After(*f.DateTo) {
			return false
		}
	}

	return true
}

func sortExpenses(expenses []ledger.Expense, opts *SortOptions) {
	less := func(i, j int) bool {
		switch opts.Field {
		case SortByAmount:
			return amountLess(expenses[i].Amount, expenses[j].Amount)
		case SortByDate:
			fallthrough
		default:
			return expenses[i].Date < expenses[j].Date
		}
	}

	if opts.Direction == SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(expenses, less)
}

// amountLess orders NaN below every number so the comparator stays a total
// order under sort.
func amountLess(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	if math.IsNaN(b) {
		return false
	}
	return a < b
}
