// Package dashboard computes derived metrics from a state snapshot. Every
// function is pure: no side effects, deterministic given its inputs.
//
// Amounts carrying NaN (a tolerated bad import) are excluded from every sum so
// a single malformed row never corrupts the totals.
package dashboard

import (
	"math"
	"sort"
	"time"

	"pocketledger/internal/ledger"
	"pocketledger/internal/util"
)

const DefaultTopExpenses = 10

const DefaultTrailingMonths = 6

// Total sums all expense amounts. Empty input yields 0.
func Total(expenses []ledger.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if math.IsNaN(e.Amount) {
			continue
		}
		total += e.Amount
	}
	return total
}

// MonthTotal sums the expenses whose date falls in the same calendar month
// and year as ref.
func MonthTotal(expenses []ledger.Expense, ref time.Time) float64 {
	var total float64
	for _, e := range expenses {
		if math.IsNaN(e.Amount) {
			continue
		}
		date, ok := ledger.ParseDate(e.Date)
		if !ok || !util.SameMonth(date, ref) {
			continue
		}
		total += e.Amount
	}
	return total
}

// Average is the mean expense amount, 0 when there are no expenses.
func Average(expenses []ledger.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	return Total(expenses) / float64(len(expenses))
}

// TopCategory returns the category whose expenses sum highest, with that sum.
// Ties go to the first category in iteration order. ok is false when there
// are no categories or every sum is 0.
func TopCategory(expenses []ledger.Expense, categories []ledger.Category) (ledger.Category, float64, bool) {
	var top ledger.Category
	var topTotal float64
	found := false

	for _, c := range categories {
		var total float64
		for _, e := range expenses {
			if e.CategoryID != c.ID || math.IsNaN(e.Amount) {
				continue
			}
			total += e.Amount
		}
		if total > topTotal {
			top = c
			topTotal = total
			found = true
		}
	}

	return top, topTotal, found
}

// MonthPoint is one entry of a monthly spending series.
type MonthPoint struct {
	Label  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// MonthlySeries returns one point per calendar month for the trailing months
// window ending at ref's month inclusive, in chronological order. Months with
// no expenses yield 0.
func MonthlySeries(expenses []ledger.Expense, months int, ref time.Time) []MonthPoint {
	if months <= 0 {
		return []MonthPoint{}
	}

	series := make([]MonthPoint, 0, months)
	start := util.MonthStart(ref).AddDate(0, -(months - 1), 0)

	for i := 0; i < months; i++ {
		bucket := start.AddDate(0, i, 0)

		var amount float64
		for _, e := range expenses {
			if math.IsNaN(e.Amount) {
				continue
			}
			date, ok := ledger.ParseDate(e.Date)
			if !ok || !util.SameMonth(date, bucket) {
				continue
			}
			amount += e.Amount
		}

		series = append(series, MonthPoint{
			Label:  bucket.Month().String()[:3],
			Amount: amount,
		})
	}

	return series
}

// Slice is one category's share of the overall spending.
type Slice struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Value float64 `json:"value"`
}

// Distribution sums expenses per category. Categories with a zero sum are
// excluded.
func Distribution(expenses []ledger.Expense, categories []ledger.Category) []Slice {
	slices := []Slice{}

	for _, c := range categories {
		var value float64
		for _, e := range expenses {
			if e.CategoryID != c.ID || math.IsNaN(e.Amount) {
				continue
			}
			value += e.Amount
		}
		if value > 0 {
			slices = append(slices, Slice{Name: c.Name, Color: c.Color, Value: value})
		}
	}

	return slices
}

// TopExpenses returns the n largest expenses by amount, descending. Ties keep
// insertion order. NaN amounts are excluded so the comparator stays a total
// order.
func TopExpenses(expenses []ledger.Expense, n int) []ledger.Expense {
	if n <= 0 {
		return []ledger.Expense{}
	}

	sorted := make([]ledger.Expense, 0, len(expenses))
	for _, e := range expenses {
		if math.IsNaN(e.Amount) {
			continue
		}
		sorted = append(sorted, e)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CategoryTotal names the leading category and what was spent in it.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon"`
	Total float64 `json:"total"`
}

// Summary bundles every dashboard metric for one snapshot.
type Summary struct {
	Total        float64          `json:"total"`
	MonthTotal   float64          `json:"monthTotal"`
	Average      float64          `json:"average"`
	Count        int              `json:"count"`
	TopCategory  *CategoryTotal   `json:"topCategory"`
	Monthly      []MonthPoint     `json:"monthly"`
	Distribution []Slice          `json:"distribution"`
	TopExpenses  []ledger.Expense `json:"topExpenses"`
}

// Summarize computes the full dashboard for a snapshot, with ref as "now".
func Summarize(expenses []ledger.Expense, categories []ledger.Category, months int, ref time.Time) Summary {
	summary := Summary{
		Total:        Total(expenses),
		MonthTotal:   MonthTotal(expenses, ref),
		Average:      Average(expenses),
		Count:        len(expenses),
		Monthly:      MonthlySeries(expenses, months, ref),
		Distribution: Distribution(expenses, categories),
		TopExpenses:  TopExpenses(expenses, DefaultTopExpenses),
	}

	if top, total, ok := TopCategory(expenses, categories); ok {
		summary.TopCategory = &CategoryTotal{Name: top.Name, Icon: top.Icon, Total: total}
	}

	return summary
}
