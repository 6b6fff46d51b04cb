package filter

import (
	"math"
	"net/url"
	"testing"

	"pocketledger/internal/ledger"
)

var categories = []ledger.Category{
	{ID: "c1", Name: "Food"},
	{ID: "c2", Name: "Travel"},
}

var expenses = []ledger.Expense{
	{ID: "1", Title: "Groceries", Amount: 100, CategoryID: "c1", Date: "2024-01-15", PaymentMethod: "Cash"},
	{ID: "2", Title: "Flight", Amount: 250, CategoryID: "c2", Date: "2024-03-01", PaymentMethod: "Credit Card"},
	{ID: "3", Title: "Dinner", Amount: 40, CategoryID: "c1", Date: "2024-02-10", PaymentMethod: "UPI"},
}

func TestApplyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match", "groc", []string{"1"}},
		{"category name match", "food", []string{"1", "3"}},
		{"payment method match", "credit", []string{"2"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ExpenseFilter{Query: &tt.query}
			got := f.Apply(expenses, categories, nil)

			if len(got) != len(tt.want) {
				t.Fatalf("matched %d expenses, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("match %d = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestApplyAmountRange(t *testing.T) {
	min := 50.0
	max := 200.0
	f := &ExpenseFilter{AmountMin: &min, AmountMax: &max}

	got := f.Apply(expenses, categories, nil)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("got %+v, want only expense 1", got)
	}
}

func TestApplySort(t *testing.T) {
	f := &ExpenseFilter{}

	got := f.Apply(expenses, categories, &SortOptions{Field: SortByAmount, Direction: SortDesc})
	wantOrder := []string{"2", "1", "3"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("sorted[%d] = %q, want %q", i, got[i].ID, id)
		}
	}

	// Input order untouched.
	if expenses[0].ID != "1" {
		t.Error("Apply mutated its input")
	}
}

func TestApplySortAmountNaN(t *testing.T) {
	withNaN := []ledger.Expense{
		{ID: "small", Amount: 5, Date: "2024-01-01"},
		{ID: "bad-import", Amount: math.NaN(), Date: "2024-01-02"},
		{ID: "big", Amount: 100, Date: "2024-01-03"},
	}

	f := &ExpenseFilter{}
	got := f.Apply(withNaN, categories, &SortOptions{Field: SortByAmount, Direction: SortDesc})

	// NaN sorts below every number.
	wantOrder := []string{"big", "small", "bad-import"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("sorted[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestParseExpenseFilters(t *testing.T) {
	params := url.Values{}
	params.Set("q", "groceries")
	params.Set("amount_min", "10.5")
	params.Set("date_from", "2024-01-01")
	params.Set("sort", "amount:asc")

	f, sortOpts, err := ParseExpenseFilters(params)
	if err != nil {
		t.Fatalf("ParseExpenseFilters returned error: %v", err)
	}

	if f.Query == nil || *f.Query != "groceries" {
		t.Errorf("Query = %v", f.Query)
	}
	if f.AmountMin == nil || *f.AmountMin != 10.5 {
		t.Errorf("AmountMin = %v", f.AmountMin)
	}
	if f.DateFrom == nil {
		t.Error("DateFrom not parsed")
	}
	if sortOpts == nil || sortOpts.Field != SortByAmount || sortOpts.Direction != SortAsc {
		t.Errorf("sortOpts = %+v", sortOpts)
	}
}

func TestParseExpenseFiltersErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad amount", "amount_min", "abc"},
		{"bad date", "date_from", "15/01/2024"},
		{"bad sort field", "sort", "title:asc"},
		{"bad sort direction", "sort", "date:up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			params.Set(tt.key, tt.value)

			if _, _, err := ParseExpenseFilters(params); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseExpenseFiltersEmpty(t *testing.T) {
	f, sortOpts, err := ParseExpenseFilters(url.Values{})
	if err != nil {
		t.Fatalf("ParseExpenseFilters returned error: %v", err)
	}
	if f.Query != nil || f.AmountMin != nil || f.AmountMax != nil || f.DateFrom != nil || f.DateTo != nil {
		t.Errorf("expected empty filter, got %+v", f)
	}
	if sortOpts != nil {
		t.Errorf("expected nil sort, got %+v", sortOpts)
	}
}
