package ledger

import (
	"strings"
	"testing"
)

func TestNewExpenseID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewExpenseID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d calls", id, i)
		}
		seen[id] = true

		if !strings.Contains(id, "-") {
			t.Fatalf("id %q missing random suffix", id)
		}
	}
}

func TestNewCategoryID(t *testing.T) {
	if NewCategoryID() == NewCategoryID() {
		t.Error("category ids must be unique")
	}
}

func TestParseDate(t *testing.T) {
	date, ok := ParseDate("2024-01-15")
	if !ok {
		t.Fatal("expected valid date to parse")
	}
	if date.Year() != 2024 || int(date.Month()) != 1 || date.Day() != 15 {
		t.Errorf("parsed %v", date)
	}

	for _, bad := range []string{"", "15/01/2024", "2024-13-01", "2024-01-15T10:00:00Z"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("expected %q to fail parsing", bad)
		}
	}
}

func TestExpensePatchApply(t *testing.T) {
	expense := Expense{
		ID:            "1",
		Title:         "Groceries",
		Amount:        100,
		Currency:      "INR",
		CategoryID:    "c1",
		Date:          "2024-01-15",
		PaymentMethod: "Cash",
		Notes:         "weekly",
	}

	title := "Supermarket"
	amount := 120.0
	patched := ExpensePatch{Title: &title, Amount: &amount}.Apply(expense)

	if patched.Title != "Supermarket" || patched.Amount != 120 {
		t.Errorf("patched = %+v", patched)
	}

	// Everything else is untouched, including the id.
	if patched.ID != "1" || patched.CategoryID != "c1" || patched.Notes != "weekly" ||
		patched.Date != "2024-01-15" || patched.PaymentMethod != "Cash" || patched.Currency != "INR" {
		t.Errorf("unpatched fields changed: %+v", patched)
	}
}

func TestExpensePatchApplyEmpty(t *testing.T) {
	expense := Expense{ID: "1", Title: "Groceries", Amount: 100}

	if got := (ExpensePatch{}).Apply(expense); got != expense {
		t.Errorf("empty patch changed the record: %+v", got)
	}
}

func TestCategoryPatchApply(t *testing.T) {
	category := Category{ID: "c1", Name: "Food", Icon: "🍽️", Color: "#0891b2", Date: "2024-01-01"}

	name := "Dining"
	color := "#ef4444"
	patched := CategoryPatch{Name: &name, Color: &color}.Apply(category)

	if patched.Name != "Dining" || patched.Color != "#ef4444" {
		t.Errorf("patched = %+v", patched)
	}
	if patched.ID != "c1" || patched.Icon != "🍽️" || patched.Date != "2024-01-01" {
		t.Errorf("unpatched fields changed: %+v", patched)
	}
}

func TestFindCategory(t *testing.T) {
	categories := []Category{
		{ID: "c1", Name: "Food"},
		{ID: "c2", Name: "Travel"},
	}

	if c, ok := FindCategory(categories, "c2"); !ok || c.Name != "Travel" {
		t.Errorf("FindCategory(c2) = %+v, %v", c, ok)
	}
	if _, ok := FindCategory(categories, "gone"); ok {
		t.Error("expected lookup miss for unknown id")
	}
	if _, ok := FindCategory(nil, "c1"); ok {
		t.Error("expected lookup miss on empty collection")
	}
}

func TestFindCategoryByName(t *testing.T) {
	categories := []Category{
		{ID: "c1", Name: "Food"},
		{ID: "c2", Name: "Food"},
	}

	// First match wins for duplicate names.
	if c, ok := FindCategoryByName(categories, "Food"); !ok || c.ID != "c1" {
		t.Errorf("FindCategoryByName = %+v, %v", c, ok)
	}
	if _, ok := FindCategoryByName(categories, "Travel"); ok {
		t.Error("expected lookup miss for unknown name")
	}
}
