package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"pocketledger/internal/util"
)

// DateLayout is the calendar date format used everywhere records carry a date.
const DateLayout = "2006-01-02"

const DefaultCurrency = "INR"

type Expense struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CategoryID    string  `json:"categoryId"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	Notes         string  `json:"notes,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Date  string `json:"date"`
}

// Icons and Colors are the fixed presentation sets a category picks from.
var Icons = []string{"🛒", "🚗", "🎬", "🍽️", "⚡", "🏠", "💊", "🎓", "✈️", "🎮", "👕", "📱"}

var Colors = []string{
	"#0891b2", "#d97706", "#475569", "#ec4899", "#8b5cf6",
	"#10b981", "#f59e0b", "#ef4444", "#3b82f6", "#14b8a6",
}

const expenseIDSuffixLength = 4

// NewExpenseID returns a fresh expense identifier. Identifiers are
// timestamp-based so they roughly sort by creation time; the random suffix
// keeps rapid successive calls from colliding.
func NewExpenseID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), util.GenerateRandomID(expenseIDSuffixLength))
}

func NewCategoryID() string {
	return uuid.NewString()
}

// ParseDate parses an ISO calendar date. Records with unparseable dates are
// kept but excluded from period-relative aggregates.
func ParseDate(value string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExpensePatch carries a partial-field update for an expense. Nil fields are
// left untouched by apply.
type ExpensePatch struct {
	Title         *string  `json:"title"`
	Amount        *float64 `json:"amount"`
	Currency      *string  `json:"currency"`
	CategoryID    *string  `json:"categoryId"`
	Date          *string  `json:"date"`
	PaymentMethod *string  `json:"paymentMethod"`
	Notes         *string  `json:"notes"`
}

func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Currency != nil {
		e.Currency = *p.Currency
	}
	if p.CategoryID != nil {
		e.CategoryID = *p.CategoryID
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.PaymentMethod != nil {
		e.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e
}

// CategoryPatch carries a partial-field update for a category. The creation
// date is immutable and has no patch field.
type CategoryPatch struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	return c
}

// FindCategory resolves a category id against the current categories.
// Deleting a category does not cascade to expenses, so lookups for orphaned
// references report ok=false rather than failing.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindCategoryByName returns the first category with the given name.
func FindCategoryByName(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
