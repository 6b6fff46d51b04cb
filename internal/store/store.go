// Package store owns the in-memory expense and category collections. All
// mutation funnels through it: every operation updates memory, mirrors the
// collection to persistent storage, and notifies subscribers with the new
// snapshot.
package store

import (
	"context"
	"sync"

	"pocketledger/internal/ledger"
	"pocketledger/internal/logger"
	"pocketledger/internal/storage"
)

// ErrNotFound is returned by update and delete operations when no record
// matches the given id. State is never altered on a miss.
var ErrNotFound = &storage.NotFoundError{}

// Snapshot is an immutable view of the full store contents at one instant.
type Snapshot struct {
	Expenses   []ledger.Expense
	Categories []ledger.Category
}

type Store struct {
	mu         sync.Mutex
	expenses   []ledger.Expense
	categories []ledger.Category

	subscribers map[int]func(Snapshot)
	nextSubID   int

	storage storage.Store
	logger  *logger.Logger
}

// New builds a store seeded from persistent storage. Missing or corrupt
// documents load as empty collections.
func New(ctx context.Context, s storage.Store, log *logger.Logger) (*Store, error) {
	st := &Store{
		expenses:    []ledger.Expense{},
		categories:  []ledger.Category{},
		subscribers: map[int]func(Snapshot){},
		storage:     s,
		logger:      log,
	}

	if err := s.Load(ctx, storage.KeyExpenses, &st.expenses); err != nil {
		return nil, err
	}
	if err := s.Load(ctx, storage.KeyCategories, &st.categories); err != nil {
		return nil, err
	}

	return st, nil
}

// Expenses returns a copy of the current expenses, in insertion order.
func (s *Store) Expenses() []ledger.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyExpenses(s.expenses)
}

// Categories returns a copy of the current categories, in insertion order.
func (s *Store) Categories() []ledger.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCategories(s.categories)
}

// Snapshot returns both collections as one consistent view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called synchronously with the new snapshot
// after every successful mutation. The returned function unregisters it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// SetExpenses replaces the entire expenses collection. Used by bulk import.
func (s *Store) SetExpenses(ctx context.Context, expenses []ledger.Expense) {
	s.mu.Lock()
	s.expenses = copyExpenses(expenses)
	s.persistExpensesLocked(ctx)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()

	notify()
}

// AppendExpenses appends the expenses in one mutation. Used by bulk import in
// append mode so concurrent imports cannot lose each other's rows.
func (s *Store) AppendExpenses(ctx context.Context, expenses []ledger.Expense) {
	s.mu.Lock()
	s.expenses = append(s.expenses, expenses...)
	s.persistExpensesLocked(ctx)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()

	notify()
}

// AddExpense assigns a fresh id and appends the expense, returning the stored
// record.
func (s *Store) AddExpense(ctx context.Context, expense ledger.Expense) ledger.Expense {
	s.mu.Lock()
	expense.ID = ledger.NewExpenseID()
	if expense.Currency == "" {
		expense.Currency = ledger.DefaultCurrency
	}
	s.expenses = append(s.expenses, expense)
	s.persistExpensesLocked(ctx)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()

	notify()
	return expense
}

// UpdateExpense merges the patch into the expense matching id.
func (s *Store) UpdateExpense(ctx context.Context, id string, patch ledger.ExpensePatch) (ledger.Expense, error) {
	s.mu.Lock()

	for i, e := range s.expenses {
		if e.ID != id {
			continue
		}

		s.expenses[i] = patch.Apply(e)
		updated := s.expenses[i]
		s.persistExpensesLocked(ctx)
		notify := s.pendingNotifyLocked()
		s.mu.Unlock()

		notify()
		return updated, nil
	}

	s.mu.Unlock()
	return ledger.Expense{}, ErrNotFound
}

// DeleteExpense removes the expense matching id.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()

	for i, e := range s.expenses {
		if e.ID != id {
			continue
		}

		s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
		s.persistExpensesLocked(ctx)
		notify := s.pendingNotifyLocked()
		s.mu.Unlock()

		notify()
		return nil
	}

	s.mu.Unlock()
	return ErrNotFound
}

// AddCategory assigns a fresh id and appends the category, returning the
// stored record.
func (s *Store) AddCategory(ctx context.Context, category ledger.Category) ledger.Category {
	s.mu.Lock()
	category.ID = ledger.NewCategoryID()
	s.categories = append(s.categories, category)
	s.persistCategoriesLocked(ctx)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()

	notify()
	return category
}

// UpdateCategory merges the patch into the category matching id.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch ledger.CategoryPatch) (ledger.Category, error) {
	s.mu.Lock()

	for i, c := range s.categories {
		if c.ID != id {
			continue
		}

		s.categories[i] = patch.Apply(c)
		updated := s.categories[i]
		s.persistCategoriesLocked(ctx)
		notify := s.pendingNotifyLocked()
		s.mu.Unlock()

		notify()
		return updated, nil
	}

	s.mu.Unlock()
	return ledger.Category{}, ErrNotFound
}

// DeleteCategory removes the category matching id. Expenses referencing the
// category keep their categoryId; lookups for it report unresolved.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()

	for i, c := range s.categories {
		if c.ID != id {
			continue
		}

		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		s.persistCategoriesLocked(ctx)
		notify := s.pendingNotifyLocked()
		s.mu.Unlock()

		notify()
		return nil
	}

	s.mu.Unlock()
	return ErrNotFound
}

// persistExpensesLocked mirrors the expenses to storage. A write failure is
// logged and the in-memory state kept, so the tracker degrades to memory-only
// operation instead of failing the mutation.
func (s *Store) persistExpensesLocked(ctx context.Context) {
	if err := s.storage.Save(ctx, storage.KeyExpenses, s.expenses); err != nil {
		s.logger.Error("failed to persist expenses", "error", err.Error())
	}
}

func (s *Store) persistCategoriesLocked(ctx context.Context) {
	if err := s.storage.Save(ctx, storage.KeyCategories, s.categories); err != nil {
		s.logger.Error("failed to persist categories", "error", err.Error())
	}
}

// pendingNotifyLocked captures the current subscribers and snapshot. The
// returned function must be called after the lock is released; a subscriber
// may read back from the store.
func (s *Store) pendingNotifyLocked() func() {
	if len(s.subscribers) == 0 {
		return func() {}
	}

	snapshot := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}

	return func() {
		for _, fn := range fns {
			fn(snapshot)
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Expenses:   copyExpenses(s.expenses),
		Categories: copyCategories(s.categories),
	}
}

func copyExpenses(expenses []ledger.Expense) []ledger.Expense {
	out := make([]ledger.Expense, len(expenses))
	copy(out, expenses)
	return out
}

func copyCategories(categories []ledger.Category) []ledger.Category {
	out := make([]ledger.Category, len(categories))
	copy(out, categories)
	return out
}
