package router

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"pocketledger/internal/filter"
	"pocketledger/internal/ledger"
	"pocketledger/internal/store"
)

func (router *Router) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenseFilter, sortOpts, err := filter.ParseExpenseFilters(r.URL.Query())
	if err != nil {
		router.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshot := router.store.Snapshot()
	router.respondJSON(w, http.StatusOK, expenseFilter.Apply(snapshot.Expenses, snapshot.Categories, sortOpts))
}

func (router *Router) createExpense(w http.ResponseWriter, r *http.Request) {
	var expense ledger.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		router.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if message, ok := validateExpense(expense); !ok {
		router.respondError(w, http.StatusUnprocessableEntity, message)
		return
	}

	added := router.store.AddExpense(r.Context(), expense)
	router.respondJSON(w, http.StatusCreated, added)
}

func (router *Router) updateExpense(w http.ResponseWriter, r *http.Request) {
	var patch ledger.ExpensePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		router.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if message, ok := validateExpensePatch(patch); !ok {
		router.respondError(w, http.StatusUnprocessableEntity, message)
		return
	}

	updated, err := router.store.UpdateExpense(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			router.respondError(w, http.StatusNotFound, "expense not found")
			return
		}
		router.respondError(w, http.StatusInternalServerError, "failed to update expense")
		return
	}

	router.respondJSON(w, http.StatusOK, updated)
}

func (router *Router) deleteExpense(w http.ResponseWriter, r *http.Request) {
	err := router.store.DeleteExpense(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			router.respondError(w, http.StatusNotFound, "expense not found")
			return
		}
		router.respondError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateExpense(expense ledger.Expense) (string, bool) {
	if strings.TrimSpace(expense.Title) == "" {
		return "title is required", false
	}
	if math.IsNaN(expense.Amount) || expense.Amount < 0 {
		return "amount must be a non-negative number", false
	}
	if _, ok := ledger.ParseDate(expense.Date); !ok {
		return "date must be a calendar date (YYYY-MM-DD)", false
	}
	return "", true
}

func validateExpensePatch(patch ledger.ExpensePatch) (string, bool) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return "title cannot be empty", false
	}
	if patch.Amount != nil && (math.IsNaN(*patch.Amount) || *patch.Amount < 0) {
		return "amount must be a non-negative number", false
	}
	if patch.Date != nil {
		if _, ok := ledger.ParseDate(*patch.Date); !ok {
			return "date must be a calendar date (YYYY-MM-DD)", false
		}
	}
	return "", true
}
