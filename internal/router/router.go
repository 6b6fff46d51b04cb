// Package router exposes the state store and dashboard aggregates over a
// local JSON API. Field validation lives here; the store itself only
// guarantees shape.
package router

import (
	"encoding/json"
	"net/http"

	"pocketledger/internal/logger"
	"pocketledger/internal/store"
)

type Router struct {
	httpHandler http.Handler
	store       *store.Store
	logger      *logger.Logger
}

func New(s *store.Store, log *logger.Logger) *Router {
	router := &Router{
		store:  s,
		logger: log,
	}

	mux := &http.ServeMux{}

	// Expenses
	mux.HandleFunc("GET /api/expenses", router.listExpenses)
	mux.HandleFunc("POST /api/expenses", router.createExpense)
	mux.HandleFunc("PUT /api/expenses/{id}", router.updateExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", router.deleteExpense)

	// Categories
	mux.HandleFunc("GET /api/categories", router.listCategories)
	mux.HandleFunc("POST /api/categories", router.createCategory)
	mux.HandleFunc("PUT /api/categories/{id}", router.updateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", router.deleteCategory)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", router.dashboard)

	// CSV bridge
	mux.HandleFunc("GET /api/export", router.exportCSV)
	mux.HandleFunc("POST /api/import", router.importCSV)

	router.httpHandler = loggingMiddleware(log, mux)

	return router
}

func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.httpHandler.ServeHTTP(w, r)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (router *Router) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		router.logger.Error("failed to encode response", "error", err.Error())
	}
}

func (router *Router) respondError(w http.ResponseWriter, status int, message string) {
	router.respondJSON(w, status, errorResponse{Error: message})
}
