package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pocketledger/internal/ledger"
	"pocketledger/internal/store"
)

func (router *Router) listCategories(w http.ResponseWriter, _ *http.Request) {
	router.respondJSON(w, http.StatusOK, router.store.Categories())
}

func (router *Router) createCategory(w http.ResponseWriter, r *http.Request) {
	var category ledger.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		router.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(category.Name) == "" {
		router.respondError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	if category.Icon == "" {
		category.Icon = ledger.Icons[0]
	}
	if category.Color == "" {
		category.Color = ledger.Colors[0]
	}
	if category.Date == "" {
		category.Date = time.Now().Format(ledger.DateLayout)
	}

	added := router.store.AddCategory(r.Context(), category)
	router.respondJSON(w, http.StatusCreated, added)
}

func (router *Router) updateCategory(w http.ResponseWriter, r *http.Request) {
	var patch ledger.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		router.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		router.respondError(w, http.StatusUnprocessableEntity, "name cannot be empty")
		return
	}

	updated, err := router.store.UpdateCategory(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			router.respondError(w, http.StatusNotFound, "category not found")
			return
		}
		router.respondError(w, http.StatusInternalServerError, "failed to update category")
		return
	}

	router.respondJSON(w, http.StatusOK, updated)
}

func (router *Router) deleteCategory(w http.ResponseWriter, r *http.Request) {
	err := router.store.DeleteCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			router.respondError(w, http.StatusNotFound, "category not found")
			return
		}
		router.respondError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
