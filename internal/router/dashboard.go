package router

import (
	"net/http"
	"strconv"
	"time"

	"pocketledger/internal/dashboard"
)

const maxTrailingMonths = 24

func (router *Router) dashboard(w http.ResponseWriter, r *http.Request) {
	months := dashboard.DefaultTrailingMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxTrailingMonths {
			router.respondError(w, http.StatusBadRequest, "months must be between 1 and 24")
			return
		}
		months = parsed
	}

	snapshot := router.store.Snapshot()
	summary := dashboard.Summarize(snapshot.Expenses, snapshot.Categories, months, time.Now())

	router.respondJSON(w, http.StatusOK, summary)
}
