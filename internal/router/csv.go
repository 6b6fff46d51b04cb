package router

import (
	"bytes"
	"io"
	"net/http"

	"pocketledger/internal/csvio"
)

const maxImportSize = 32 << 20

func (router *Router) exportCSV(w http.ResponseWriter, _ *http.Request) {
	snapshot := router.store.Snapshot()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)

	if err := csvio.Export(w, snapshot.Expenses, snapshot.Categories); err != nil {
		router.logger.Error("failed to export CSV", "error", err.Error())
	}
}

func (router *Router) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		router.respondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		message := "error retrieving the file"
		if err == http.ErrMissingFile {
			message = "no file submitted"
		}
		router.respondError(w, http.StatusBadRequest, message)
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, file); err != nil {
		router.respondError(w, http.StatusBadRequest, "error reading the file")
		return
	}

	router.logger.Info("importing file", "name", header.Filename, "size", buf.Len())

	imported, err := csvio.Import(&buf, router.store.Categories())
	if err != nil {
		router.respondError(w, http.StatusUnprocessableEntity, "could not parse CSV: "+err.Error())
		return
	}

	// Imported rows append to the existing collection.
	router.store.AppendExpenses(r.Context(), imported)

	router.respondJSON(w, http.StatusOK, struct {
		Imported int `json:"imported"`
	}{Imported: len(imported)})
}
