package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"formbuilder/internal/httpx"
	"formbuilder/internal/storage"

	"github.com/gorilla/mux"
)

// SchemaHandlers serves the public read endpoint. The enabled flag comes
// from configuration at construction time; a disabled endpoint, a missing
// form, and an unpublished form all collapse into the same 404 so form
// existence is never leaked.
type SchemaHandlers struct {
	service FormServices
	enabled bool
}

func NewSchemaHandlers(service FormServices, enabled bool) *SchemaHandlers {
	return &SchemaHandlers{service: service, enabled: enabled}
}

func (h *SchemaHandlers) GetFormSchema(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	slug := mux.Vars(r)["slug"]
	document, err := h.service.PublicSchema(r.Context(), slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Not found")
			return
		}
		slog.Error("GetFormSchema failed", "err", err, "slug", slug)
		httpx.Error(w, http.StatusInternalServerError, "Failed to load schema")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}
