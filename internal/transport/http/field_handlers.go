package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"formbuilder/internal/domains"
	"formbuilder/internal/httpx"
	"formbuilder/internal/service"
	"formbuilder/internal/storage"
)

func (h *FormHandlers) CreateField(w http.ResponseWriter, r *http.Request) {
	formID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid form id")
		return
	}

	payload, err := httpx.ReadBody[domains.FieldCreate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Slug == "" || payload.Label == "" || payload.FieldType == "" {
		httpx.Error(w, http.StatusBadRequest, "slug, label and field_type are required")
		return
	}

	result, err := h.service.CreateField(r.Context(), formID, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownFieldType):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrFieldConflict):
			httpx.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Form not found")
		default:
			slog.Error("CreateField failed", "err", err, "form", formID)
			httpx.Error(w, http.StatusInternalServerError, "Failed to create field")
		}
		return
	}

	writeResult(w, http.StatusCreated, result)
}

func (h *FormHandlers) UpdateField(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid field id")
		return
	}

	update, err := httpx.ReadBody[domains.FieldUpdate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.UpdateField(r.Context(), fieldID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownFieldType):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrFieldConflict):
			httpx.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Field not found")
		default:
			slog.Error("UpdateField failed", "err", err, "field", fieldID)
			httpx.Error(w, http.StatusInternalServerError, "Failed to update field")
		}
		return
	}

	writeResult(w, http.StatusOK, result)
}

func (h *FormHandlers) DeleteField(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid field id")
		return
	}

	result, err := h.service.DeleteField(r.Context(), fieldID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Field not found")
			return
		}
		slog.Error("DeleteField failed", "err", err, "field", fieldID)
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete field")
		return
	}

	writeResult(w, http.StatusOK, result)
}
