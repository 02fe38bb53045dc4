package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"formbuilder/internal/domains"
	"formbuilder/internal/httpx"
	"formbuilder/internal/service"
	"formbuilder/internal/storage"
)

type FormHandlers struct {
	service FormServices
}

type FormServices interface {
	CreateForm(ctx context.Context, payload domains.FormCreate) (domains.WriteResult, error)
	UpdateForm(ctx context.Context, formID int64, update domains.FormUpdate) (domains.WriteResult, error)
	DeleteForm(ctx context.Context, formID int64) error
	GetForm(ctx context.Context, formID int64) (domains.Form, error)
	ListForms(ctx context.Context) ([]domains.Form, error)
	CreateField(ctx context.Context, formID int64, payload domains.FieldCreate) (domains.WriteResult, error)
	UpdateField(ctx context.Context, fieldID int64, update domains.FieldUpdate) (domains.WriteResult, error)
	DeleteField(ctx context.Context, fieldID int64) (domains.WriteResult, error)
	CreateOption(ctx context.Context, fieldID int64, payload domains.OptionCreate) (domains.WriteResult, error)
	UpdateOption(ctx context.Context, optionID int64, update domains.OptionUpdate) (domains.WriteResult, error)
	DeleteOption(ctx context.Context, optionID int64) (domains.WriteResult, error)
	PublicSchema(ctx context.Context, slug string) (json.RawMessage, error)
}

func NewFormHandlers(service FormServices) *FormHandlers {
	return &FormHandlers{service: service}
}

func (h *FormHandlers) CreateForm(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[domains.FormCreate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Name == "" || payload.Slug == "" {
		httpx.Error(w, http.StatusBadRequest, "name and slug are required")
		return
	}

	result, err := h.service.CreateForm(r.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrFormSlugTaken) {
			httpx.Error(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("CreateForm failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to create form")
		return
	}

	adminID, _ := httpx.AdminIDFromContext(r.Context())
	slog.Info("form created", "form", result.Form.ID, "admin", adminID)
	writeResult(w, http.StatusCreated, result)
}

func (h *FormHandlers) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.service.ListForms(r.Context())
	if err != nil {
		slog.Error("ListForms failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to list forms")
		return
	}
	httpx.JSON(w, http.StatusOK, forms)
}

func (h *FormHandlers) GetForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid form id")
		return
	}

	form, err := h.service.GetForm(r.Context(), formID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Form not found")
			return
		}
		slog.Error("GetForm failed", "err", err, "form", formID)
		httpx.Error(w, http.StatusInternalServerError, "Failed to get form")
		return
	}
	httpx.JSON(w, http.StatusOK, form)
}

func (h *FormHandlers) UpdateForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid form id")
		return
	}

	update, err := httpx.ReadBody[domains.FormUpdate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.UpdateForm(r.Context(), formID, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Form not found")
		case errors.Is(err, service.ErrFormSlugTaken):
			httpx.Error(w, http.StatusConflict, err.Error())
		default:
			slog.Error("UpdateForm failed", "err", err, "form", formID)
			httpx.Error(w, http.StatusInternalServerError, "Failed to update form")
		}
		return
	}

	writeResult(w, http.StatusOK, result)
}

func (h *FormHandlers) DeleteForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid form id")
		return
	}

	if err := h.service.DeleteForm(r.Context(), formID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Form not found")
			return
		}
		slog.Error("DeleteForm failed", "err", err, "form", formID)
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete form")
		return
	}

	adminID, _ := httpx.AdminIDFromContext(r.Context())
	slog.Info("form deleted", "form", formID, "admin", adminID)
	w.WriteHeader(http.StatusNoContent)
}

// writeResult answers an admin write: 422 with the persisted record and
// the aggregated issues when regeneration failed validation, the given
// success code otherwise.
func writeResult(w http.ResponseWriter, successCode int, result domains.WriteResult) {
	if len(result.Issues) > 0 {
		httpx.JSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	httpx.JSON(w, successCode, result)
}
