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

func (h *FormHandlers) CreateOption(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid field id")
		return
	}

	payload, err := httpx.ReadBody[domains.OptionCreate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Value == "" || payload.Label == "" {
		httpx.Error(w, http.StatusBadRequest, "value and label are required")
		return
	}

	result, err := h.service.CreateOption(r.Context(), fieldID, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOptionsNotAllowed):
			httpx.Error(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrOptionConflict):
			httpx.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Field not found")
		default:
			slog.Error("CreateOption failed", "err", err, "field", fieldID)
			httpx.Error(w, http.StatusInternalServerError, "Failed to create option")
		}
		return
	}

	writeResult(w, http.StatusCreated, result)
}

func (h *FormHandlers) UpdateOption(w http.ResponseWriter, r *http.Request) {
	optionID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid option id")
		return
	}

	update, err := httpx.ReadBody[domains.OptionUpdate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.UpdateOption(r.Context(), optionID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOptionsNotAllowed):
			httpx.Error(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrOptionConflict):
			httpx.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Option not found")
		default:
			slog.Error("UpdateOption failed", "err", err, "option", optionID)
			httpx.Error(w, http.StatusInternalServerError, "Failed to update option")
		}
		return
	}

	writeResult(w, http.StatusOK, result)
}

func (h *FormHandlers) DeleteOption(w http.ResponseWriter, r *http.Request) {
	optionID, ok := httpx.PathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid option id")
		return
	}

	result, err := h.service.DeleteOption(r.Context(), optionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Option not found")
			return
		}
		slog.Error("DeleteOption failed", "err", err, "option", optionID)
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete option")
		return
	}

	writeResult(w, http.StatusOK, result)
}
