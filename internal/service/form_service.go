package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"formbuilder/internal/domains"
	"formbuilder/internal/schema"
	"formbuilder/internal/storage"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type FormService struct {
	forms   FormProvider
	fields  FieldProvider
	options OptionProvider
}

type FormProvider interface {
	SaveForm(ctx context.Context, form domains.FormCreate) (domains.Form, error)
	UpdateForm(ctx context.Context, formID int64, update domains.FormUpdate) (domains.Form, error)
	DeleteForm(ctx context.Context, formID int64) error
	GetFormByID(ctx context.Context, formID int64) (domains.Form, error)
	ListForms(ctx context.Context) ([]domains.Form, error)
	GetFormState(ctx context.Context, formID int64) (domains.FormState, error)
	UpdateCachedSchema(ctx context.Context, formID int64, document []byte) error
	GetPublishedSchema(ctx context.Context, slug string) (json.RawMessage, error)
}

type FieldProvider interface {
	SaveField(ctx context.Context, formID int64, field domains.FieldCreate) (domains.Field, error)
	UpdateField(ctx context.Context, fieldID int64, update domains.FieldUpdate) (domains.Field, error)
	DeleteField(ctx context.Context, fieldID int64) (int64, error)
	GetFieldByID(ctx context.Context, fieldID int64) (domains.Field, error)
}

type OptionProvider interface {
	SaveOption(ctx context.Context, fieldID int64, option domains.OptionCreate) (domains.FieldOption, error)
	UpdateOption(ctx context.Context, optionID int64, update domains.OptionUpdate) (domains.FieldOption, error)
	DeleteOption(ctx context.Context, optionID int64) (int64, error)
	GetOptionByID(ctx context.Context, optionID int64) (domains.FieldOption, error)
}

func NewFormService(forms FormProvider, fields FieldProvider, options OptionProvider) *FormService {
	return &FormService{
		forms:   forms,
		fields:  fields,
		options: options,
	}
}

func (h *FormService) CreateForm(ctx context.Context, payload domains.FormCreate) (domains.WriteResult, error) {
	if payload.Status == "" {
		payload.Status = StatusDraft
	}
	if payload.Status != StatusDraft && payload.Status != StatusPublished {
		return domains.WriteResult{}, fmt.Errorf("invalid form status %q", payload.Status)
	}

	form, err := h.forms.SaveForm(ctx, payload)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return domains.WriteResult{}, ErrFormSlugTaken
		}
		slog.Error("save form failed", "err", err)
		return domains.WriteResult{}, err
	}

	return h.regenerate(ctx, form.ID)
}

func (h *FormService) UpdateForm(ctx context.Context, formID int64, update domains.FormUpdate) (domains.WriteResult, error) {
	if update.Status != nil && *update.Status != StatusDraft && *update.Status != StatusPublished {
		return domains.WriteResult{}, fmt.Errorf("invalid form status %q", *update.Status)
	}

	form, err := h.forms.UpdateForm(ctx, formID, update)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return domains.WriteResult{}, ErrFormSlugTaken
		}
		return domains.WriteResult{}, err
	}

	return h.regenerate(ctx, form.ID)
}

func (h *FormService) DeleteForm(ctx context.Context, formID int64) error {
	return h.forms.DeleteForm(ctx, formID)
}

func (h *FormService) GetForm(ctx context.Context, formID int64) (domains.Form, error) {
	return h.forms.GetFormByID(ctx, formID)
}

func (h *FormService) ListForms(ctx context.Context) ([]domains.Form, error) {
	return h.forms.ListForms(ctx)
}

func (h *FormService) CreateField(ctx context.Context, formID int64, payload domains.FieldCreate) (domains.WriteResult, error) {
	if !schema.KnownType(schema.FieldType(payload.FieldType)) {
		return domains.WriteResult{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, payload.FieldType)
	}

	field, err := h.fields.SaveField(ctx, formID, payload)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return domains.WriteResult{}, ErrFieldConflict
		}
		return domains.WriteResult{}, err
	}

	return h.regenerate(ctx, field.FormID)
}

func (h *FormService) UpdateField(ctx context.Context, fieldID int64, update domains.FieldUpdate) (domains.WriteResult, error) {
	if update.FieldType != nil && !schema.KnownType(schema.FieldType(*update.FieldType)) {
		return domains.WriteResult{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, *update.FieldType)
	}

	field, err := h.fields.UpdateField(ctx, fieldID, update)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return domains.WriteResult{}, ErrFieldConflict
		}
		return domains.WriteResult{}, err
	}

	return h.regenerate(ctx, field.FormID)
}

func (h *FormService) DeleteField(ctx context.Context, fieldID int64) (domains.WriteResult, error) {
	formID, err := h.fields.DeleteField(ctx, fieldID)
	if err != nil {
		return domains.WriteResult{}, err
	}
	return h.regenerate(ctx, formID)
}

func (h *FormService) CreateOption(ctx context.Context, fieldID int64, payload domains.OptionCreate) (domains.WriteResult, error) {
	field, err := h.fields.GetFieldByID(ctx, fieldID)
	if err != nil {
		return domains.WriteResult{}, err
	}
	if !schema.FieldType(field.FieldType).Selectable() {
		return domains.WriteResult{}, fmt.Errorf("%w: %s", ErrOptionsNotAllowed, field.FieldType)
	}

	if _, err := h.options.SaveOption(ctx, fieldID, payload); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return domains.WriteResult{}, ErrOptionConflict
		}
		return domains.WriteResult{}, err
	}

	return h.regenerate(ctx, field.FormID)
}

func (h *FormService) UpdateOption(ctx context.Context, optionID int64, update domains.OptionUpdate) (domains.WriteResult, error) {
	option, err := h.options.GetOptionByID(ctx, optionID)
	if err != nil {
		return domains.WriteResult{}, err
	}
	field, err := h.fields.GetFieldByID(ctx, option.FieldID)
	if err != nil {
		return domains.WriteResult{}, err
	}
	if !schema.FieldType(field.FieldType).Selectable() {
		return domains.WriteResult{}, fmt.Errorf("%w: %s", ErrOptionsNotAllowed, field.FieldType)
	}

	if _, err := h.options.UpdateOption(ctx, optionID, update); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return domains.WriteResult{}, ErrOptionConflict
		}
		return domains.WriteResult{}, err
	}

	return h.regenerate(ctx, field.FormID)
}

func (h *FormService) DeleteOption(ctx context.Context, optionID int64) (domains.WriteResult, error) {
	formID, err := h.options.DeleteOption(ctx, optionID)
	if err != nil {
		return domains.WriteResult{}, err
	}
	return h.regenerate(ctx, formID)
}

// PublicSchema serves the read endpoint: the cached document of a
// published form, verbatim.
func (h *FormService) PublicSchema(ctx context.Context, slug string) (json.RawMessage, error) {
	return h.forms.GetPublishedSchema(ctx, slug)
}

// regenerate rebuilds the whole schema document from the form's current
// state. A validation failure leaves the cached document untouched and
// reports the aggregated issues alongside the already-persisted record.
func (h *FormService) regenerate(ctx context.Context, formID int64) (domains.WriteResult, error) {
	state, err := h.forms.GetFormState(ctx, formID)
	if err != nil {
		return domains.WriteResult{}, err
	}

	fieldInputs := make([]schema.FieldInput, 0, len(state.Fields))
	optionsByField := make(map[string][]schema.Option, len(state.Options))
	for _, field := range state.Fields {
		input, err := field.SchemaInput()
		if err != nil {
			return domains.WriteResult{}, err
		}
		fieldInputs = append(fieldInputs, input)
		for _, option := range state.Options[field.ID] {
			optionsByField[field.Slug] = append(optionsByField[field.Slug], option.SchemaInput())
		}
	}

	document, err := schema.Build(state.Form.SchemaInput(), fieldInputs, optionsByField)
	if err != nil {
		var validation *schema.ValidationError
		if errors.As(err, &validation) {
			slog.Info("schema regeneration skipped", "form", state.Form.Slug, "issues", len(validation.Issues))
			return domains.WriteResult{Form: state.Form, Issues: validation.Issues}, nil
		}
		return domains.WriteResult{}, err
	}

	encoded, err := document.Encode()
	if err != nil {
		return domains.WriteResult{}, fmt.Errorf("encode schema: %w", err)
	}
	if err := h.forms.UpdateCachedSchema(ctx, formID, encoded); err != nil {
		return domains.WriteResult{}, err
	}

	state.Form.JSONSchema = encoded
	return domains.WriteResult{Form: state.Form, Schema: encoded}, nil
}
