package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"formbuilder/internal/domains"
	"formbuilder/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const formColumns = `id, name, slug, description, status, json_schema, created_at, updated_at`

type FormProvider struct {
	db *pgxpool.Pool
}

func NewFormProvider(db *pgxpool.Pool) *FormProvider {
	return &FormProvider{
		db: db,
	}
}

func (s *FormProvider) SaveForm(ctx context.Context, form domains.FormCreate) (domains.Form, error) {
	const query = `
		INSERT INTO forms (name, slug, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + formColumns

	rows, err := s.db.Query(ctx, query, form.Name, form.Slug, form.Description, form.Status)
	if err != nil {
		return domains.Form{}, fmt.Errorf("insert form: %w", err)
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Form])
	if err != nil {
		return domains.Form{}, fmt.Errorf("insert form: %w", mapConflict(err))
	}
	return created, nil
}

func (s *FormProvider) UpdateForm(ctx context.Context, formID int64, update domains.FormUpdate) (domains.Form, error) {
	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	idx := 1

	if update.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", idx))
		args = append(args, *update.Name)
		idx++
	}
	if update.Slug != nil {
		setClauses = append(setClauses, fmt.Sprintf("slug = $%d", idx))
		args = append(args, *update.Slug)
		idx++
	}
	if update.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", idx))
		args = append(args, *update.Description)
		idx++
	}
	if update.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, *update.Status)
		idx++
	}

	if len(setClauses) == 0 {
		return s.GetFormByID(ctx, formID)
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, formID)
	query := fmt.Sprintf(`
		UPDATE forms
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), idx, formColumns,
	)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return domains.Form{}, fmt.Errorf("update form: %w", err)
	}
	defer rows.Close()

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Form])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Form{}, fmt.Errorf("update form: %w", storage.ErrNotFound)
		}
		return domains.Form{}, fmt.Errorf("update form: %w", mapConflict(err))
	}
	return updated, nil
}

func (s *FormProvider) DeleteForm(ctx context.Context, formID int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM forms WHERE id = $1`, formID)
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete form: %w", storage.ErrNotFound)
	}
	return nil
}

func (s *FormProvider) GetFormByID(ctx context.Context, formID int64) (domains.Form, error) {
	const query = `SELECT ` + formColumns + ` FROM forms WHERE id = $1`

	rows, err := s.db.Query(ctx, query, formID)
	if err != nil {
		return domains.Form{}, fmt.Errorf("get form: %w", err)
	}
	defer rows.Close()

	form, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Form])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Form{}, fmt.Errorf("get form: %w", storage.ErrNotFound)
		}
		return domains.Form{}, fmt.Errorf("get form: %w", err)
	}
	return form, nil
}

func (s *FormProvider) ListForms(ctx context.Context) ([]domains.Form, error) {
	const query = `SELECT ` + formColumns + ` FROM forms ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	forms, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.Form])
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

// GetFormState loads the form record together with every field and
// option, ordered the way the builder expects (position, then id).
func (s *FormProvider) GetFormState(ctx context.Context, formID int64) (domains.FormState, error) {
	form, err := s.GetFormByID(ctx, formID)
	if err != nil {
		return domains.FormState{}, err
	}

	const fieldsQuery = `
		SELECT
			id, form_id, slug, label, question, field_type, position,
			required, help_text, placeholder, default_value, config,
			created_at, updated_at
		FROM form_fields
		WHERE form_id = $1
		ORDER BY position, id`

	rows, err := s.db.Query(ctx, fieldsQuery, formID)
	if err != nil {
		return domains.FormState{}, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	fields, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.Field])
	if err != nil {
		return domains.FormState{}, fmt.Errorf("list fields: %w", err)
	}

	const optionsQuery = `
		SELECT o.id, o.field_id, o.value, o.label, o.position, o.is_default
		FROM field_options o
		JOIN form_fields f ON f.id = o.field_id
		WHERE f.form_id = $1
		ORDER BY o.position, o.id`

	optionRows, err := s.db.Query(ctx, optionsQuery, formID)
	if err != nil {
		return domains.FormState{}, fmt.Errorf("list options: %w", err)
	}
	defer optionRows.Close()

	options, err := pgx.CollectRows(optionRows, pgx.RowToStructByName[domains.FieldOption])
	if err != nil {
		return domains.FormState{}, fmt.Errorf("list options: %w", err)
	}

	optionsByField := make(map[int64][]domains.FieldOption, len(fields))
	for _, option := range options {
		optionsByField[option.FieldID] = append(optionsByField[option.FieldID], option)
	}

	return domains.FormState{
		Form:    form,
		Fields:  fields,
		Options: optionsByField,
	}, nil
}

// UpdateCachedSchema overwrites the derived document on the form record
// without touching updated_at: the cache is not an edit.
func (s *FormProvider) UpdateCachedSchema(ctx context.Context, formID int64, document []byte) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE forms SET json_schema = $1 WHERE id = $2`,
		document, formID,
	); err != nil {
		return fmt.Errorf("update cached schema: %w", err)
	}
	return nil
}

// GetPublishedSchema returns the cached document of a published form.
// Missing forms, drafts, and never-generated caches all surface as
// storage.ErrNotFound.
func (s *FormProvider) GetPublishedSchema(ctx context.Context, slug string) (json.RawMessage, error) {
	const query = `
		SELECT json_schema
		FROM forms
		WHERE slug = $1 AND status = 'published' AND json_schema IS NOT NULL`

	var document json.RawMessage
	if err := s.db.QueryRow(ctx, query, slug).Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get published schema: %w", storage.ErrNotFound)
		}
		return nil, fmt.Errorf("get published schema: %w", err)
	}
	return document, nil
}

// mapConflict translates unique-constraint violations into the storage
// sentinel so services can treat duplicate slugs/positions uniformly.
func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return storage.ErrConflict
	}
	return err
}
