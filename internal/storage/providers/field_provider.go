package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"formbuilder/internal/domains"
	"formbuilder/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fieldColumns = `
	id, form_id, slug, label, question, field_type, position,
	required, help_text, placeholder, default_value, config,
	created_at, updated_at`

type FieldProvider struct {
	db *pgxpool.Pool
}

func NewFieldProvider(db *pgxpool.Pool) *FieldProvider {
	return &FieldProvider{
		db: db,
	}
}

func (s *FieldProvider) SaveField(ctx context.Context, formID int64, field domains.FieldCreate) (domains.Field, error) {
	const query = `
		INSERT INTO form_fields (
			form_id, slug, label, question, field_type, position,
			required, help_text, placeholder, default_value, config
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING ` + fieldColumns

	config := field.Config
	if len(config) == 0 {
		config = []byte(`{}`)
	}

	rows, err := s.db.Query(ctx, query,
		formID,
		field.Slug,
		field.Label,
		field.Question,
		field.FieldType,
		field.Position,
		field.Required,
		field.HelpText,
		field.Placeholder,
		field.DefaultValue,
		config,
	)
	if err != nil {
		return domains.Field{}, fmt.Errorf("insert field: %w", err)
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Field])
	if err != nil {
		return domains.Field{}, fmt.Errorf("insert field: %w", mapConflict(err))
	}
	return created, nil
}

func (s *FieldProvider) UpdateField(ctx context.Context, fieldID int64, update domains.FieldUpdate) (domains.Field, error) {
	setClauses := make([]string, 0, 10)
	args := make([]interface{}, 0, 11)
	idx := 1

	appendClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if update.Slug != nil {
		appendClause("slug", *update.Slug)
	}
	if update.Label != nil {
		appendClause("label", *update.Label)
	}
	if update.Question != nil {
		appendClause("question", *update.Question)
	}
	if update.FieldType != nil {
		appendClause("field_type", *update.FieldType)
	}
	if update.Position != nil {
		appendClause("position", *update.Position)
	}
	if update.Required != nil {
		appendClause("required", *update.Required)
	}
	if update.HelpText != nil {
		appendClause("help_text", *update.HelpText)
	}
	if update.Placeholder != nil {
		appendClause("placeholder", *update.Placeholder)
	}
	if update.DefaultValue != nil {
		appendClause("default_value", *update.DefaultValue)
	}
	if update.Config != nil {
		appendClause("config", []byte(update.Config))
	}

	if len(setClauses) == 0 {
		return s.GetFieldByID(ctx, fieldID)
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, fieldID)
	query := fmt.Sprintf(`
		UPDATE form_fields
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), idx, fieldColumns,
	)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return domains.Field{}, fmt.Errorf("update field: %w", err)
	}
	defer rows.Close()

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Field])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Field{}, fmt.Errorf("update field: %w", storage.ErrNotFound)
		}
		return domains.Field{}, fmt.Errorf("update field: %w", mapConflict(err))
	}
	return updated, nil
}

// DeleteField removes the field (options cascade) and reports the owning
// form so the caller can regenerate its schema.
func (s *FieldProvider) DeleteField(ctx context.Context, fieldID int64) (int64, error) {
	var formID int64
	if err := s.db.QueryRow(ctx,
		`DELETE FROM form_fields WHERE id = $1 RETURNING form_id`, fieldID,
	).Scan(&formID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("delete field: %w", storage.ErrNotFound)
		}
		return 0, fmt.Errorf("delete field: %w", err)
	}
	return formID, nil
}

func (s *FieldProvider) GetFieldByID(ctx context.Context, fieldID int64) (domains.Field, error) {
	const query = `SELECT ` + fieldColumns + ` FROM form_fields WHERE id = $1`

	rows, err := s.db.Query(ctx, query, fieldID)
	if err != nil {
		return domains.Field{}, fmt.Errorf("get field: %w", err)
	}
	defer rows.Close()

	field, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Field])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Field{}, fmt.Errorf("get field: %w", storage.ErrNotFound)
		}
		return domains.Field{}, fmt.Errorf("get field: %w", err)
	}
	return field, nil
}
