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

const optionColumns = `id, field_id, value, label, position, is_default`

type OptionProvider struct {
	db *pgxpool.Pool
}

func NewOptionProvider(db *pgxpool.Pool) *OptionProvider {
	return &OptionProvider{
		db: db,
	}
}

func (s *OptionProvider) SaveOption(ctx context.Context, fieldID int64, option domains.OptionCreate) (domains.FieldOption, error) {
	const query = `
		INSERT INTO field_options (field_id, value, label, position, is_default)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING ` + optionColumns

	rows, err := s.db.Query(ctx, query,
		fieldID,
		option.Value,
		option.Label,
		option.Position,
		option.IsDefault,
	)
	if err != nil {
		return domains.FieldOption{}, fmt.Errorf("insert option: %w", err)
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.FieldOption])
	if err != nil {
		return domains.FieldOption{}, fmt.Errorf("insert option: %w", mapConflict(err))
	}
	return created, nil
}

func (s *OptionProvider) UpdateOption(ctx context.Context, optionID int64, update domains.OptionUpdate) (domains.FieldOption, error) {
	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	idx := 1

	if update.Value != nil {
		setClauses = append(setClauses, fmt.Sprintf("value = $%d", idx))
		args = append(args, *update.Value)
		idx++
	}
	if update.Label != nil {
		setClauses = append(setClauses, fmt.Sprintf("label = $%d", idx))
		args = append(args, *update.Label)
		idx++
	}
	if update.Position != nil {
		setClauses = append(setClauses, fmt.Sprintf("position = $%d", idx))
		args = append(args, *update.Position)
		idx++
	}
	if update.IsDefault != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_default = $%d", idx))
		args = append(args, *update.IsDefault)
		idx++
	}

	if len(setClauses) == 0 {
		return s.GetOptionByID(ctx, optionID)
	}

	args = append(args, optionID)
	query := fmt.Sprintf(`
		UPDATE field_options
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), idx, optionColumns,
	)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return domains.FieldOption{}, fmt.Errorf("update option: %w", err)
	}
	defer rows.Close()

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.FieldOption])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.FieldOption{}, fmt.Errorf("update option: %w", storage.ErrNotFound)
		}
		return domains.FieldOption{}, fmt.Errorf("update option: %w", mapConflict(err))
	}
	return updated, nil
}

// DeleteOption removes the option and reports the owning form for
// schema regeneration.
func (s *OptionProvider) DeleteOption(ctx context.Context, optionID int64) (int64, error) {
	const query = `
		DELETE FROM field_options o
		USING form_fields f
		WHERE o.id = $1 AND f.id = o.field_id
		RETURNING f.form_id`

	var formID int64
	if err := s.db.QueryRow(ctx, query, optionID).Scan(&formID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("delete option: %w", storage.ErrNotFound)
		}
		return 0, fmt.Errorf("delete option: %w", err)
	}
	return formID, nil
}

func (s *OptionProvider) GetOptionByID(ctx context.Context, optionID int64) (domains.FieldOption, error) {
	const query = `SELECT ` + optionColumns + ` FROM field_options WHERE id = $1`

	rows, err := s.db.Query(ctx, query, optionID)
	if err != nil {
		return domains.FieldOption{}, fmt.Errorf("get option: %w", err)
	}
	defer rows.Close()

	option, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.FieldOption])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.FieldOption{}, fmt.Errorf("get option: %w", storage.ErrNotFound)
		}
		return domains.FieldOption{}, fmt.Errorf("get option: %w", err)
	}
	return option, nil
}
