package providers

import (
	"context"
	"errors"
	"fmt"

	"formbuilder/internal/domains"
	"formbuilder/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthProvider struct {
	db *pgxpool.Pool
}

func NewAuthProvider(pg *pgxpool.Pool) *AuthProvider {
	return &AuthProvider{
		db: pg,
	}
}

func (s *AuthProvider) SaveAdmin(ctx context.Context, passHash string, admin domains.AdminRegister) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO admins (full_name, email, pass_hash, created_at)
         VALUES ($1, $2, $3, NOW())`, admin.FullName, admin.Email, passHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrUserExist
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (s *AuthProvider) GetAdminByEmail(ctx context.Context, email string) (domains.Admin, error) {
	const query = `
		SELECT id, full_name, email, pass_hash AS password, created_at
		FROM admins
		WHERE email = $1`

	rows, err := s.db.Query(ctx, query, email)
	if err != nil {
		return domains.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	defer rows.Close()

	admin, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Admin])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Admin{}, fmt.Errorf("get admin: %w", storage.ErrNotFound)
		}
		return domains.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

func (s *AuthProvider) GetAdminByID(ctx context.Context, id int64) (domains.Admin, error) {
	const query = `
		SELECT id, full_name, email, pass_hash AS password, created_at
		FROM admins
		WHERE id = $1`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return domains.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	defer rows.Close()

	admin, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Admin])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Admin{}, fmt.Errorf("get admin: %w", storage.ErrNotFound)
		}
		return domains.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}
