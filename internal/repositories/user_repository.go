package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, name, username, email, password_hash, role, status`

func (r UserRepository) Create(ctx context.Context, u *models.User) error {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (name, username, email, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Name, u.Username, u.Email, u.PasswordHash, u.Role, u.Status)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("user insert id: %w", err)
	}
	u.ID = id
	return nil
}

// CountByEmailOrUsername is used to reject duplicate registrations.
func (r UserRepository) CountByEmailOrUsername(ctx context.Context, email, username string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM users
		WHERE email = ? OR username = ?
	`, email, username).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("check user: %w", err)
	}
	return n, nil
}

// GetByLogin looks a user up by email or username.
func (r UserRepository) GetByLogin(ctx context.Context, identifier string) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ? OR username = ? LIMIT 1`, identifier, identifier)
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id)
}

func (r UserRepository) getOne(ctx context.Context, query string, args ...any) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
