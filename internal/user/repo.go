package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/torres-leo/BudgetApp-backend/internal/auth"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

const userColumns = `id, name, email, password_hash, token, confirmed, created_at`

func (r *Repository) Create(ctx context.Context, u *User) (string, error) {
	var id string
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO users (name, email, password_hash, token)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		u.Name, u.Email, u.PasswordHash, u.Token,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE token = $1`, token)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Token,
		&u.Confirmed,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) SaveToken(ctx context.Context, id string, token *string) error {
	_, err := r.Pool.Exec(ctx, `UPDATE users SET token = $1 WHERE id = $2`, token, id)
	return err
}

func (r *Repository) Confirm(ctx context.Context, id string) error {
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE users SET confirmed = TRUE, token = NULL WHERE id = $1`,
		id,
	)
	return err
}

func (r *Repository) UpdatePassword(ctx context.Context, id, hash string, clearToken bool) error {
	if clearToken {
		_, err := r.Pool.Exec(
			ctx,
			`UPDATE users SET password_hash = $1, token = NULL WHERE id = $2`,
			hash, id,
		)
		return err
	}
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		hash, id,
	)
	return err
}

// FindPrincipalByID satisfies auth.PrincipalStore.
func (r *Repository) FindPrincipalByID(ctx context.Context, id string) (*auth.Principal, error) {
	var p auth.Principal
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, name, email FROM users WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
