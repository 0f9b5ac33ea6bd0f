package budget

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*Budget, error) {
	var b Budget
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, name, amount, user_id, created_at FROM budgets WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Name, &b.Amount, &b.UserID, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Budget, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, name, amount, user_id, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Budget, 0)
	for rows.Next() {
		var b Budget
		if err := rows.Scan(&b.ID, &b.Name, &b.Amount, &b.UserID, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repository) Create(ctx context.Context, b *Budget) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO budgets (name, amount, user_id)
         VALUES ($1, $2, $3)
         RETURNING id`,
		b.Name, b.Amount, b.UserID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, id int64, in Input) error {
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE budgets SET name = $1, amount = $2 WHERE id = $3`,
		in.Name, in.Amount, id,
	)
	return err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	return err
}
