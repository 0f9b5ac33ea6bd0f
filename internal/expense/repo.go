package expense

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

func (r *Repository) FindByID(ctx context.Context, id int64) (*Expense, error) {
	var e Expense
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, name, amount, budget_id, created_at FROM expenses WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Amount, &e.BudgetID, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(ctx context.Context, e *Expense) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO expenses (name, amount, budget_id)
         VALUES ($1, $2, $3)
         RETURNING id`,
		e.Name, e.Amount, e.BudgetID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, id int64, in Input) error {
	_, err := r.Pool.Exec(
		ctx,
		`UPDATE expenses SET name = $1, amount = $2 WHERE id = $3`,
		in.Name, in.Amount, id,
	)
	return err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	return err
}
