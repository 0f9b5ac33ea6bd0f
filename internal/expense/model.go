package expense

import (
	"context"
	"encoding/json"
	"time"
)

// Expense is a child resource: it belongs to exactly one budget, and that
// budget must belong to the acting principal.
type Expense struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Amount    float64   `db:"amount" json:"amount"`
	BudgetID  int64     `db:"budget_id" json:"budget_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Input is a validated create/update body.
type Input struct {
	Name   string
	Amount float64
}

// Store is the persistence surface the pipeline and handlers consume.
// FindByID returns (nil, nil) when no row matches.
type Store interface {
	FindByID(ctx context.Context, id int64) (*Expense, error)
	Create(ctx context.Context, e *Expense) (int64, error)
	Update(ctx context.Context, id int64, in Input) error
	Delete(ctx context.Context, id int64) error
}

type bodyRequest struct {
	Name   string          `json:"name"`
	Amount json.RawMessage `json:"amount"`
}
