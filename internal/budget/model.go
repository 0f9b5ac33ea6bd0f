package budget

import (
	"context"
	"encoding/json"
	"time"
)

// Budget is an owned resource; every mutation checks UserID against the
// acting principal first.
type Budget struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Amount    float64   `db:"amount" json:"amount"`
	UserID    string    `db:"user_id" json:"user_id"`
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
	FindByID(ctx context.Context, id int64) (*Budget, error)
	ListByUser(ctx context.Context, userID string) ([]Budget, error)
	Create(ctx context.Context, b *Budget) (int64, error)
	Update(ctx context.Context, id int64, in Input) error
	Delete(ctx context.Context, id int64) error
}

type bodyRequest struct {
	Name   string          `json:"name"`
	Amount json.RawMessage `json:"amount"`
}
