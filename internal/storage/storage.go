package storage

import (
	"context"
	"time"

	"github.com/louisbranch/fairdice/internal/core/fairness"
)

// Round is one archived protocol round.
type Round struct {
	ID         string
	Label      string
	Transcript fairness.Transcript
	CreatedAt  time.Time
}

// RoundStore persists revealed rounds.
type RoundStore interface {
	PutRound(ctx context.Context, round Round) error
	GetRound(ctx context.Context, id string) (Round, error)
	ListRounds(ctx context.Context, limit int) ([]Round, error)
}
