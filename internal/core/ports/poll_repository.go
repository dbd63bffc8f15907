package ports

import (
	"context"

	"github.com/pollhub/polling-api/internal/core/domain"
)

// PollRepository defines persistence operations for polls.
type PollRepository interface {
	Create(ctx context.Context, poll *domain.Poll) (*domain.Poll, error)
	FindByID(ctx context.Context, id string) (*domain.Poll, error)
	// List returns all polls, newest first.
	List(ctx context.Context) ([]*domain.Poll, error)
	// IncrementVote adds one vote to the option at optionIndex using a single
	// positional update; the caller bounds-checks the index first.
	IncrementVote(ctx context.Context, id string, optionIndex int) error
	Delete(ctx context.Context, id string) error
}
