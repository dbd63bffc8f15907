package ports

import (
	"context"

	"github.com/pollhub/polling-api/internal/core/domain"
)

// CreatePollInput carries a validated poll creation request into the service.
type CreatePollInput struct {
	Question      string
	Options       []string
	CreatorID     string
	CreatorHandle string
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	List(ctx context.Context) ([]*domain.Poll, error)
	// Vote increments one option's tally and returns the updated poll.
	Vote(ctx context.Context, pollID string, optionIndex int) (*domain.Poll, error)
	Delete(ctx context.Context, pollID string) error
}
