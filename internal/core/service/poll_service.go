package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pollhub/polling-api/internal/api/metrics"
	"github.com/pollhub/polling-api/internal/core/domain"
	"github.com/pollhub/polling-api/internal/core/ports"
)

// PollService implements poll creation, listing, voting, and moderation.
type PollService struct {
	repo ports.PollRepository
	log  zerolog.Logger
}

func NewPollService(repo ports.PollRepository, log zerolog.Logger) *PollService {
	return &PollService{repo: repo, log: log}
}

// Create persists a new poll with zeroed tallies. A poll needs at least one
// non-empty option before it can accept votes.
func (s *PollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domain.ErrInvalidInput
	}

	options := make([]domain.PollOption, 0, len(input.Options))
	for _, text := range input.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		options = append(options, domain.PollOption{Text: text})
	}
	if len(options) == 0 {
		return nil, domain.ErrInvalidInput
	}

	poll := &domain.Poll{
		Question:      question,
		Options:       options,
		CreatorID:     input.CreatorID,
		CreatorHandle: input.CreatorHandle,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, poll)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create poll")
		return nil, err
	}

	metrics.PollsCreatedTotal.Inc()
	s.log.Info().Str("poll_id", created.ID).Str("creator", created.CreatorHandle).Msg("poll created")
	return created, nil
}

func (s *PollService) List(ctx context.Context) ([]*domain.Poll, error) {
	return s.repo.List(ctx)
}

// Vote adds one vote to the option at optionIndex and returns the updated
// poll. The increment is a single positional update, so concurrent votes on
// the same option never lose counts.
func (s *PollService) Vote(ctx context.Context, pollID string, optionIndex int) (*domain.Poll, error) {
	poll, err := s.repo.FindByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return nil, domain.ErrInvalidOption
	}

	if err := s.repo.IncrementVote(ctx, pollID, optionIndex); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	metrics.VotesCastTotal.Inc()
	s.log.Info().Str("poll_id", pollID).Int("option", optionIndex).Msg("vote cast")
	return updated, nil
}

// Delete removes a poll. Access is gated to moderators and admins at the
// routing layer; the service only cares that the poll exists.
func (s *PollService) Delete(ctx context.Context, pollID string) error {
	if err := s.repo.Delete(ctx, pollID); err != nil {
		return err
	}
	s.log.Info().Str("poll_id", pollID).Msg("poll deleted")
	return nil
}
