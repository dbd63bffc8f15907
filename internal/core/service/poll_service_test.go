package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pollhub/polling-api/internal/core/domain"
	"github.com/pollhub/polling-api/internal/core/ports"
)

type stubPollRepo struct {
	polls  map[string]*domain.Poll
	nextID int
}

func newStubPollRepo() *stubPollRepo {
	return &stubPollRepo{polls: make(map[string]*domain.Poll)}
}

func clonePoll(p *domain.Poll) *domain.Poll {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Options = append([]domain.PollOption(nil), p.Options...)
	return &clone
}

func (r *stubPollRepo) Create(_ context.Context, poll *domain.Poll) (*domain.Poll, error) {
	r.nextID++
	copy := clonePoll(poll)
	copy.ID = "p" + strconv.Itoa(r.nextID)
	r.polls[copy.ID] = clonePoll(copy)
	return copy, nil
}

func (r *stubPollRepo) FindByID(_ context.Context, id string) (*domain.Poll, error) {
	p, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return clonePoll(p), nil
}

func (r *stubPollRepo) List(_ context.Context) ([]*domain.Poll, error) {
	out := make([]*domain.Poll, 0, len(r.polls))
	for _, p := range r.polls {
		out = append(out, clonePoll(p))
	}
	return out, nil
}

func (r *stubPollRepo) IncrementVote(_ context.Context, id string, optionIndex int) error {
	p, ok := r.polls[id]
	if !ok {
		return domain.ErrPollNotFound
	}
	p.Options[optionIndex].Votes++
	return nil
}

func (r *stubPollRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.polls[id]; !ok {
		return domain.ErrPollNotFound
	}
	delete(r.polls, id)
	return nil
}

func TestPollService_Create_Success(t *testing.T) {
	repo := newStubPollRepo()
	svc := NewPollService(repo, zerolog.Nop())

	poll, err := svc.Create(context.Background(), ports.CreatePollInput{
		Question:      "Tabs or spaces?",
		Options:       []string{"tabs", "spaces", ""},
		CreatorID:     "u1",
		CreatorHandle: "alice",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if poll.ID == "" {
		t.Fatalf("expected poll id")
	}
	if len(poll.Options) != 2 {
		t.Fatalf("expected blank option dropped, got %d options", len(poll.Options))
	}
	for _, opt := range poll.Options {
		if opt.Votes != 0 {
			t.Fatalf("expected zeroed tallies, got %d", opt.Votes)
		}
	}
	if poll.CreatorHandle != "alice" {
		t.Fatalf("unexpected creator: %s", poll.CreatorHandle)
	}
}

func TestPollService_Create_RequiresOption(t *testing.T) {
	svc := NewPollService(newStubPollRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreatePollInput{
		Question: "Empty?",
		Options:  []string{"  ", ""},
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreatePollInput{
		Question: "   ",
		Options:  []string{"a"},
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank question, got %v", err)
	}
}

func TestPollService_Vote_IncrementsExactlyOne(t *testing.T) {
	repo := newStubPollRepo()
	svc := NewPollService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreatePollInput{
		Question: "Q",
		Options:  []string{"a", "b"},
	})

	updated, err := svc.Vote(context.Background(), created.ID, 0)
	if err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if updated.Options[0].Votes != 1 {
		t.Fatalf("expected option 0 at 1 vote, got %d", updated.Options[0].Votes)
	}
	if updated.Options[1].Votes != 0 {
		t.Fatalf("expected option 1 untouched, got %d", updated.Options[1].Votes)
	}
}

func TestPollService_Vote_InvalidIndex(t *testing.T) {
	repo := newStubPollRepo()
	svc := NewPollService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreatePollInput{
		Question: "Q",
		Options:  []string{"a", "b"},
	})

	if _, err := svc.Vote(context.Background(), created.ID, 5); !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if _, err := svc.Vote(context.Background(), created.ID, -1); !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption for negative index, got %v", err)
	}
}

func TestPollService_Vote_UnknownPoll(t *testing.T) {
	svc := NewPollService(newStubPollRepo(), zerolog.Nop())

	if _, err := svc.Vote(context.Background(), "missing", 0); !errors.Is(err, domain.ErrPollNotFound) {
		t.Fatalf("expected ErrPollNotFound, got %v", err)
	}
}

func TestPollService_Delete(t *testing.T) {
	repo := newStubPollRepo()
	svc := NewPollService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreatePollInput{
		Question: "Q",
		Options:  []string{"a"},
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrPollNotFound) {
		t.Fatalf("expected ErrPollNotFound, got %v", err)
	}
}
