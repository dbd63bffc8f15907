package handler

import "github.com/pollhub/polling-api/internal/core/domain"

type createPollRequest struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options"  validate:"required,min=1,dive,required"`
}

// voteRequest uses a pointer so index 0 survives the required check.
type voteRequest struct {
	OptionIndex *int `json:"optionIndex" validate:"required,gte=0"`
}

type pollListResponse struct {
	Polls []*domain.Poll `json:"polls"`
}
