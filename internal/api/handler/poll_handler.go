package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pollhub/polling-api/internal/core/domain"
	"github.com/pollhub/polling-api/internal/core/ports"
)

// PollHandler handles HTTP requests for poll operations.
type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{service: service}
}

// List returns all polls, newest first.
//
// @Summary      List polls
// @Tags         polls
// @Produce      json
// @Success      200  {object}  pollListResponse
// @Router       /polls [get]
func (h *PollHandler) List(c echo.Context) error {
	polls, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if polls == nil {
		polls = []*domain.Poll{}
	}
	return c.JSON(http.StatusOK, pollListResponse{Polls: polls})
}

// Create creates a poll owned by the authenticated user.
//
// @Summary      Create a poll
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPollRequest  true  "Poll details"
// @Success      200   {object}  domain.Poll
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /polls [post]
func (h *PollHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPollRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	poll, err := h.service.Create(c.Request().Context(), ports.CreatePollInput{
		Question:      req.Question,
		Options:       req.Options,
		CreatorID:     user.ID,
		CreatorHandle: user.Handle,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, poll)
}

// Vote casts a vote on one option of a poll. Intentionally unauthenticated:
// duplicate-vote prevention is not part of the current design.
//
// @Summary      Vote on a poll option
// @Tags         polls
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Poll id"
// @Param        body  body      voteRequest  true  "Option index"
// @Success      200   {object}  domain.Poll
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /polls/{id}/vote [post]
func (h *PollHandler) Vote(c echo.Context) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	poll, err := h.service.Vote(c.Request().Context(), c.Param("id"), *req.OptionIndex)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOption):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrPollNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, poll)
}

// Delete removes a poll. Routing restricts this to moderators and admins.
//
// @Summary      Delete a poll
// @Tags         polls
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Poll id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /polls/{id} [delete]
func (h *PollHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "poll deleted"})
}
