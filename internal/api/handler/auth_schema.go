package handler

import "github.com/pollhub/polling-api/internal/core/domain"

type registerRequest struct {
	Handle   string `json:"handle"   validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"required,email"`
}

type loginRequest struct {
	Handle   string `json:"handle"   validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
