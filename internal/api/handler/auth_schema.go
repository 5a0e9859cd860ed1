package handler

import (
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=7"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginResponse struct {
	User    *domain.Profile `json:"user"`
	Token   string          `json:"token"`
	Message string          `json:"message"`
}

type registerResponse struct {
	Message string          `json:"message"`
	User    *domain.Profile `json:"user"`
}

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}
