package dto

import (
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	FirstName string        `json:"firstName" validate:"required,max=100"`
	LastName  string        `json:"lastName" validate:"required,max=100"`
	Gender    models.Gender `json:"gender" validate:"required,oneof=male female other"`
	Email     string        `json:"email" validate:"required,email,max=255"`
	Password  string        `json:"password" validate:"required,min=6,max=72"`
	Country   string        `json:"country" validate:"omitempty,max=100"`
	Phone     string        `json:"phone" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserSummary struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        UserSummary `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
