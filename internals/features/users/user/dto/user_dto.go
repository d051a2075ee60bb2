package dto

import (
	"time"

	"github.com/google/uuid"

	"studyabroad_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ============================
// Request DTO
// ============================

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student admin"`
}

type UpdateUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
