package model

import (
	"time"
)

type MinisterRole string

const (
	MinisterRoleAdmin MinisterRole = "admin"
	MinisterRoleUser  MinisterRole = "user"
)

type Minister struct {
	ID        int64        `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Phone     string       `db:"phone" json:"phone"`
	Email     string       `db:"email" json:"email,omitempty"`
	Username  string       `db:"username" json:"username"`
	Password  string       `db:"password" json:"-"`
	Role      MinisterRole `db:"role" json:"role"`
	IsActive  bool         `db:"isActive" json:"is_active"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
	LastLogin *time.Time   `db:"lasLogin" json:"last_login,omitempty"`
}

type CreateMinisterRequest struct {
	Name     string       `json:"name" binding:"required"`
	Phone    string       `json:"phone"`
	Email    string       `json:"email" binding:"omitempty,email"`
	Username string       `json:"username" binding:"required"`
	Password string       `json:"password" binding:"required"`
	Role     MinisterRole `json:"role" binding:"omitempty,oneof=admin user"`
}

// UpdateMinisterRequest is a sparse patch, nil fields are left unchanged.
type UpdateMinisterRequest struct {
	Name     *string       `json:"name"`
	Phone    *string       `json:"phone"`
	Email    *string       `json:"email" binding:"omitempty,email"`
	Username *string       `json:"username"`
	Password *string       `json:"password"`
	Role     *MinisterRole `json:"role" binding:"omitempty,oneof=admin user"`
	IsActive *bool         `json:"is_active"`
}
