package model

import (
	"time"
)

// PermissionManageMinisters gates the minister management screen.
const PermissionManageMinisters = "manage_ministers"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string    `json:"token"`
	Minister *Minister `json:"minister"`
}

// Session is the persisted record of an authenticated minister. It is a
// hint only: privileged routes re-read the minister from the database and
// drop the session if the account is gone or deactivated.
type Session struct {
	ID         string       `json:"id"`
	MinisterID int64        `json:"minister_id"`
	Username   string       `json:"username"`
	Role       MinisterRole `json:"role"`
	Minister   *Minister    `json:"minister"`
	CreatedAt  time.Time    `json:"created_at"`
}

// HasPermission is the closed permission table: the only grant today is
// manage_ministers for admins. Unknown permission names resolve to false.
func (s *Session) HasPermission(permission string) bool {
	if s == nil {
		return false
	}
	switch permission {
	case PermissionManageMinisters:
		return s.Role == MinisterRoleAdmin
	default:
		return false
	}
}
