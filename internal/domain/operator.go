package domain

import "time"

// Role gates which HTTP operations an operator may call.
type Role string

const (
	RoleViewer Role = "viewer"
	RolePlanner Role = "planner"
	RoleAdmin   Role = "admin"
)

// Operator is a human account authorized to trigger and inspect reflow
// runs through the HTTP API.
type Operator struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
