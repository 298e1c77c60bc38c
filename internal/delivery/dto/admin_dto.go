package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateUserRoleRequest struct {
	RoleID int `json:"role_id" validate:"required,oneof=1 2 3"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64          `json:"id"`
	UserID    *uuid.UUID     `json:"user_id,omitempty"`
	Action    string         `json:"action"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
