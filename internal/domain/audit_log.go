package domain

import (
	"encoding/json"
	"time"
)

// AuditLog 审计日志（只追加，仅展示）
type AuditLog struct {
	ID         int             `json:"id" validate:"required"`
	Timestamp  time.Time       `json:"created_at"`
	UserID     *int            `json:"user_id,omitempty"`
	User       *User           `json:"user,omitempty"`
	Action     string          `json:"action" validate:"required"`
	EntityType string          `json:"auditable_type"`
	EntityID   *int            `json:"auditable_id,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// AuditLogFilter 审计日志过滤与分页
// EntityType 以 auditable_type 参数发送给后端
type AuditLogFilter struct {
	UserID     *int
	Action     string
	EntityType string
	From       string
	To         string
	Page       int
	PerPage    int
}

// AuditLogPage 后端分页结果
type AuditLogPage struct {
	Items    []AuditLog `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PerPage  int        `json:"per_page"`
	LastPage int        `json:"last_page"`
}
