package domain

import "time"

// Note 护理记录（melding），与住户关联
// Category/Urgency 在客户端为荷兰语显示值，传输时为英文 snake_case
type Note struct {
	ID         int        `json:"id" validate:"required"`
	ResidentID int        `json:"resident_id"`
	Resident   *Resident  `json:"resident,omitempty"`
	AuthorID   *int       `json:"user_id,omitempty"`
	Author     *User      `json:"user,omitempty"`
	Category   string     `json:"category"`
	Urgency    string     `json:"urgency"`
	Content    string     `json:"content"`
	IsResolved bool       `json:"is_resolved"`
	ResolvedBy *int       `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`

	// 本地确认标记（不来自后端）
	Acknowledged bool `json:"-"`
}

// NoteInput 创建/更新 melding 的请求体（显示值）
type NoteInput struct {
	ResidentID int    `json:"resident_id" validate:"required"`
	AuthorID   *int   `json:"user_id,omitempty"`
	Category   string `json:"category"`
	Urgency    string `json:"urgency"`
	Content    string `json:"content" validate:"required"`
}

// NoteFilter melding 列表过滤条件
type NoteFilter struct {
	ResidentID *int
	Category   string // 显示值
	Urgency    string // 显示值
	IsResolved *bool
}

// NoteStats 后端聚合统计
type NoteStats struct {
	Total      int            `json:"total"`
	Unresolved int            `json:"unresolved"`
	ByUrgency  map[string]int `json:"by_urgency,omitempty"`
	ByCategory map[string]int `json:"by_category,omitempty"`
}
