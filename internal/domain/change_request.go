package domain

import "time"

// ChangeRequestStatus 变更请求状态（规范化后的值）
type ChangeRequestStatus string

const (
	ChangeRequestPending  ChangeRequestStatus = "pending"
	ChangeRequestApproved ChangeRequestStatus = "approved"
	ChangeRequestRejected ChangeRequestStatus = "rejected"
)

// ChangeRequest 对住户档案的字段级修改申请
// RawStatus 保留后端原始字符串，Status 为规范化结果
type ChangeRequest struct {
	ID          int                 `json:"id" validate:"required"`
	ResidentID  int                 `json:"resident_id"`
	Resident    *Resident           `json:"resident,omitempty"`
	RequestedBy *int                `json:"requested_by,omitempty"`
	Requester   *User               `json:"requester,omitempty"`
	RawStatus   string              `json:"status"`
	Status      ChangeRequestStatus `json:"-"`
	Reason      string              `json:"reason,omitempty"`
	Fields      []FieldChange       `json:"changes,omitempty"`
	ReviewedBy  *int                `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt   *time.Time          `json:"created_at,omitempty"`
}

// FieldChange 单个字段的旧值/新值
type FieldChange struct {
	Field    string `json:"field" validate:"required"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// ChangeRequestInput 提交变更请求
type ChangeRequestInput struct {
	ResidentID  int           `json:"resident_id" validate:"required"`
	RequestedBy *int          `json:"requested_by,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	Fields      []FieldChange `json:"changes" validate:"required,min=1,dive"`
}

// ChangeRequestFilter 列表过滤条件
type ChangeRequestFilter struct {
	Status     ChangeRequestStatus
	ResidentID *int
}
