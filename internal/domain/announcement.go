package domain

import "time"

// Announcement 广播消息，按接收人记录已读状态
type Announcement struct {
	ID         int                     `json:"id" validate:"required"`
	Title      string                  `json:"title"`
	Message    string                  `json:"message"`
	AuthorID   int                     `json:"author_id"`
	Author     *User                   `json:"author,omitempty"`
	CreatedAt  *time.Time              `json:"created_at,omitempty"`
	Recipients []AnnouncementRecipient `json:"recipients,omitempty"`
}

// AnnouncementRecipient 接收人与已读时间（nil 为未读）
type AnnouncementRecipient struct {
	UserID int        `json:"user_id"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}

// AnnouncementInput 创建广播
type AnnouncementInput struct {
	Title        string `json:"title" validate:"required"`
	Message      string `json:"message" validate:"required"`
	AuthorID     int    `json:"author_id,omitempty"`
	RecipientIDs []int  `json:"recipient_ids,omitempty"`
}
