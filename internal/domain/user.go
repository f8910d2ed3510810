package domain

import "time"

// User 员工账号；Role 为显示值
type User struct {
	ID        int        `json:"id" validate:"required"`
	Name      string     `json:"name"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Role      Role       `json:"role"`
	Floor     *int       `json:"floor,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// UserInput 用户创建/更新
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"required"`
	Floor    *int   `json:"floor,omitempty"`
	Password string `json:"password,omitempty"`
}
