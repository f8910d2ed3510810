package domain

import "time"

// Resident 住户（后端 residents 资源）
// BirthDate 使用后端的 YYYY-MM-DD 字符串
type Resident struct {
	ID        int        `json:"id" validate:"required"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	BirthDate string     `json:"birth_date,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	Floor     *int       `json:"floor,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// 可选的嵌套集合（详情接口返回）
	Room        *Room                `json:"room,omitempty"`
	Medications []ResidentMedication `json:"medications,omitempty"`
	Allergies   []Allergy            `json:"allergies,omitempty"`
	Diets       []Diet               `json:"diets,omitempty"`
}

// FullName 姓名拼接
func (r Resident) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}

// ResidentInput 创建/更新住户的请求体
type ResidentInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// ResidentFilter 住户列表过滤条件（空值不发送）
type ResidentFilter struct {
	Search string
	Floor  *int
}
