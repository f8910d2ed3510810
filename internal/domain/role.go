package domain

// Role 用户角色（显示值，荷兰语）
// 后端传输值见 locale.Role 映射表
type Role string

const (
	RoleBeheerder    Role = "Beheerder"
	RoleVerpleegster Role = "Verpleegster"
	RoleVerzorgende  Role = "Verzorgende"
	RoleArts         Role = "Arts"
)

// Roles 全部四个角色（固定顺序）
func Roles() []Role {
	return []Role{RoleBeheerder, RoleVerpleegster, RoleVerzorgende, RoleArts}
}

// Valid 是否为已知角色
func (r Role) Valid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
