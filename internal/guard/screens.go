package guard

import (
	"fmt"
	"sort"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/session"
)

// Screen 受保护页面的静态允许列表
type Screen struct {
	Name     string
	Allow    []domain.Role
	Override string
}

var (
	all     = domain.Roles()
	care    = []domain.Role{domain.RoleBeheerder, domain.RoleVerpleegster, domain.RoleVerzorgende}
	medical = []domain.Role{domain.RoleBeheerder, domain.RoleVerpleegster, domain.RoleArts}
	admins  = []domain.Role{domain.RoleBeheerder}
)

// screens 每个页面允许的角色
var screens = map[string]Screen{
	"dashboard":       {Name: "dashboard", Allow: all},
	"residents":       {Name: "residents", Allow: all},
	"notes":           {Name: "notes", Allow: all},
	"medication":      {Name: "medication", Allow: medical},
	"diets":           {Name: "diets", Allow: care},
	"rooms":           {Name: "rooms", Allow: []domain.Role{domain.RoleBeheerder, domain.RoleVerpleegster}},
	"announcements":   {Name: "announcements", Allow: all},
	"change-requests": {Name: "change-requests", Allow: admins},
	"users":           {Name: "users", Allow: admins},
	"audit-logs":      {Name: "audit-logs", Allow: admins},
}

// LookupScreen 按名称查找页面
func LookupScreen(name string) (Screen, error) {
	s, ok := screens[name]
	if !ok {
		return Screen{}, fmt.Errorf("unknown screen %q", name)
	}
	return s, nil
}

// ScreenNames 全部页面名（排序）
func ScreenNames() []string {
	names := make([]string, 0, len(screens))
	for n := range screens {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Check 对某个页面执行判定
func Check(name string, state session.Snapshot) (Decision, error) {
	s, err := LookupScreen(name)
	if err != nil {
		return Decision{}, err
	}
	return Decide(state, s.Allow, s.Override), nil
}
