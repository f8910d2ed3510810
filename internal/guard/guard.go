package guard

import (
	"context"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/session"
)

// Outcome 守卫判定结果
type Outcome int

const (
	OutcomeLoading Outcome = iota
	OutcomeRedirect
	OutcomeAllow
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// 固定跳转目标
const (
	RouteLogin      = "/login"
	RouteSelectRole = "/select-role"
)

// defaultRoutes 每个角色的默认落地页
var defaultRoutes = map[domain.Role]string{
	domain.RoleBeheerder:    "/beheer/dashboard",
	domain.RoleVerpleegster: "/verpleging/dashboard",
	domain.RoleVerzorgende:  "/verzorging/dashboard",
	domain.RoleArts:         "/arts/dashboard",
}

// DefaultRoute 角色默认页；未知角色回到角色选择页
func DefaultRoute(role domain.Role) string {
	if r, ok := defaultRoutes[role]; ok {
		return r
	}
	return RouteSelectRole
}

// Decision 判定结果；仅 OutcomeRedirect 时 Redirect 有值
type Decision struct {
	Outcome  Outcome
	Redirect string
}

func (d Decision) Allowed() bool { return d.Outcome == OutcomeAllow }

// Decide 纯函数，按顺序判定：
//  1. 会话加载中 -> loading
//  2. 无用户 -> /login；无选中角色 -> /select-role
//  3. 角色不在允许列表 -> override（非空时）或角色默认页
//  4. 其余 -> allow
func Decide(state session.Snapshot, allow []domain.Role, override string) Decision {
	if state.Loading {
		return Decision{Outcome: OutcomeLoading}
	}
	if state.CurrentUser == nil {
		return Decision{Outcome: OutcomeRedirect, Redirect: RouteLogin}
	}
	if state.SelectedRole == nil {
		return Decision{Outcome: OutcomeRedirect, Redirect: RouteSelectRole}
	}
	role := *state.SelectedRole
	for _, r := range allow {
		if r == role {
			return Decision{Outcome: OutcomeAllow}
		}
	}
	if override != "" {
		return Decision{Outcome: OutcomeRedirect, Redirect: override}
	}
	return Decision{Outcome: OutcomeRedirect, Redirect: DefaultRoute(role)}
}

// Watch 每次会话状态变化时重新判定，直到 ctx 结束
// 首个判定基于订阅时的当前状态
func Watch(ctx context.Context, s *session.Store, allow []domain.Role, override string) <-chan Decision {
	out := make(chan Decision, 1)
	updates, cancel := s.Subscribe()
	go func() {
		defer close(out)
		defer cancel()

		last := Decide(s.Snapshot(), allow, override)
		select {
		case out <- last:
		case <-ctx.Done():
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-updates:
				if !ok {
					return
				}
				d := Decide(snap, allow, override)
				if d == last {
					continue
				}
				last = d
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
