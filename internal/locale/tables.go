package locale

import (
	"strings"

	"syntheo-client/internal/domain"
)

// Category melding 类别，默认 general
var Category = NewTable("category", "general",
	Pair{"general", "Algemeen"},
	Pair{"medical", "Medisch"},
	Pair{"behavior", "Gedrag"},
	Pair{"fall", "Valincident"},
	Pair{"nutrition", "Voeding"},
	Pair{"hygiene", "Hygiëne"},
)

// Urgency melding 紧急程度，默认 low
var Urgency = NewTable("urgency", "low",
	Pair{"low", "Laag"},
	Pair{"medium", "Middel"},
	Pair{"high", "Hoog"},
	Pair{"critical", "Kritiek"},
)

// RoundStatus 给药状态（透传：未知显示值原样发送）
var RoundStatus = NewTable("round_status", "",
	Pair{"given", "Gegeven"},
	Pair{"missed", "Gemist"},
	Pair{"refused", "Geweigerd"},
	Pair{"delayed", "Uitgesteld"},
)

// Dagdeel 一天中的时段，默认 morning
var Dagdeel = NewTable("dagdeel", "morning",
	Pair{"morning", "Ochtend"},
	Pair{"afternoon", "Middag"},
	Pair{"evening", "Avond"},
	Pair{"night", "Nacht"},
)

// Role 用户角色（透传）
var Role = NewTable("role", "",
	Pair{"admin", string(domain.RoleBeheerder)},
	Pair{"nurse", string(domain.RoleVerpleegster)},
	Pair{"caregiver", string(domain.RoleVerzorgende)},
	Pair{"doctor", string(domain.RoleArts)},
)

// ChangeRequestStatus 变更请求状态显示表（默认 pending）
var ChangeRequestStatus = NewTable("change_request_status", string(domain.ChangeRequestPending),
	Pair{string(domain.ChangeRequestPending), "In afwachting"},
	Pair{string(domain.ChangeRequestApproved), "Goedgekeurd"},
	Pair{string(domain.ChangeRequestRejected), "Afgekeurd"},
)

// Urgency 的排序权重，数值越大越紧急；未知值为 0
var urgencyRank = map[string]int{
	"low":      1,
	"medium":   2,
	"high":     3,
	"critical": 4,
}

// UrgencyRank 返回紧急程度权重，接受显示值或后端值
// 空值为 0，其余未知值按默认 low 处理
func UrgencyRank(v string) int {
	if strings.TrimSpace(v) == "" {
		return 0
	}
	return urgencyRank[Urgency.ToBackend(v)]
}

// NormalizeRoundStatus 后端状态 -> 显示值
// 已经是显示值（或未知值）时原样返回，因此重复调用结果不变
func NormalizeRoundStatus(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if lower := strings.ToLower(trimmed); RoundStatus.IsBackend(lower) {
		return RoundStatus.FromBackend(lower)
	}
	return trimmed
}

// NormalizeChangeRequestStatus 尽力而为的状态分类（有损）
// 1. 与已知后端值/显示值大小写不敏感匹配
// 2. 包含 "goed" -> approved，包含 "afge" -> rejected
// 3. 其余一律 pending
func NormalizeChangeRequestStatus(raw string) domain.ChangeRequestStatus {
	v := strings.TrimSpace(raw)
	if p, ok := ChangeRequestStatus.lookupFold(v); ok {
		return domain.ChangeRequestStatus(p.Backend)
	}
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "goed"):
		return domain.ChangeRequestApproved
	case strings.Contains(lower, "afge"):
		return domain.ChangeRequestRejected
	default:
		return domain.ChangeRequestPending
	}
}

// RoleFromBackend 后端角色 -> 显示角色
func RoleFromBackend(raw string) domain.Role {
	v := strings.TrimSpace(raw)
	if Role.IsDisplay(v) {
		return domain.Role(v)
	}
	if lower := strings.ToLower(v); Role.IsBackend(lower) {
		return domain.Role(Role.FromBackend(lower))
	}
	return domain.Role(v)
}

// RoleToBackend 显示角色 -> 后端角色
func RoleToBackend(r domain.Role) string {
	return Role.ToBackend(string(r))
}
