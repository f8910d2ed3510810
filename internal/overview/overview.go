package overview

import (
	"sort"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/locale"
)

// UrgencySummary 某住户（或房间）未处理 melding 的紧急程度汇总
// Counts 与 Highest 使用显示值
type UrgencySummary struct {
	Unresolved int
	Counts     map[string]int
	Highest    string
}

func (u *UrgencySummary) add(n domain.Note) {
	display := locale.Urgency.FromBackend(locale.Urgency.ToBackend(n.Urgency))
	if u.Counts == nil {
		u.Counts = make(map[string]int)
	}
	u.Unresolved++
	u.Counts[display]++
	if u.Highest == "" || locale.UrgencyRank(display) > locale.UrgencyRank(u.Highest) {
		u.Highest = display
	}
}

// UrgencyByResident 按住户统计未处理 melding；已处理的忽略
func UrgencyByResident(notes []domain.Note) map[int]UrgencySummary {
	out := make(map[int]UrgencySummary)
	for _, n := range notes {
		if n.IsResolved {
			continue
		}
		s := out[n.ResidentID]
		s.add(n)
		out[n.ResidentID] = s
	}
	return out
}

// UrgencyByRoom 通过房间关联的住户汇总，key 为房间 ID
// 空房间不出现在结果中
func UrgencyByRoom(rooms []domain.Room, notes []domain.Note) map[int]UrgencySummary {
	byResident := UrgencyByResident(notes)
	out := make(map[int]UrgencySummary)
	for _, r := range rooms {
		if !r.Occupied() {
			continue
		}
		if s, ok := byResident[*r.ResidentID]; ok {
			out[r.ID] = s
		}
	}
	return out
}

// RoundBucket 某个 dagdeel 下的给药记录
type RoundBucket struct {
	Dagdeel  string
	Rounds   []domain.MedicationRound
	ByStatus map[string]int
}

// BucketRounds 按 dagdeel 分组；顺序为 Ochtend, Middag, Avond, Nacht
// 没有时间表的记录归入空 dagdeel，排在最后
func BucketRounds(rounds []domain.MedicationRound) []RoundBucket {
	index := make(map[string]*RoundBucket)
	for _, r := range rounds {
		key := ""
		if r.Schedule != nil {
			key = r.Schedule.Dagdeel
		}
		b, ok := index[key]
		if !ok {
			b = &RoundBucket{Dagdeel: key, ByStatus: make(map[string]int)}
			index[key] = b
		}
		b.Rounds = append(b.Rounds, r)
		b.ByStatus[locale.NormalizeRoundStatus(r.Status)]++
	}

	order := make(map[string]int)
	for i, d := range locale.Dagdeel.Displays() {
		order[d] = i
	}
	rank := func(d string) int {
		if i, ok := order[d]; ok {
			return i
		}
		if d == "" {
			return len(order) + 1
		}
		return len(order)
	}

	out := make([]RoundBucket, 0, len(index))
	for _, b := range index {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i].Dagdeel), rank(out[j].Dagdeel)
		if ri != rj {
			return ri < rj
		}
		return out[i].Dagdeel < out[j].Dagdeel
	})
	return out
}

// UnreadCount 指定用户未读的广播数
func UnreadCount(announcements []domain.Announcement, userID int) int {
	n := 0
	for _, a := range announcements {
		for _, r := range a.Recipients {
			if r.UserID == userID && r.ReadAt == nil {
				n++
				break
			}
		}
	}
	return n
}
