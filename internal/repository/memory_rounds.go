package repository

import (
	"context"

	"syntheo-client/internal/domain"
)

// RoundQuery 给药记录过滤（后端值）
type RoundQuery struct {
	Date       string // YYYY-MM-DD，按计划时间匹配
	Dagdeel    string
	ResidentID *int
	Status     string
}

// 已给药状态；写入时自动记录给药时间
const statusGiven = "given"

func (m *Memory) ListRounds(_ context.Context, q RoundQuery) ([]domain.MedicationRound, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []domain.MedicationRound{}
	for _, id := range sortedKeys(m.rounds) {
		r := m.roundDetailLocked(m.rounds[id])
		if q.ResidentID != nil && r.ResidentID != *q.ResidentID {
			continue
		}
		if q.Status != "" && r.Status != q.Status {
			continue
		}
		if q.Date != "" && (r.ScheduledAt == nil || r.ScheduledAt.Format("2006-01-02") != q.Date) {
			continue
		}
		if q.Dagdeel != "" && (r.Schedule == nil || r.Schedule.Dagdeel != q.Dagdeel) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *Memory) CreateRound(_ context.Context, in domain.RoundInput) (domain.MedicationRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkRoundLocked(in); err != nil {
		return domain.MedicationRound{}, err
	}
	r := m.insertRoundLocked(in)
	return m.roundDetailLocked(r), nil
}

// CreateRounds 批量创建；任一条无效则全部不写入
func (m *Memory) CreateRounds(_ context.Context, in []domain.RoundInput) ([]domain.MedicationRound, error) {
	if len(in) == 0 {
		return nil, ErrInvalid
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ri := range in {
		if err := m.checkRoundLocked(ri); err != nil {
			return nil, err
		}
	}
	out := make([]domain.MedicationRound, 0, len(in))
	for _, ri := range in {
		out = append(out, m.roundDetailLocked(m.insertRoundLocked(ri)))
	}
	return out, nil
}

func (m *Memory) UpdateRound(_ context.Context, id int, in domain.RoundInput) (domain.MedicationRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rounds[id]
	if !ok {
		return domain.MedicationRound{}, ErrNotFound
	}
	if in.Status != "" {
		r.Status = in.Status
	}
	if in.Notes != "" {
		r.Notes = in.Notes
	}
	if in.AdministeredBy != nil {
		r.AdministeredBy = in.AdministeredBy
	}
	switch {
	case in.AdministeredAt != nil:
		r.AdministeredAt = in.AdministeredAt
	case r.Status == statusGiven && r.AdministeredAt == nil:
		r.AdministeredAt = m.timestamp()
	}
	m.rounds[id] = r
	m.record("updated", EntityRound, id, map[string]string{"status": r.Status})
	return m.roundDetailLocked(r), nil
}

// RoundStats 指定日期（为空时全部）的状态计数
func (m *Memory) RoundStats(_ context.Context, date string) (domain.RoundStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := domain.RoundStats{Date: date, ByStatus: map[string]int{}}
	for _, r := range m.rounds {
		if date != "" && (r.ScheduledAt == nil || r.ScheduledAt.Format("2006-01-02") != date) {
			continue
		}
		st.Total++
		st.ByStatus[r.Status]++
	}
	return st, nil
}

func (m *Memory) checkRoundLocked(in domain.RoundInput) error {
	if in.Status == "" || in.ResidentMedicationID == 0 {
		return ErrInvalid
	}
	if _, ok := m.residents[in.ResidentID]; !ok {
		return ErrNotFound
	}
	if in.ScheduleID != nil {
		if _, ok := m.schedules[*in.ScheduleID]; !ok {
			return ErrNotFound
		}
	}
	return nil
}

func (m *Memory) insertRoundLocked(in domain.RoundInput) domain.MedicationRound {
	r := domain.MedicationRound{
		ID:                   m.nextID("round"),
		ResidentID:           in.ResidentID,
		ResidentMedicationID: in.ResidentMedicationID,
		ScheduleID:           in.ScheduleID,
		Status:               in.Status,
		Notes:                in.Notes,
		ScheduledAt:          m.timestamp(),
		AdministeredAt:       in.AdministeredAt,
		AdministeredBy:       in.AdministeredBy,
	}
	if r.Status == statusGiven && r.AdministeredAt == nil {
		r.AdministeredAt = r.ScheduledAt
	}
	if r.AdministeredBy == nil && m.currentUserID != 0 {
		r.AdministeredBy = intPtr(m.currentUserID)
	}
	m.rounds[r.ID] = r
	m.record("created", EntityRound, r.ID, map[string]string{"status": r.Status})
	return r
}

func (m *Memory) roundDetailLocked(r domain.MedicationRound) domain.MedicationRound {
	if res, ok := m.residents[r.ResidentID]; ok {
		r.Resident = &res
	}
	if r.ScheduleID != nil {
		if s, ok := m.schedules[*r.ScheduleID]; ok {
			r.Schedule = &s
		}
	}
	return r
}
