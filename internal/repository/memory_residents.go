package repository

import (
	"context"
	"strings"

	"syntheo-client/internal/domain"
)

// ResidentQuery 住户列表过滤
type ResidentQuery struct {
	Search string
	Floor  *int
}

func (m *Memory) ListResidents(_ context.Context, q ResidentQuery) ([]domain.Resident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := []domain.Resident{}
	for _, id := range sortedKeys(m.residents) {
		r := m.withRoomLocked(m.residents[id])
		if search != "" && !strings.Contains(strings.ToLower(r.FullName()), search) {
			continue
		}
		if q.Floor != nil && (r.Floor == nil || *r.Floor != *q.Floor) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// GetResident 详情，包含房间和饮食
func (m *Memory) GetResident(_ context.Context, id int) (domain.Resident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.residents[id]
	if !ok {
		return domain.Resident{}, ErrNotFound
	}
	r = m.withRoomLocked(r)
	if d, ok := m.diets[id]; ok {
		r.Diets = []domain.Diet{d}
	}
	return r, nil
}

func (m *Memory) CreateResident(_ context.Context, in domain.ResidentInput) (domain.Resident, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return domain.Resident{}, ErrInvalid
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	r := domain.Resident{
		ID:        m.nextID("resident"),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: in.BirthDate,
		PhotoURL:  in.PhotoURL,
		CreatedAt: m.timestamp(),
	}
	r.UpdatedAt = r.CreatedAt
	m.residents[r.ID] = r
	m.record("created", EntityResident, r.ID, in)
	return r, nil
}

func (m *Memory) UpdateResident(_ context.Context, id int, in domain.ResidentInput) (domain.Resident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.residents[id]
	if !ok {
		return domain.Resident{}, ErrNotFound
	}
	if in.FirstName != "" {
		r.FirstName = in.FirstName
	}
	if in.LastName != "" {
		r.LastName = in.LastName
	}
	if in.BirthDate != "" {
		r.BirthDate = in.BirthDate
	}
	if in.PhotoURL != "" {
		r.PhotoURL = in.PhotoURL
	}
	r.UpdatedAt = m.timestamp()
	m.residents[id] = r
	m.record("updated", EntityResident, id, in)
	return m.withRoomLocked(r), nil
}

// DeleteResident 删除住户，并释放其房间
func (m *Memory) DeleteResident(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.residents[id]; !ok {
		return ErrNotFound
	}
	delete(m.residents, id)
	delete(m.diets, id)
	for rid, room := range m.rooms {
		if room.ResidentID != nil && *room.ResidentID == id {
			room.ResidentID = nil
			m.rooms[rid] = room
		}
	}
	m.record("deleted", EntityResident, id, nil)
	return nil
}

// GetResidentDiet 住户饮食；没有时返回 ErrNotFound
func (m *Memory) GetResidentDiet(_ context.Context, residentID int) (domain.Diet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.diets[residentID]
	if !ok {
		return domain.Diet{}, ErrNotFound
	}
	return d, nil
}

// SetResidentDiet 新建或替换住户饮食
func (m *Memory) SetResidentDiet(_ context.Context, in domain.DietInput) (domain.Diet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.residents[in.ResidentID]; !ok {
		return domain.Diet{}, ErrNotFound
	}
	d, exists := m.diets[in.ResidentID]
	if !exists {
		d.ID = m.nextID("diet")
	}
	d.ResidentID = in.ResidentID
	d.DietType = in.DietType
	d.Description = in.Description
	d.Preferences = in.Preferences
	m.diets[in.ResidentID] = d

	action := "updated"
	if !exists {
		action = "created"
	}
	m.record(action, EntityDiet, d.ID, in)
	return d, nil
}

// withRoomLocked 附加住户所在房间，Floor 取房间楼层
func (m *Memory) withRoomLocked(r domain.Resident) domain.Resident {
	for _, id := range sortedKeys(m.rooms) {
		room := m.rooms[id]
		if room.ResidentID != nil && *room.ResidentID == r.ID {
			room.Resident = nil
			r.Room = &room
			r.Floor = intPtr(room.Floor)
			return r
		}
	}
	r.Room = nil
	return r
}
