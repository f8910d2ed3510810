package repository

import (
	"context"
	"strings"

	"syntheo-client/internal/domain"
)

func (m *Memory) ListRooms(_ context.Context, floor *int) ([]domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []domain.Room{}
	for _, id := range sortedKeys(m.rooms) {
		room := m.rooms[id]
		if floor != nil && room.Floor != *floor {
			continue
		}
		out = append(out, m.withResidentLocked(room))
	}
	return out, nil
}

func (m *Memory) GetRoom(_ context.Context, id int) (domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	room, ok := m.rooms[id]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	return m.withResidentLocked(room), nil
}

// CreateRoom 房号唯一
func (m *Memory) CreateRoom(_ context.Context, in domain.RoomInput) (domain.Room, error) {
	if strings.TrimSpace(in.RoomNumber) == "" {
		return domain.Room{}, ErrInvalid
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.roomNumberTakenLocked(in.RoomNumber, 0) {
		return domain.Room{}, ErrConflict
	}
	room := domain.Room{ID: m.nextID("room"), Floor: in.Floor, RoomNumber: in.RoomNumber}
	m.rooms[room.ID] = room
	m.record("created", EntityRoom, room.ID, in)
	return room, nil
}

func (m *Memory) UpdateRoom(_ context.Context, id int, in domain.RoomInput) (domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[id]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	if in.RoomNumber != "" {
		if m.roomNumberTakenLocked(in.RoomNumber, id) {
			return domain.Room{}, ErrConflict
		}
		room.RoomNumber = in.RoomNumber
	}
	room.Floor = in.Floor
	m.rooms[id] = room
	m.record("updated", EntityRoom, id, in)
	return m.withResidentLocked(room), nil
}

func (m *Memory) DeleteRoom(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(m.rooms, id)
	m.record("deleted", EntityRoom, id, nil)
	return nil
}

// LinkResident 把住户分配到房间
// 一个住户同一时间只占用一个房间：原房间自动释放
// 房间已有其他住户时返回 ErrConflict
func (m *Memory) LinkResident(_ context.Context, roomID, residentID int) (domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	if _, ok := m.residents[residentID]; !ok {
		return domain.Room{}, ErrNotFound
	}
	if room.ResidentID != nil {
		if *room.ResidentID == residentID {
			return m.withResidentLocked(room), nil
		}
		return domain.Room{}, ErrConflict
	}

	for id, other := range m.rooms {
		if other.ResidentID != nil && *other.ResidentID == residentID {
			other.ResidentID = nil
			m.rooms[id] = other
			m.record("unlinked_resident", EntityRoom, id, map[string]int{"resident_id": residentID})
		}
	}

	room.ResidentID = intPtr(residentID)
	m.rooms[roomID] = room
	m.record("linked_resident", EntityRoom, roomID, map[string]int{"resident_id": residentID})
	return m.withResidentLocked(room), nil
}

// UnlinkResident 释放房间；空房间直接返回
func (m *Memory) UnlinkResident(_ context.Context, roomID int) (domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	if room.ResidentID == nil {
		return room, nil
	}
	prev := *room.ResidentID
	room.ResidentID = nil
	m.rooms[roomID] = room
	m.record("unlinked_resident", EntityRoom, roomID, map[string]int{"resident_id": prev})
	return room, nil
}

func (m *Memory) roomNumberTakenLocked(number string, except int) bool {
	for id, room := range m.rooms {
		if id != except && strings.EqualFold(room.RoomNumber, number) {
			return true
		}
	}
	return false
}

func (m *Memory) withResidentLocked(room domain.Room) domain.Room {
	if room.ResidentID == nil {
		room.Resident = nil
		return room
	}
	if r, ok := m.residents[*room.ResidentID]; ok {
		room.Resident = &r
	}
	return room
}
