package repository

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"syntheo-client/internal/domain"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid input")
)

// 审计日志中的实体类型
const (
	EntityResident      = "Resident"
	EntityNote          = "Note"
	EntityRoom          = "Room"
	EntityUser          = "User"
	EntityRound         = "MedicationRound"
	EntityAnnouncement  = "Announcement"
	EntityChangeRequest = "ChangeRequest"
	EntityDiet          = "Diet"
)

// Memory 开发用后端的内存存储
// - 所有枚举字段保存后端值（英文 snake_case），与真实后端一致
// - IDs 为自增整数
// - 每次修改追加一条审计日志
type Memory struct {
	mu  sync.RWMutex
	now func() time.Time

	seq map[string]int

	residents      map[int]domain.Resident
	notes          map[int]domain.Note
	rooms          map[int]domain.Room
	users          map[int]domain.User
	rounds         map[int]domain.MedicationRound
	schedules      map[int]domain.MedicationSchedule
	announcements  map[int]domain.Announcement
	changeRequests map[int]domain.ChangeRequest
	diets          map[int]domain.Diet // residentID -> diet
	acks           map[int]map[int]time.Time
	audit          []domain.AuditLog

	currentUserID int
}

// NewMemory 空存储；now 为 nil 时使用 time.Now
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		now:            now,
		seq:            map[string]int{},
		residents:      map[int]domain.Resident{},
		notes:          map[int]domain.Note{},
		rooms:          map[int]domain.Room{},
		users:          map[int]domain.User{},
		rounds:         map[int]domain.MedicationRound{},
		schedules:      map[int]domain.MedicationSchedule{},
		announcements:  map[int]domain.Announcement{},
		changeRequests: map[int]domain.ChangeRequest{},
		diets:          map[int]domain.Diet{},
		acks:           map[int]map[int]time.Time{},
	}
}

// CurrentUserID /users/me 返回的用户，同时作为审计日志的操作人
func (m *Memory) CurrentUserID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentUserID
}

func (m *Memory) SetCurrentUserID(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentUserID = id
}

func (m *Memory) nextID(kind string) int {
	m.seq[kind]++
	return m.seq[kind]
}

func (m *Memory) timestamp() *time.Time {
	t := m.now().UTC()
	return &t
}

// record 追加审计日志；调用方持有写锁
func (m *Memory) record(action, entityType string, entityID int, details any) {
	entry := domain.AuditLog{
		ID:         m.nextID("audit"),
		Timestamp:  m.now().UTC(),
		Action:     action,
		EntityType: entityType,
		EntityID:   &entityID,
	}
	if m.currentUserID != 0 {
		uid := m.currentUserID
		entry.UserID = &uid
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = raw
		}
	}
	m.audit = append(m.audit, entry)
}

// sortedKeys 升序 ID
func sortedKeys[V any](in map[int]V) []int {
	keys := make([]int, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func intPtr(v int) *int { return &v }
