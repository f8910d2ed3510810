package repository

import (
	"time"

	"syntheo-client/internal/domain"
)

// NewSeededMemory 带演示数据的存储；当前用户为 1（admin）
// 演示数据不产生审计日志
func NewSeededMemory(now func() time.Time) *Memory {
	m := NewMemory(now)
	m.seed()
	return m
}

func (m *Memory) seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	at := m.timestamp()

	users := []domain.User{
		{Name: "Petra de Vries", Email: "petra@syntheo.test", Role: "admin"},
		{Name: "Joost Bakker", Email: "joost@syntheo.test", Role: "nurse", Floor: intPtr(1)},
		{Name: "Fatima El Amrani", Email: "fatima@syntheo.test", Role: "caregiver", Floor: intPtr(2)},
		{Name: "Dr. Visser", Email: "visser@syntheo.test", Role: "doctor"},
	}
	for _, u := range users {
		u.ID = m.nextID("user")
		u.IsActive = true
		u.CreatedAt = at
		m.users[u.ID] = u
	}
	m.currentUserID = 1

	residents := []domain.Resident{
		{FirstName: "Maria", LastName: "Jansen", BirthDate: "1938-04-12"},
		{FirstName: "Henk", LastName: "de Boer", BirthDate: "1941-11-03"},
		{FirstName: "Els", LastName: "Smit", BirthDate: "1935-07-21"},
	}
	for _, r := range residents {
		r.ID = m.nextID("resident")
		r.CreatedAt, r.UpdatedAt = at, at
		m.residents[r.ID] = r
	}

	rooms := []domain.Room{
		{Floor: 1, RoomNumber: "1.01", ResidentID: intPtr(1)},
		{Floor: 1, RoomNumber: "1.02", ResidentID: intPtr(2)},
		{Floor: 2, RoomNumber: "2.01", ResidentID: intPtr(3)},
		{Floor: 2, RoomNumber: "2.02"},
	}
	for _, r := range rooms {
		r.ID = m.nextID("room")
		m.rooms[r.ID] = r
	}

	d := domain.Diet{ID: m.nextID("diet"), ResidentID: 1, DietType: "diabetic", Description: "Suikerarm"}
	m.diets[d.ResidentID] = d

	for i, dagdeel := range []string{"morning", "afternoon", "evening", "night"} {
		s := domain.MedicationSchedule{
			ID:                   m.nextID("schedule"),
			ResidentMedicationID: 1,
			Dagdeel:              dagdeel,
			Time:                 []string{"08:00", "13:00", "18:00", "22:00"}[i],
		}
		m.schedules[s.ID] = s
	}

	rounds := []domain.MedicationRound{
		{ResidentID: 1, ResidentMedicationID: 1, ScheduleID: intPtr(1), Status: "given", AdministeredAt: at, AdministeredBy: intPtr(2)},
		{ResidentID: 1, ResidentMedicationID: 1, ScheduleID: intPtr(2), Status: "delayed"},
	}
	for _, r := range rounds {
		r.ID = m.nextID("round")
		r.ScheduledAt = at
		m.rounds[r.ID] = r
	}

	notes := []domain.Note{
		{ResidentID: 1, AuthorID: intPtr(2), Category: "medical", Urgency: "high", Content: "Bloedsuiker verhoogd na ontbijt"},
		{ResidentID: 2, AuthorID: intPtr(3), Category: "fall", Urgency: "critical", Content: "Gevallen in badkamer, geen letsel zichtbaar"},
		{ResidentID: 3, AuthorID: intPtr(3), Category: "nutrition", Urgency: "low", Content: "Eet goed", IsResolved: true, ResolvedBy: intPtr(2), ResolvedAt: at},
	}
	for _, n := range notes {
		n.ID = m.nextID("note")
		n.CreatedAt = at
		m.notes[n.ID] = n
	}

	a := domain.Announcement{
		ID:        m.nextID("announcement"),
		Title:     "Teamoverleg",
		Message:   "Donderdag om 14:00 in de huiskamer.",
		AuthorID:  1,
		CreatedAt: at,
		Recipients: []domain.AnnouncementRecipient{
			{UserID: 2}, {UserID: 3}, {UserID: 4},
		},
	}
	m.announcements[a.ID] = a

	cr := domain.ChangeRequest{
		ID:          m.nextID("change_request"),
		ResidentID:  2,
		RequestedBy: intPtr(3),
		RawStatus:   string(domain.ChangeRequestPending),
		Reason:      "Spelfout in achternaam",
		Fields:      []domain.FieldChange{{Field: "last_name", OldValue: "de Boer", NewValue: "de Boers"}},
		CreatedAt:   at,
	}
	m.changeRequests[cr.ID] = cr
}
