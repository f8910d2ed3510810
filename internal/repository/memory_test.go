package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"syntheo-client/internal/domain"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestMemory_LinkResidentKeepsOneRoomPerResident(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	// 住户 1 在房间 1，移到空房间 4
	room, err := m.LinkResident(ctx, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 1, *room.ResidentID)
	require.NotNil(t, room.Resident)

	old, err := m.GetRoom(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, old.ResidentID)

	res, err := m.GetResident(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4, res.Room.ID)
	require.Equal(t, 2, *res.Floor)

	_, err = m.LinkResident(ctx, 2, 1)
	require.ErrorIs(t, err, ErrConflict)

	_, err = m.LinkResident(ctx, 99, 1)
	require.ErrorIs(t, err, ErrNotFound)

	room, err = m.UnlinkResident(ctx, 4)
	require.NoError(t, err)
	require.False(t, room.Occupied())

	rooms, err := m.ListRooms(ctx, nil)
	require.NoError(t, err)
	occupied := map[int]int{}
	for _, r := range rooms {
		if r.ResidentID != nil {
			occupied[*r.ResidentID]++
		}
	}
	for rid, n := range occupied {
		require.Equal(t, 1, n, "resident %d in %d rooms", rid, n)
	}
}

func TestMemory_MutationsAppendAudit(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	page, err := m.ListAuditLogs(ctx, AuditQuery{})
	require.NoError(t, err)
	require.Zero(t, page.Total)

	n, err := m.CreateNote(ctx, domain.NoteInput{ResidentID: 2, Content: "Onrustig"})
	require.NoError(t, err)
	require.Equal(t, "general", n.Category)
	require.Equal(t, "low", n.Urgency)
	require.Equal(t, 1, *n.AuthorID)

	_, err = m.ResolveNote(ctx, n.ID, nil)
	require.NoError(t, err)
	require.NoError(t, m.DeleteNote(ctx, n.ID))

	page, err = m.ListAuditLogs(ctx, AuditQuery{EntityType: EntityNote})
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)
	require.Equal(t, "deleted", page.Items[0].Action)
	require.Equal(t, "Petra de Vries", page.Items[0].User.Name)

	page, err = m.ListAuditLogs(ctx, AuditQuery{EntityType: EntityNote, PerPage: 2, Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "created", page.Items[0].Action)
	require.Equal(t, 2, page.LastPage)

	page, err = m.ListAuditLogs(ctx, AuditQuery{From: "2026-10-16"})
	require.NoError(t, err)
	require.Zero(t, page.Total)
	require.Equal(t, 1, page.LastPage)
}

func TestMemory_AcknowledgeOncePerUser(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	require.NoError(t, m.AcknowledgeNote(ctx, 1))
	require.NoError(t, m.AcknowledgeNote(ctx, 1))
	require.Equal(t, []int{1}, m.AcknowledgedBy(1))

	page, err := m.ListAuditLogs(ctx, AuditQuery{Action: "acknowledged"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	require.ErrorIs(t, m.AcknowledgeNote(ctx, 404), ErrNotFound)
}

func TestMemory_ChangeRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	cr, err := m.ApproveChangeRequest(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "approved", cr.RawStatus)
	require.Equal(t, 1, *cr.ReviewedBy)

	res, err := m.GetResident(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "de Boers", res.LastName)

	_, err = m.RejectChangeRequest(ctx, 1, "te laat")
	require.ErrorIs(t, err, ErrConflict)

	_, err = m.CreateChangeRequest(ctx, domain.ChangeRequestInput{
		ResidentID: 2,
		Fields:     []domain.FieldChange{{Field: "password", NewValue: "x"}},
	})
	require.ErrorIs(t, err, ErrInvalid)

	pending, err := m.ListChangeRequests(ctx, ChangeRequestQuery{Status: "pending"})
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestMemory_CreateRoundsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	before, err := m.ListRounds(ctx, RoundQuery{})
	require.NoError(t, err)

	_, err = m.CreateRounds(ctx, []domain.RoundInput{
		{ResidentID: 1, ResidentMedicationID: 1, Status: "given"},
		{ResidentID: 99, ResidentMedicationID: 1, Status: "given"},
	})
	require.ErrorIs(t, err, ErrNotFound)

	after, err := m.ListRounds(ctx, RoundQuery{})
	require.NoError(t, err)
	require.Len(t, after, len(before))

	created, err := m.CreateRounds(ctx, []domain.RoundInput{
		{ResidentID: 2, ResidentMedicationID: 1, ScheduleID: intPtr(3), Status: "given"},
		{ResidentID: 3, ResidentMedicationID: 1, Status: "refused"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.NotNil(t, created[0].AdministeredAt)
	require.Nil(t, created[1].AdministeredAt)
	require.Equal(t, "evening", created[0].Schedule.Dagdeel)

	evening, err := m.ListRounds(ctx, RoundQuery{Dagdeel: "evening", Date: "2026-10-15"})
	require.NoError(t, err)
	require.Len(t, evening, 1)

	st, err := m.RoundStats(ctx, "2026-10-15")
	require.NoError(t, err)
	require.Equal(t, len(before)+2, st.Total)
	require.Equal(t, 2, st.ByStatus["given"])
}

func TestMemory_AnnouncementRead(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	require.NoError(t, m.MarkAnnouncementRead(ctx, 1, 2))
	require.ErrorIs(t, m.MarkAnnouncementRead(ctx, 1, 1), ErrNotFound)

	a, err := m.GetAnnouncement(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, a.Recipients[0].ReadAt)
	require.Nil(t, a.Recipients[1].ReadAt)
	require.Equal(t, "Petra de Vries", a.Author.Name)

	created, err := m.CreateAnnouncement(ctx, domain.AnnouncementInput{Title: "Brandoefening", Message: "Vrijdag"})
	require.NoError(t, err)
	require.Len(t, created.Recipients, 4)
}

func TestMemory_DeleteResidentFreesRoom(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	require.NoError(t, m.DeleteResident(ctx, 1))
	room, err := m.GetRoom(ctx, 1)
	require.NoError(t, err)
	require.False(t, room.Occupied())

	_, err = m.GetResidentDiet(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Users(t *testing.T) {
	ctx := context.Background()
	m := NewSeededMemory(fixedClock())

	me, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Role("admin"), me.Role)

	_, err = m.CreateUser(ctx, domain.UserInput{Name: "Kopie", Email: "PETRA@syntheo.test", Role: "nurse"})
	require.ErrorIs(t, err, ErrConflict)

	u, err := m.SetUserActive(ctx, 2, false)
	require.NoError(t, err)
	require.False(t, u.IsActive)

	require.ErrorIs(t, m.DeleteUser(ctx, 1), ErrConflict)
}
