package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"syntheo-client/internal/apiclient"
	"syntheo-client/internal/domain"
	"syntheo-client/internal/repository"
)

func newTestBackend(t *testing.T) (*apiclient.Client, *repository.Memory) {
	t.Helper()
	clock := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	repo := repository.NewSeededMemory(func() time.Time { return clock })
	srv := httptest.NewServer(NewRouter(repo, zap.NewNop()))
	t.Cleanup(srv.Close)
	return apiclient.New(apiclient.Options{BaseURL: srv.URL + APIPrefix}, zap.NewNop()), repo
}

func TestRouter_EnvelopeShape(t *testing.T) {
	repo := repository.NewSeededMemory(nil)
	srv := httptest.NewServer(NewRouter(repo, zap.NewNop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/residents/404")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, false, body["success"])
	require.Equal(t, "not found", body["message"])
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := httptest.NewServer(NewRouter(repository.NewMemory(nil), zap.NewNop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/nothing-here")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_ResidentsAndDiet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)

	residents, err := c.ListResidents(ctx, domain.ResidentFilter{Search: "jan"})
	require.NoError(t, err)
	require.Len(t, residents, 1)
	require.Equal(t, "Maria Jansen", residents[0].FullName())
	require.Equal(t, "1.01", residents[0].Room.RoomNumber)

	diet, err := c.GetResidentDiet(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "diabetic", diet.DietType)

	diet, err = c.GetResidentDiet(ctx, 2)
	require.NoError(t, err)
	require.Nil(t, diet)
}

func TestRouter_NotesLocalized(t *testing.T) {
	ctx := context.Background()
	c, repo := newTestBackend(t)

	unresolved := false
	notes, err := c.ListNotes(ctx, domain.NoteFilter{IsResolved: &unresolved, Urgency: "Kritiek"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "Valincident", notes[0].Category)
	require.Equal(t, "Kritiek", notes[0].Urgency)

	created, err := c.CreateNote(ctx, domain.NoteInput{ResidentID: 3, Category: "Gedrag", Urgency: "Middel", Content: "Verward"})
	require.NoError(t, err)
	require.Equal(t, "Gedrag", created.Category)

	stored, err := repo.GetNote(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "behavior", stored.Category)
	require.Equal(t, "medium", stored.Urgency)

	resolved, err := c.ResolveNote(ctx, created.ID, nil)
	require.NoError(t, err)
	require.True(t, resolved.IsResolved)

	require.NoError(t, c.AcknowledgeNote(ctx, created.ID))
	require.Equal(t, []int{1}, repo.AcknowledgedBy(created.ID))

	stats, err := c.NoteStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, stats.Total)
	require.Equal(t, 1, stats.ByUrgency["Kritiek"])
}

func TestRouter_LinkResidentConflict(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)

	_, err := c.LinkResident(ctx, 2, 1)
	require.Equal(t, http.StatusConflict, apiclient.StatusCode(err))

	room, err := c.LinkResident(ctx, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 1, *room.ResidentID)

	old, err := c.GetRoom(ctx, 1)
	require.NoError(t, err)
	require.False(t, old.Occupied())
}

func TestRouter_UsersAndRoles(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)

	me, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.RoleBeheerder, me.Role)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)
	require.Equal(t, domain.RoleArts, users[3].Role)

	u, err := c.DeactivateUser(ctx, 3)
	require.NoError(t, err)
	require.False(t, u.IsActive)
}

func TestRouter_RoundsBulk(t *testing.T) {
	ctx := context.Background()
	c, repo := newTestBackend(t)

	rounds, err := c.CreateRoundsBulk(ctx, []domain.RoundInput{
		{ResidentID: 2, ResidentMedicationID: 1, ScheduleID: intRef(1), Status: "Gegeven"},
		{ResidentID: 3, ResidentMedicationID: 1, Status: "Geweigerd"},
	})
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	require.Equal(t, "Gegeven", rounds[0].Status)
	require.Equal(t, "Ochtend", rounds[0].Schedule.Dagdeel)

	stored, err := repo.ListRounds(ctx, repository.RoundQuery{Status: "refused"})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	morning, err := c.ListRounds(ctx, domain.RoundFilter{Date: "2026-10-15", Dagdeel: "Ochtend"})
	require.NoError(t, err)
	require.Len(t, morning, 2)
}

func TestRouter_ChangeRequestsAndAudit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)

	pending, err := c.ListChangeRequests(ctx, domain.ChangeRequestFilter{Status: domain.ChangeRequestPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	cr, err := c.ApproveChangeRequest(ctx, pending[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.ChangeRequestApproved, cr.Status)

	_, err = c.RejectChangeRequest(ctx, pending[0].ID, "dubbel")
	require.Equal(t, http.StatusConflict, apiclient.StatusCode(err))

	page, err := c.ListAuditLogs(ctx, domain.AuditLogFilter{EntityType: repository.EntityChangeRequest})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "approved", page.Items[0].Action)
	require.Equal(t, domain.RoleBeheerder, page.Items[0].User.Role)
}

func TestRouter_AnnouncementRead(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestBackend(t)

	require.NoError(t, c.MarkAnnouncementRead(ctx, 1, 2))

	a, err := c.GetAnnouncement(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, a.Recipients[0].ReadAt)

	err = c.MarkAnnouncementRead(ctx, 1, 1)
	require.True(t, apiclient.IsNotFound(err))
}

func intRef(v int) *int { return &v }
