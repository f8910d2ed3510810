package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	httpapi "syntheo-client/internal/http"
	"syntheo-client/internal/repository"
)

func setupBackend(t *testing.T) *repository.Memory {
	t.Helper()
	repo := repository.NewSeededMemory(nil)
	srv := httptest.NewServer(httpapi.NewRouter(repo, zap.NewNop()))
	t.Cleanup(srv.Close)

	t.Setenv("API_BASE_URL", srv.URL+httpapi.APIPrefix)
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("STORE_PATH", filepath.Join(t.TempDir(), "state.json"))
	t.Setenv("LOG_LEVEL", "error")
	return repo
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestCLI_RoleSelectionPersistsAndGuards(t *testing.T) {
	setupBackend(t)

	run(t, "role", "select", "Verpleegster")
	require.Equal(t, "Verpleegster\n", run(t, "role", "show"))

	var d map[string]string
	require.NoError(t, json.Unmarshal([]byte(run(t, "guard", "users")), &d))
	require.Equal(t, "redirect", d["outcome"])
	require.Equal(t, "/verpleging/dashboard", d["redirect"])

	require.NoError(t, json.Unmarshal([]byte(run(t, "guard", "notes")), &d))
	require.Equal(t, "allow", d["outcome"])

	run(t, "role", "clear")
	require.Equal(t, "(none)\n", run(t, "role", "show"))

	require.NoError(t, json.Unmarshal([]byte(run(t, "guard", "notes")), &d))
	require.Equal(t, "/select-role", d["redirect"])
}

func TestCLI_AckMergesIntoNotes(t *testing.T) {
	repo := setupBackend(t)

	var ids []int
	require.NoError(t, json.Unmarshal([]byte(run(t, "ack", "2", "1")), &ids))
	require.Equal(t, []int{1, 2}, ids)
	require.Equal(t, []int{1}, repo.AcknowledgedBy(2))

	var notes []struct {
		ID      int    `json:"id"`
		Urgency string `json:"urgency"`
	}
	require.NoError(t, json.Unmarshal([]byte(run(t, "notes", "--unresolved")), &notes))
	require.Len(t, notes, 2)
	require.Equal(t, "Kritiek", notes[0].Urgency)

	require.Empty(t, run(t, "ack", "--clear"))
	require.NoError(t, json.Unmarshal([]byte(run(t, "ack")), &ids))
	require.Empty(t, ids)
}

func TestCLI_AuditLogsExport(t *testing.T) {
	setupBackend(t)

	run(t, "role", "select", "Beheerder")
	run(t, "ack", "1")

	path := filepath.Join(t.TempDir(), "audit.xlsx")
	require.Contains(t, run(t, "audit-logs", "--xlsx", path), "wrote 1 audit logs")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Audit log")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "acknowledged", rows[1][2])
}
