package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"syntheo-client/internal/domain"
)

func TestWriteAuditLogs(t *testing.T) {
	uid, rid := 4, 12
	logs := []domain.AuditLog{
		{
			ID:         1,
			Timestamp:  time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC),
			UserID:     &uid,
			User:       &domain.User{ID: uid, Name: "Petra"},
			Action:     "updated",
			EntityType: "Resident",
			EntityID:   &rid,
			Details:    json.RawMessage(`{"room":"1.02"}`),
		},
		{ID: 2, UserID: &uid, Action: "deleted", EntityType: "Note", Details: json.RawMessage("null")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAuditLogs(&buf, logs))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, auditSheet, f.GetSheetName(f.GetActiveSheetIndex()))

	rows, err := f.GetRows(auditSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, AuditLogHeader, rows[0])
	require.Equal(t, []string{"2026-10-15 08:30:00", "Petra", "updated", "Resident", "12", `{"room":"1.02"}`}, rows[1])
	require.Equal(t, []string{"", "#4", "deleted", "Note"}, rows[2])
}

func TestAuditLogsXLSX_HeaderOnly(t *testing.T) {
	f, err := AuditLogsXLSX(nil)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{auditSheet}, f.GetSheetList())
	rows, err := f.GetRows(auditSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
