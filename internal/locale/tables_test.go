package locale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"syntheo-client/internal/domain"
)

func allTables() []*Table {
	return []*Table{Category, Urgency, RoundStatus, Dagdeel, Role, ChangeRequestStatus}
}

func TestTables_RoundTripPerPair(t *testing.T) {
	for _, tbl := range allTables() {
		require.LessOrEqual(t, len(tbl.Pairs()), 6, tbl.Name)
		for _, p := range tbl.Pairs() {
			require.Equal(t, p.Display, tbl.FromBackend(tbl.ToBackend(p.Display)), "%s: %s", tbl.Name, p.Display)
			require.Equal(t, p.Backend, tbl.ToBackend(tbl.FromBackend(p.Backend)), "%s: %s", tbl.Name, p.Backend)
		}
	}
}

func TestTables_ToBackendDefaults(t *testing.T) {
	require.Equal(t, "general", Category.ToBackend("Onbekend"))
	require.Equal(t, "low", Urgency.ToBackend("Spoed"))
	require.Equal(t, "morning", Dagdeel.ToBackend(""))

	// 透传表
	require.Equal(t, "Onbekend", RoundStatus.ToBackend("Onbekend"))
	require.Equal(t, "Stagiair", Role.ToBackend("Stagiair"))
}

func TestTables_ToBackendAcceptsBackendValues(t *testing.T) {
	require.Equal(t, "high", Urgency.ToBackend("high"))
	require.Equal(t, "fall", Category.ToBackend("fall"))
}

func TestTables_FromBackendIdentityFallback(t *testing.T) {
	require.Equal(t, "urgent_care", Category.FromBackend("urgent_care"))
	require.Equal(t, "extreme", Urgency.FromBackend("extreme"))
	require.Equal(t, "Gemist", RoundStatus.FromBackend("Gemist"))
	require.Equal(t, "", Dagdeel.FromBackend(""))
}

func TestNormalizeRoundStatus(t *testing.T) {
	require.Equal(t, "Gegeven", NormalizeRoundStatus("given"))
	require.Equal(t, "Gegeven", NormalizeRoundStatus("GIVEN"))
	require.Equal(t, "Gemist", NormalizeRoundStatus("Gemist"))
	require.Equal(t, "Uitgesteld", NormalizeRoundStatus(NormalizeRoundStatus("delayed")))
	require.Equal(t, "pending", NormalizeRoundStatus("pending"))
}

func TestNormalizeChangeRequestStatus(t *testing.T) {
	cases := map[string]domain.ChangeRequestStatus{
		"approved":      domain.ChangeRequestApproved,
		"APPROVED":      domain.ChangeRequestApproved,
		"Goedgekeurd":   domain.ChangeRequestApproved,
		"goedgekeurd ":  domain.ChangeRequestApproved,
		"rejected":      domain.ChangeRequestRejected,
		"Afgekeurd":     domain.ChangeRequestRejected,
		"afgewezen":     domain.ChangeRequestRejected,
		"pending":       domain.ChangeRequestPending,
		"In afwachting": domain.ChangeRequestPending,
		"":              domain.ChangeRequestPending,
		"unknown":       domain.ChangeRequestPending,
	}
	for raw, want := range cases {
		require.Equal(t, want, NormalizeChangeRequestStatus(raw), raw)
	}
}

func TestRoleMapping(t *testing.T) {
	require.Equal(t, domain.RoleVerpleegster, RoleFromBackend("nurse"))
	require.Equal(t, domain.RoleBeheerder, RoleFromBackend("Admin"))
	require.Equal(t, domain.RoleArts, RoleFromBackend("Arts"))
	require.Equal(t, domain.Role("intern"), RoleFromBackend("intern"))
	require.Equal(t, "caregiver", RoleToBackend(domain.RoleVerzorgende))
	for _, r := range domain.Roles() {
		require.Equal(t, r, RoleFromBackend(RoleToBackend(r)))
	}
}

func TestUrgencyRank(t *testing.T) {
	require.Greater(t, UrgencyRank("Hoog"), UrgencyRank("Middel"))
	require.Greater(t, UrgencyRank("critical"), UrgencyRank("high"))
	// 未知显示值按默认 low 处理
	require.Equal(t, UrgencyRank("low"), UrgencyRank("???"))
	require.Zero(t, UrgencyRank(""))
	require.Greater(t, UrgencyRank("Laag"), UrgencyRank(""))
}
