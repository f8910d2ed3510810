package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/locale"
)

// roundToWire 状态显示值转换为后端值
func roundToWire(in domain.RoundInput) domain.RoundInput {
	in.Status = locale.RoundStatus.ToBackend(in.Status)
	return in
}

// localizeRound 状态与时段转换为显示值；对已是显示值的输入保持不变
func localizeRound(r *domain.MedicationRound) {
	r.Status = locale.NormalizeRoundStatus(r.Status)
	if r.Schedule != nil {
		localizeSchedule(r.Schedule)
	}
	if r.ResidentMedication != nil {
		localizeResidentMedication(r.ResidentMedication)
	}
}

// ListRounds 给药记录列表
func (c *Client) ListRounds(ctx context.Context, f domain.RoundFilter) ([]domain.MedicationRound, error) {
	q := newQuery().str("date", f.Date).intPtr("resident_id", f.ResidentID)
	if f.Dagdeel != "" {
		q.str("dagdeel", locale.Dagdeel.ToBackend(f.Dagdeel))
	}
	if f.Status != "" {
		q.str("status", locale.RoundStatus.ToBackend(f.Status))
	}
	items, err := fetchList[domain.MedicationRound](ctx, c, call{method: http.MethodGet, path: "/medication-rounds", query: q.values()})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeRound(&items[i])
	}
	return items, nil
}

// CreateRound 登记一次给药
func (c *Client) CreateRound(ctx context.Context, in domain.RoundInput) (*domain.MedicationRound, error) {
	if err := c.checkInput("medication round", in); err != nil {
		return nil, err
	}
	return c.roundCall(ctx, call{method: http.MethodPost, path: "/medication-rounds", body: roundToWire(in)})
}

// CreateRoundsBulk 批量登记
func (c *Client) CreateRoundsBulk(ctx context.Context, in []domain.RoundInput) ([]domain.MedicationRound, error) {
	wire := make([]domain.RoundInput, 0, len(in))
	for _, r := range in {
		if err := c.checkInput("medication round", r); err != nil {
			return nil, err
		}
		wire = append(wire, roundToWire(r))
	}
	items, err := fetchList[domain.MedicationRound](ctx, c, call{
		method: http.MethodPost, path: "/medication-rounds/bulk", body: map[string]any{"rounds": wire},
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeRound(&items[i])
	}
	return items, nil
}

// UpdateRound 更新给药记录
func (c *Client) UpdateRound(ctx context.Context, id int, in domain.RoundInput) (*domain.MedicationRound, error) {
	if err := c.checkInput("medication round", in); err != nil {
		return nil, err
	}
	return c.roundCall(ctx, call{method: http.MethodPut, path: "/medication-rounds/{id}", pathParams: idParam(id), body: roundToWire(in)})
}

// RoundStats 某日的给药统计；按状态计数的键转换为显示值
func (c *Client) RoundStats(ctx context.Context, date string) (*domain.RoundStats, error) {
	q := newQuery().str("date", date)
	st, err := fetchOne[domain.RoundStats](ctx, c, call{method: http.MethodGet, path: "/medication-rounds/stats", query: q.values()})
	if err != nil {
		return nil, err
	}
	st.ByStatus = relabel(st.ByStatus, locale.NormalizeRoundStatus)
	return st, nil
}

func (c *Client) roundCall(ctx context.Context, cl call) (*domain.MedicationRound, error) {
	r, err := fetchOne[domain.MedicationRound](ctx, c, cl)
	if err != nil {
		return nil, err
	}
	localizeRound(r)
	return r, nil
}
