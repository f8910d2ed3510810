package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/locale"
)

// ---- 药品库 ----

// ListMedications 药品库列表
func (c *Client) ListMedications(ctx context.Context, search string) ([]domain.Medication, error) {
	q := newQuery().str("search", search)
	return fetchList[domain.Medication](ctx, c, call{method: http.MethodGet, path: "/medications", query: q.values()})
}

// CreateMedication 新增药品
func (c *Client) CreateMedication(ctx context.Context, in domain.MedicationInput) (*domain.Medication, error) {
	if err := c.checkInput("medication", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Medication](ctx, c, call{method: http.MethodPost, path: "/medications", body: in})
}

// UpdateMedication 更新药品
func (c *Client) UpdateMedication(ctx context.Context, id int, in domain.MedicationInput) (*domain.Medication, error) {
	if err := c.checkInput("medication", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Medication](ctx, c, call{method: http.MethodPut, path: "/medications/{id}", pathParams: idParam(id), body: in})
}

// DeleteMedication 删除药品
func (c *Client) DeleteMedication(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/medications/{id}", pathParams: idParam(id)})
}

// ---- 住户用药 ----

// ListResidentMedications 某住户的用药
func (c *Client) ListResidentMedications(ctx context.Context, residentID int) ([]domain.ResidentMedication, error) {
	items, err := fetchList[domain.ResidentMedication](ctx, c, call{
		method: http.MethodGet, path: "/residents/{id}/medications", pathParams: idParam(residentID),
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeResidentMedication(&items[i])
	}
	return items, nil
}

// CreateResidentMedication 为住户添加用药
func (c *Client) CreateResidentMedication(ctx context.Context, in domain.ResidentMedicationInput) (*domain.ResidentMedication, error) {
	if err := c.checkInput("resident medication", in); err != nil {
		return nil, err
	}
	return c.residentMedicationCall(ctx, call{method: http.MethodPost, path: "/resident-medications", body: in})
}

// UpdateResidentMedication 更新住户用药
func (c *Client) UpdateResidentMedication(ctx context.Context, id int, in domain.ResidentMedicationInput) (*domain.ResidentMedication, error) {
	if err := c.checkInput("resident medication", in); err != nil {
		return nil, err
	}
	return c.residentMedicationCall(ctx, call{method: http.MethodPut, path: "/resident-medications/{id}", pathParams: idParam(id), body: in})
}

// DeleteResidentMedication 删除住户用药
func (c *Client) DeleteResidentMedication(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/resident-medications/{id}", pathParams: idParam(id)})
}

func (c *Client) residentMedicationCall(ctx context.Context, cl call) (*domain.ResidentMedication, error) {
	rm, err := fetchOne[domain.ResidentMedication](ctx, c, cl)
	if err != nil {
		return nil, err
	}
	localizeResidentMedication(rm)
	return rm, nil
}

// ---- 用药时间表 ----

// ListSchedules 某条住户用药的时间表
func (c *Client) ListSchedules(ctx context.Context, residentMedicationID int) ([]domain.MedicationSchedule, error) {
	q := newQuery().positive("resident_medication_id", residentMedicationID)
	items, err := fetchList[domain.MedicationSchedule](ctx, c, call{method: http.MethodGet, path: "/medication-schedules", query: q.values()})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeSchedule(&items[i])
	}
	return items, nil
}

// CreateSchedule 新增时间表
func (c *Client) CreateSchedule(ctx context.Context, in domain.ScheduleInput) (*domain.MedicationSchedule, error) {
	if err := c.checkInput("schedule", in); err != nil {
		return nil, err
	}
	return c.scheduleCall(ctx, call{method: http.MethodPost, path: "/medication-schedules", body: scheduleToWire(in)})
}

// UpdateSchedule 更新时间表
func (c *Client) UpdateSchedule(ctx context.Context, id int, in domain.ScheduleInput) (*domain.MedicationSchedule, error) {
	if err := c.checkInput("schedule", in); err != nil {
		return nil, err
	}
	return c.scheduleCall(ctx, call{method: http.MethodPut, path: "/medication-schedules/{id}", pathParams: idParam(id), body: scheduleToWire(in)})
}

// DeleteSchedule 删除时间表
func (c *Client) DeleteSchedule(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/medication-schedules/{id}", pathParams: idParam(id)})
}

func (c *Client) scheduleCall(ctx context.Context, cl call) (*domain.MedicationSchedule, error) {
	s, err := fetchOne[domain.MedicationSchedule](ctx, c, cl)
	if err != nil {
		return nil, err
	}
	localizeSchedule(s)
	return s, nil
}

func scheduleToWire(in domain.ScheduleInput) domain.ScheduleInput {
	in.Dagdeel = locale.Dagdeel.ToBackend(in.Dagdeel)
	return in
}

func localizeSchedule(s *domain.MedicationSchedule) {
	s.Dagdeel = locale.Dagdeel.FromBackend(s.Dagdeel)
}

func localizeResidentMedication(rm *domain.ResidentMedication) {
	for i := range rm.Schedules {
		localizeSchedule(&rm.Schedules[i])
	}
}
