package repository

import (
	"context"
	"fmt"

	"syntheo-client/internal/domain"
)

// ChangeRequestQuery 变更请求过滤
type ChangeRequestQuery struct {
	Status     string
	ResidentID *int
}

func (m *Memory) ListChangeRequests(_ context.Context, q ChangeRequestQuery) ([]domain.ChangeRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []domain.ChangeRequest{}
	for _, id := range sortedKeys(m.changeRequests) {
		cr := m.changeRequests[id]
		if q.Status != "" && cr.RawStatus != q.Status {
			continue
		}
		if q.ResidentID != nil && cr.ResidentID != *q.ResidentID {
			continue
		}
		out = append(out, m.changeRequestDetailLocked(cr))
	}
	return out, nil
}

func (m *Memory) GetChangeRequest(_ context.Context, id int) (domain.ChangeRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cr, ok := m.changeRequests[id]
	if !ok {
		return domain.ChangeRequest{}, ErrNotFound
	}
	return m.changeRequestDetailLocked(cr), nil
}

// CreateChangeRequest 只接受可修改的住户字段
func (m *Memory) CreateChangeRequest(_ context.Context, in domain.ChangeRequestInput) (domain.ChangeRequest, error) {
	if len(in.Fields) == 0 {
		return domain.ChangeRequest{}, ErrInvalid
	}
	for _, f := range in.Fields {
		if _, ok := residentFields[f.Field]; !ok {
			return domain.ChangeRequest{}, fmt.Errorf("%w: field %q", ErrInvalid, f.Field)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.residents[in.ResidentID]; !ok {
		return domain.ChangeRequest{}, ErrNotFound
	}
	cr := domain.ChangeRequest{
		ID:          m.nextID("change_request"),
		ResidentID:  in.ResidentID,
		RequestedBy: in.RequestedBy,
		RawStatus:   string(domain.ChangeRequestPending),
		Reason:      in.Reason,
		Fields:      in.Fields,
		CreatedAt:   m.timestamp(),
	}
	if cr.RequestedBy == nil && m.currentUserID != 0 {
		cr.RequestedBy = intPtr(m.currentUserID)
	}
	m.changeRequests[cr.ID] = cr
	m.record("created", EntityChangeRequest, cr.ID, map[string]int{"resident_id": cr.ResidentID})
	return m.changeRequestDetailLocked(cr), nil
}

// ApproveChangeRequest 把字段修改应用到住户；只能处理 pending 的请求
func (m *Memory) ApproveChangeRequest(_ context.Context, id int) (domain.ChangeRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cr, err := m.pendingLocked(id)
	if err != nil {
		return domain.ChangeRequest{}, err
	}
	res, ok := m.residents[cr.ResidentID]
	if !ok {
		return domain.ChangeRequest{}, ErrNotFound
	}
	for _, f := range cr.Fields {
		if set, ok := residentFields[f.Field]; ok {
			set(&res, fmt.Sprint(f.NewValue))
		}
	}
	res.UpdatedAt = m.timestamp()
	m.residents[res.ID] = res

	m.review(&cr, domain.ChangeRequestApproved)
	m.record("approved", EntityChangeRequest, id, nil)
	return m.changeRequestDetailLocked(cr), nil
}

func (m *Memory) RejectChangeRequest(_ context.Context, id int, reason string) (domain.ChangeRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cr, err := m.pendingLocked(id)
	if err != nil {
		return domain.ChangeRequest{}, err
	}
	if reason != "" {
		cr.Reason = reason
	}
	m.review(&cr, domain.ChangeRequestRejected)
	m.record("rejected", EntityChangeRequest, id, map[string]string{"reason": reason})
	return m.changeRequestDetailLocked(cr), nil
}

func (m *Memory) pendingLocked(id int) (domain.ChangeRequest, error) {
	cr, ok := m.changeRequests[id]
	if !ok {
		return domain.ChangeRequest{}, ErrNotFound
	}
	if cr.RawStatus != string(domain.ChangeRequestPending) {
		return domain.ChangeRequest{}, ErrConflict
	}
	return cr, nil
}

func (m *Memory) review(cr *domain.ChangeRequest, status domain.ChangeRequestStatus) {
	cr.RawStatus = string(status)
	cr.ReviewedAt = m.timestamp()
	if m.currentUserID != 0 {
		cr.ReviewedBy = intPtr(m.currentUserID)
	}
	m.changeRequests[cr.ID] = *cr
}

func (m *Memory) changeRequestDetailLocked(cr domain.ChangeRequest) domain.ChangeRequest {
	if r, ok := m.residents[cr.ResidentID]; ok {
		cr.Resident = &r
	}
	if cr.RequestedBy != nil {
		if u, ok := m.users[*cr.RequestedBy]; ok {
			cr.Requester = &u
		}
	}
	return cr
}

// residentFields 可通过变更请求修改的住户字段
var residentFields = map[string]func(*domain.Resident, string){
	"first_name": func(r *domain.Resident, v string) { r.FirstName = v },
	"last_name":  func(r *domain.Resident, v string) { r.LastName = v },
	"birth_date": func(r *domain.Resident, v string) { r.BirthDate = v },
	"photo_url":  func(r *domain.Resident, v string) { r.PhotoURL = v },
}
