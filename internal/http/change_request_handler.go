package httpapi

import (
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/repository"
)

func (h *Handler) ListChangeRequests(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListChangeRequests(r.Context(), repository.ChangeRequestQuery{
		Status:     r.URL.Query().Get("status"),
		ResidentID: optionalInt(r, "resident_id"),
	})
	respond(w, items, err)
}

func (h *Handler) GetChangeRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	cr, err := h.repo.GetChangeRequest(r.Context(), id)
	respond(w, cr, err)
}

func (h *Handler) CreateChangeRequest(w http.ResponseWriter, r *http.Request) {
	var in domain.ChangeRequestInput
	if !decode(w, r, &in) {
		return
	}
	cr, err := h.repo.CreateChangeRequest(r.Context(), in)
	respondCreated(w, cr, err)
}

// ApproveChangeRequest 409：请求已处理
func (h *Handler) ApproveChangeRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	cr, err := h.repo.ApproveChangeRequest(r.Context(), id)
	respond(w, cr, err)
}

func (h *Handler) RejectChangeRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if !decode(w, r, &body) {
		return
	}
	cr, err := h.repo.RejectChangeRequest(r.Context(), id, body.Reason)
	respond(w, cr, err)
}
