package httpapi

import (
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/repository"
)

func (h *Handler) ListResidents(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListResidents(r.Context(), repository.ResidentQuery{
		Search: r.URL.Query().Get("search"),
		Floor:  optionalInt(r, "floor"),
	})
	respond(w, items, err)
}

func (h *Handler) GetResident(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	res, err := h.repo.GetResident(r.Context(), id)
	respond(w, res, err)
}

func (h *Handler) CreateResident(w http.ResponseWriter, r *http.Request) {
	var in domain.ResidentInput
	if !decode(w, r, &in) {
		return
	}
	res, err := h.repo.CreateResident(r.Context(), in)
	respondCreated(w, res, err)
}

func (h *Handler) UpdateResident(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var in domain.ResidentInput
	if !decode(w, r, &in) {
		return
	}
	res, err := h.repo.UpdateResident(r.Context(), id, in)
	respond(w, res, err)
}

func (h *Handler) DeleteResident(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	respondEmpty(w, h.repo.DeleteResident(r.Context(), id))
}

func (h *Handler) ListResidentNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	if _, err := h.repo.GetResident(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	items, err := h.repo.ListNotes(r.Context(), repository.NoteQuery{ResidentID: &id})
	respond(w, items, err)
}

// GetResidentDiet 没有饮食记录时返回 404
func (h *Handler) GetResidentDiet(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	d, err := h.repo.GetResidentDiet(r.Context(), id)
	respond(w, d, err)
}

func (h *Handler) SetDiet(w http.ResponseWriter, r *http.Request) {
	var in domain.DietInput
	if !decode(w, r, &in) {
		return
	}
	d, err := h.repo.SetResidentDiet(r.Context(), in)
	respondCreated(w, d, err)
}
