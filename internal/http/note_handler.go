package httpapi

import (
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/repository"
)

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.repo.ListNotes(r.Context(), repository.NoteQuery{
		ResidentID: optionalInt(r, "resident_id"),
		Category:   q.Get("category"),
		Urgency:    q.Get("urgency"),
		IsResolved: optionalBool(r, "is_resolved"),
	})
	respond(w, items, err)
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	n, err := h.repo.GetNote(r.Context(), id)
	respond(w, n, err)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var in domain.NoteInput
	if !decode(w, r, &in) {
		return
	}
	n, err := h.repo.CreateNote(r.Context(), in)
	respondCreated(w, n, err)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var in domain.NoteInput
	if !decode(w, r, &in) {
		return
	}
	n, err := h.repo.UpdateNote(r.Context(), id, in)
	respond(w, n, err)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	respondEmpty(w, h.repo.DeleteNote(r.Context(), id))
}

func (h *Handler) ResolveNote(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var body struct {
		ResolvedBy *int `json:"resolved_by"`
	}
	if !decode(w, r, &body) {
		return
	}
	n, err := h.repo.ResolveNote(r.Context(), id, body.ResolvedBy)
	respond(w, n, err)
}

func (h *Handler) UnresolveNote(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	n, err := h.repo.UnresolveNote(r.Context(), id)
	respond(w, n, err)
}

func (h *Handler) AcknowledgeNote(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	respondEmpty(w, h.repo.AcknowledgeNote(r.Context(), id))
}

func (h *Handler) NoteStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.repo.NoteStats(r.Context())
	respond(w, st, err)
}
