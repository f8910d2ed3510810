package httpapi

import (
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/repository"
)

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.repo.ListRounds(r.Context(), repository.RoundQuery{
		Date:       q.Get("date"),
		Dagdeel:    q.Get("dagdeel"),
		ResidentID: optionalInt(r, "resident_id"),
		Status:     q.Get("status"),
	})
	respond(w, items, err)
}

func (h *Handler) CreateRound(w http.ResponseWriter, r *http.Request) {
	var in domain.RoundInput
	if !decode(w, r, &in) {
		return
	}
	round, err := h.repo.CreateRound(r.Context(), in)
	respondCreated(w, round, err)
}

// CreateRoundsBulk body: {"rounds": [...]}；全部成功或全部失败
func (h *Handler) CreateRoundsBulk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rounds []domain.RoundInput `json:"rounds"`
	}
	if !decode(w, r, &body) {
		return
	}
	items, err := h.repo.CreateRounds(r.Context(), body.Rounds)
	respondCreated(w, items, err)
}

func (h *Handler) UpdateRound(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var in domain.RoundInput
	if !decode(w, r, &in) {
		return
	}
	round, err := h.repo.UpdateRound(r.Context(), id, in)
	respond(w, round, err)
}

func (h *Handler) RoundStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.repo.RoundStats(r.Context(), r.URL.Query().Get("date"))
	respond(w, st, err)
}
