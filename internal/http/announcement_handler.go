package httpapi

import (
	"net/http"

	"syntheo-client/internal/domain"
)

func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListAnnouncements(r.Context())
	respond(w, items, err)
}

func (h *Handler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	a, err := h.repo.GetAnnouncement(r.Context(), id)
	respond(w, a, err)
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in domain.AnnouncementInput
	if !decode(w, r, &in) {
		return
	}
	a, err := h.repo.CreateAnnouncement(r.Context(), in)
	respondCreated(w, a, err)
}

func (h *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	respondEmpty(w, h.repo.DeleteAnnouncement(r.Context(), id))
}

// MarkAnnouncementRead body: {"user_id": n}；缺省为当前用户
func (h *Handler) MarkAnnouncementRead(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var body struct {
		UserID int `json:"user_id"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.UserID == 0 {
		body.UserID = h.repo.CurrentUserID()
	}
	respondEmpty(w, h.repo.MarkAnnouncementRead(r.Context(), id, body.UserID))
}
