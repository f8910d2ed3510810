package httpapi

import (
	"net/http"

	"syntheo-client/internal/domain"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListUsers(r.Context())
	respond(w, items, err)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	u, err := h.repo.GetUser(r.Context(), id)
	respond(w, u, err)
}

// CurrentUser 未设置当前用户时返回 401
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.repo.CurrentUser(r.Context())
	if err != nil {
		writeFail(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	writeOK(w, u)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserInput
	if !decode(w, r, &in) {
		return
	}
	u, err := h.repo.CreateUser(r.Context(), in)
	respondCreated(w, u, err)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var in domain.UserInput
	if !decode(w, r, &in) {
		return
	}
	u, err := h.repo.UpdateUser(r.Context(), id, in)
	respond(w, u, err)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	respondEmpty(w, h.repo.DeleteUser(r.Context(), id))
}

func (h *Handler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	u, err := h.repo.SetUserActive(r.Context(), id, active)
	respond(w, u, err)
}
