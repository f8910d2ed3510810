package httpapi

import (
	"net/http"

	"syntheo-client/internal/domain"
)

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListRooms(r.Context(), optionalInt(r, "floor"))
	respond(w, items, err)
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	room, err := h.repo.GetRoom(r.Context(), id)
	respond(w, room, err)
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var in domain.RoomInput
	if !decode(w, r, &in) {
		return
	}
	room, err := h.repo.CreateRoom(r.Context(), in)
	respondCreated(w, room, err)
}

func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var in domain.RoomInput
	if !decode(w, r, &in) {
		return
	}
	room, err := h.repo.UpdateRoom(r.Context(), id, in)
	respond(w, room, err)
}

func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	respondEmpty(w, h.repo.DeleteRoom(r.Context(), id))
}

// LinkResident 409：房间已被其他住户占用
func (h *Handler) LinkResident(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	var body struct {
		ResidentID int `json:"resident_id"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.ResidentID <= 0 {
		writeFail(w, http.StatusUnprocessableEntity, "resident_id is required")
		return
	}
	room, err := h.repo.LinkResident(r.Context(), id, body.ResidentID)
	respond(w, room, err)
}

func (h *Handler) UnlinkResident(w http.ResponseWriter, r *http.Request) {
	id, ok := withID(w, r)
	if !ok {
		return
	}
	room, err := h.repo.UnlinkResident(r.Context(), id)
	respond(w, room, err)
}
