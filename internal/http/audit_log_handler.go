package httpapi

import (
	"net/http"

	"syntheo-client/internal/repository"
)

// ListAuditLogs 分页；实体类型参数为 auditable_type
func (h *Handler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.repo.ListAuditLogs(r.Context(), repository.AuditQuery{
		UserID:     optionalInt(r, "user_id"),
		Action:     q.Get("action"),
		EntityType: q.Get("auditable_type"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Page:       parseInt(q.Get("page"), 1),
		PerPage:    parseInt(q.Get("per_page"), 0),
	})
	respond(w, page, err)
}
