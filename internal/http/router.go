package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"syntheo-client/internal/repository"
)

// APIPrefix 与客户端默认 base URL 对齐
const APIPrefix = "/api"

const idPath = "/{id:[0-9]+}"

// NewRouter 注册开发后端的全部路由
func NewRouter(repo *repository.Memory, logger *zap.Logger) http.Handler {
	h := &Handler{repo: repo, logger: logger}

	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFail(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	api := r.PathPrefix(APIPrefix).Subrouter()

	api.HandleFunc("/residents", h.ListResidents).Methods(http.MethodGet)
	api.HandleFunc("/residents", h.CreateResident).Methods(http.MethodPost)
	api.HandleFunc("/residents"+idPath, h.GetResident).Methods(http.MethodGet)
	api.HandleFunc("/residents"+idPath, h.UpdateResident).Methods(http.MethodPut)
	api.HandleFunc("/residents"+idPath, h.DeleteResident).Methods(http.MethodDelete)
	api.HandleFunc("/residents"+idPath+"/notes", h.ListResidentNotes).Methods(http.MethodGet)
	api.HandleFunc("/residents"+idPath+"/diet", h.GetResidentDiet).Methods(http.MethodGet)
	api.HandleFunc("/diets", h.SetDiet).Methods(http.MethodPost)

	api.HandleFunc("/notes", h.ListNotes).Methods(http.MethodGet)
	api.HandleFunc("/notes", h.CreateNote).Methods(http.MethodPost)
	api.HandleFunc("/notes/stats", h.NoteStats).Methods(http.MethodGet)
	api.HandleFunc("/notes"+idPath, h.GetNote).Methods(http.MethodGet)
	api.HandleFunc("/notes"+idPath, h.UpdateNote).Methods(http.MethodPut)
	api.HandleFunc("/notes"+idPath, h.DeleteNote).Methods(http.MethodDelete)
	api.HandleFunc("/notes"+idPath+"/resolve", h.ResolveNote).Methods(http.MethodPut)
	api.HandleFunc("/notes"+idPath+"/unresolve", h.UnresolveNote).Methods(http.MethodPut)
	api.HandleFunc("/notes"+idPath+"/acknowledge", h.AcknowledgeNote).Methods(http.MethodPost)

	api.HandleFunc("/rooms", h.ListRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms", h.CreateRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms"+idPath, h.GetRoom).Methods(http.MethodGet)
	api.HandleFunc("/rooms"+idPath, h.UpdateRoom).Methods(http.MethodPut)
	api.HandleFunc("/rooms"+idPath, h.DeleteRoom).Methods(http.MethodDelete)
	api.HandleFunc("/rooms"+idPath+"/link-resident", h.LinkResident).Methods(http.MethodPost)
	api.HandleFunc("/rooms"+idPath+"/unlink-resident", h.UnlinkResident).Methods(http.MethodPost)

	api.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/me", h.CurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/users"+idPath, h.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users"+idPath, h.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users"+idPath, h.DeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/users"+idPath+"/activate", h.ActivateUser).Methods(http.MethodPut)
	api.HandleFunc("/users"+idPath+"/deactivate", h.DeactivateUser).Methods(http.MethodPut)

	api.HandleFunc("/medication-rounds", h.ListRounds).Methods(http.MethodGet)
	api.HandleFunc("/medication-rounds", h.CreateRound).Methods(http.MethodPost)
	api.HandleFunc("/medication-rounds/bulk", h.CreateRoundsBulk).Methods(http.MethodPost)
	api.HandleFunc("/medication-rounds/stats", h.RoundStats).Methods(http.MethodGet)
	api.HandleFunc("/medication-rounds"+idPath, h.UpdateRound).Methods(http.MethodPut)

	api.HandleFunc("/announcements", h.ListAnnouncements).Methods(http.MethodGet)
	api.HandleFunc("/announcements", h.CreateAnnouncement).Methods(http.MethodPost)
	api.HandleFunc("/announcements"+idPath, h.GetAnnouncement).Methods(http.MethodGet)
	api.HandleFunc("/announcements"+idPath, h.DeleteAnnouncement).Methods(http.MethodDelete)
	api.HandleFunc("/announcements"+idPath+"/read", h.MarkAnnouncementRead).Methods(http.MethodPut)

	api.HandleFunc("/change-requests", h.ListChangeRequests).Methods(http.MethodGet)
	api.HandleFunc("/change-requests", h.CreateChangeRequest).Methods(http.MethodPost)
	api.HandleFunc("/change-requests"+idPath, h.GetChangeRequest).Methods(http.MethodGet)
	api.HandleFunc("/change-requests"+idPath+"/approve", h.ApproveChangeRequest).Methods(http.MethodPut)
	api.HandleFunc("/change-requests"+idPath+"/reject", h.RejectChangeRequest).Methods(http.MethodPut)

	api.HandleFunc("/audit-logs", h.ListAuditLogs).Methods(http.MethodGet)

	return r
}

// statusRecorder 记录响应状态码用于日志
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger 透传或生成 X-Request-ID，并记录每个请求
func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", requestID),
			)
		})
	}
}
