package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"syntheo-client/internal/repository"
)

// Handler 开发后端的全部 HTTP 处理函数，共享同一个内存仓储
type Handler struct {
	repo   *repository.Memory
	logger *zap.Logger
}

// withID 解析 {id}，无效时直接返回 400
func withID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := pathID(r)
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid id")
	}
	return id, ok
}

// decode 解析请求体，失败时直接返回 400
func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := readBodyJSON(r, out); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// respond 统一处理 (结果, 错误)
func respond[T any](w http.ResponseWriter, v T, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, v)
}

func respondCreated[T any](w http.ResponseWriter, v T, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, v)
}

func respondEmpty(w http.ResponseWriter, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK[any](w, nil)
}
