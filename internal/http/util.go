package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"syntheo-client/internal/repository"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK[T any](w http.ResponseWriter, data T) {
	writeJSON(w, http.StatusOK, Ok(data))
}

func writeCreated[T any](w http.ResponseWriter, data T) {
	writeJSON(w, http.StatusCreated, Ok(data))
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Fail(message))
}

// writeError 仓储错误 -> HTTP 状态码
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeFail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrConflict):
		writeFail(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrInvalid):
		writeFail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeFail(w, http.StatusInternalServerError, err.Error())
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// optionalInt 查询参数中的整数；缺失或无效时为 nil
func optionalInt(r *http.Request, key string) *int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}

func optionalBool(r *http.Request, key string) *bool {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// pathID 路由中的 {id}
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil && id > 0
}

func readBodyJSON(r *http.Request, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
