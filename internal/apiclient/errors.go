package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError 传输层失败（DNS、连接拒绝、取消、超时），原始错误透传
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError 非 2xx 响应；Message 来自响应体中的 message/error 字段（可解析时）
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// ParseError 响应体不是合法 JSON，或不符合预期结构/校验规则
type ParseError struct {
	Method string
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %s: invalid response: %v", e.Method, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrEmptyData 单条资源接口返回的 data 为空
var ErrEmptyData = errors.New("response envelope has no data")

// StatusCode 返回 HTTPError 的状态码；其它错误返回 0
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// IsNotFound 是否为 404
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsNetwork 是否为传输层错误
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
