package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options 客户端参数
type Options struct {
	BaseURL string
	Token   string

	// 用户列表请求的超时（默认 10s）；其它请求不设超时
	UserListTimeout time.Duration

	// 可选：自定义底层 http.Client（测试中注入）
	HTTPClient *http.Client
}

// Client 后端 REST API 客户端
// 所有响应都是 {success, data, message} 信封；不做任何自动重试
type Client struct {
	http            *resty.Client
	logger          *zap.Logger
	validate        *validator.Validate
	userListTimeout time.Duration
}

// New 创建客户端
func New(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(logger.Sugar())
	if opts.Token != "" {
		rc.SetAuthToken(opts.Token)
	}

	timeout := opts.UserListTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http:            rc,
		logger:          logger,
		validate:        validator.New(),
		userListTimeout: timeout,
	}
}

// envelope 标准响应信封
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// errorBody 错误响应中可能出现的字段
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// call 一次请求的描述
type call struct {
	method     string
	path       string
	pathParams map[string]string
	query      url.Values
	body       any
	timeout    time.Duration
}

// do 发送请求并返回信封中的 data（原始 JSON）
func (c *Client) do(ctx context.Context, cl call) (json.RawMessage, error) {
	if cl.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cl.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if len(cl.pathParams) > 0 {
		req.SetPathParams(cl.pathParams)
	}
	if len(cl.query) > 0 {
		req.SetQueryParamsFromValues(cl.query)
	}
	if cl.method != http.MethodGet && cl.method != http.MethodDelete {
		body := cl.body
		if body == nil {
			body = struct{}{}
		}
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		c.logger.Error("API request failed",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Any("path_params", cl.pathParams),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &NetworkError{Method: cl.method, Path: cl.path, Err: err}
	}

	if !resp.IsSuccess() {
		herr := &HTTPError{
			Method:     cl.method,
			Path:       cl.path,
			StatusCode: resp.StatusCode(),
			Message:    serverMessage(resp.Body()),
		}
		c.logger.Warn("API request returned error status",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Int("status_code", herr.StatusCode),
			zap.String("message", herr.Message),
			zap.String("request_id", requestID),
		)
		return nil, herr
	}

	body := resp.Body()
	if len(body) == 0 {
		// 204 等无响应体的成功响应
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Method: cl.method, Path: cl.path, Err: err}
	}
	if env.Success != nil && !*env.Success {
		return nil, &HTTPError{
			Method:     cl.method,
			Path:       cl.path,
			StatusCode: resp.StatusCode(),
			Message:    env.Message,
		}
	}
	return env.Data, nil
}

// serverMessage 从错误响应体中提取服务端消息（不可解析时为空）
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}

func isNull(data json.RawMessage) bool {
	s := strings.TrimSpace(string(data))
	return s == "" || s == "null"
}

// fetchOne 请求单条资源并解析、校验
func fetchOne[T any](ctx context.Context, c *Client, cl call) (*T, error) {
	data, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}
	if isNull(data) {
		return nil, &ParseError{Method: cl.method, Path: cl.path, Err: ErrEmptyData}
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &ParseError{Method: cl.method, Path: cl.path, Err: err}
	}
	if err := c.check(&out); err != nil {
		return nil, &ParseError{Method: cl.method, Path: cl.path, Err: err}
	}
	return &out, nil
}

// fetchList 请求列表资源；data 缺失时返回空切片而不是 nil
func fetchList[T any](ctx context.Context, c *Client, cl call) ([]T, error) {
	data, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if isNull(data) {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &ParseError{Method: cl.method, Path: cl.path, Err: err}
	}
	if out == nil {
		out = []T{}
	}
	for i := range out {
		if err := c.check(&out[i]); err != nil {
			return nil, &ParseError{Method: cl.method, Path: cl.path, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}
	return out, nil
}

// exec 不关心返回数据的请求（删除、动作路由）
func (c *Client) exec(ctx context.Context, cl call) error {
	_, err := c.do(ctx, cl)
	return err
}

// check 对结构体执行 validate 标签校验；非结构体直接通过
func (c *Client) check(v any) error {
	err := c.validate.Struct(v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*validator.InvalidValidationError); ok {
		return nil
	}
	return err
}

func idParam(id int) map[string]string {
	return map[string]string{"id": fmt.Sprint(id)}
}

// checkInput 发送前校验请求体
func (c *Client) checkInput(kind string, in any) error {
	if err := c.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid %s: %w", kind, err)
	}
	return nil
}
