package httpapi

// Result 与客户端约定的响应信封
// - success: 是否成功
// - data: 资源或列表
// - message: 失败原因（成功时可为空）
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Fail(message string) Result[any] {
	return Result[any]{Success: false, Message: message}
}
