package yuque

import "fmt"

// errorMessages maps well-known Yuque status codes to fixed human-readable
// descriptions. For these codes the mapped text always wins over whatever
// message the server sent; unknown codes pass the server's message through.
var errorMessages = map[int]string{
	400: "请求参数非法 (Invalid request parameters)",
	401: "Token/Scope 未通过鉴权 (Authentication failed)",
	403: "无操作权限 (Permission denied)",
	404: "实体未找到 (Entity not found)",
	422: "请求参数校验失败 (Validation failed)",
	429: "访问频率超限 (Rate limit exceeded)",
	500: "内部错误 (Internal server error)",
}

// APIError represents a failed Yuque API call. It carries the HTTP status
// code, a resolved human-readable message and the raw error body as parsed
// by the server, so callers can reconstruct the exact remote failure.
//
// Transport-level failures (connection refused, timeout, malformed response)
// are collapsed into an APIError with StatusCode 500 and a
// "HTTP request failed: ..." message.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yuque API error %d: %s", e.StatusCode, e.Message)
}

// transportError wraps a transport-level failure into the synthetic
// status-500 APIError the error taxonomy prescribes.
func transportError(cause error) *APIError {
	return &APIError{
		StatusCode: 500,
		Message:    "HTTP request failed: " + cause.Error(),
		Details:    map[string]any{},
	}
}
