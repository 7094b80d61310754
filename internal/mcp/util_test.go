package mcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

func TestTextResult(t *testing.T) {
	result := textResult("hello")

	if len(result.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", result.Content[0])
	}
	if text.Text != "hello" {
		t.Errorf("text = %q, want %q", text.Text, "hello")
	}
	if result.IsError {
		t.Error("IsError = true, want false")
	}
}

func TestToolError_APIError(t *testing.T) {
	apiErr := &yuque.APIError{StatusCode: 404, Message: "实体未找到 (Entity not found)"}

	result, err := toolError(apiErr)
	if err != nil {
		t.Fatalf("toolError() err = %v, want nil for API errors", err)
	}
	if !result.IsError {
		t.Error("IsError = false, want true")
	}
	text := result.Content[0].(*mcp.TextContent).Text
	if text != "✗ Error: 实体未找到 (Entity not found)" {
		t.Errorf("text = %q", text)
	}
}

func TestToolError_WrappedAPIError(t *testing.T) {
	wrapped := fmt.Errorf("fetching: %w", &yuque.APIError{StatusCode: 403, Message: "denied"})

	result, err := toolError(wrapped)
	if err != nil {
		t.Fatalf("toolError() err = %v, want nil for wrapped API errors", err)
	}
	if !result.IsError {
		t.Error("IsError = false, want true")
	}
}

func TestToolError_SystemError(t *testing.T) {
	sysErr := errors.New("something broke")

	result, err := toolError(sysErr)
	if result != nil {
		t.Errorf("result = %+v, want nil for system errors", result)
	}
	if !errors.Is(err, sysErr) {
		t.Errorf("err = %v, want original error", err)
	}
}
