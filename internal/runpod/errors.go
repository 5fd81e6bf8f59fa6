package runpod

import (
	"errors"
	"fmt"
)

// TimeoutError is returned when the backend did not answer within the configured timeout.
type TimeoutError struct {
	Endpoint string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("runpod: %s timed out: %v", e.Endpoint, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// UnreachableError covers DNS failures, refused and reset connections.
type UnreachableError struct {
	Endpoint string
	Err      error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("runpod: %s unreachable: %v", e.Endpoint, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("runpod: %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("runpod: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// SoftFailureError means the backend answered 2xx but reported a non-success status.
type SoftFailureError struct {
	Message string
}

func (e *SoftFailureError) Error() string {
	if e.Message == "" {
		return "runpod: backend reported failure"
	}
	return "runpod: backend reported failure: " + e.Message
}

// UserMessage turns an adapter error into the text shown in the chat window.
func UserMessage(err error) string {
	var (
		timeoutErr     *TimeoutError
		unreachableErr *UnreachableError
		httpErr        *HTTPError
		softErr        *SoftFailureError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &timeoutErr):
		return "AI 서버 응답 시간이 초과되었습니다."
	case errors.As(err, &httpErr):
		return fmt.Sprintf("AI 서버 오류가 발생했습니다: %d", httpErr.StatusCode)
	case errors.As(err, &unreachableErr):
		return "AI 서버에 연결할 수 없습니다."
	case errors.As(err, &softErr):
		if softErr.Message != "" {
			return softErr.Message
		}
		return "AI 서버 요청이 실패했습니다."
	default:
		return fmt.Sprintf("AI 서버 통신 중 오류가 발생했습니다: %v", err)
	}
}
