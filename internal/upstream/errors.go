package upstream

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NetworkError reports a transport failure before any response arrived.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: upstream unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError reports a non-2xx response. Message comes from the response
// body when it carried a JSON error, otherwise it is synthesized.
type UpstreamError struct {
	Op         string
	StatusCode int
	Message    string
	// Decoded is true when Message was taken from the upstream body.
	Decoded bool
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Title   string `json:"title"`
}

func newUpstreamError(op string, status int, body []byte) *UpstreamError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, m := range []string{eb.Error, eb.Message, eb.Title} {
			if m = strings.TrimSpace(m); m != "" {
				return &UpstreamError{Op: op, StatusCode: status, Message: m, Decoded: true}
			}
		}
	}
	return &UpstreamError{
		Op:         op,
		StatusCode: status,
		Message:    fmt.Sprintf("upstream responded with status %d", status),
	}
}
