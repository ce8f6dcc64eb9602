// Package upstream holds the error type shared by all outbound API clients.
package upstream

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a failed or malformed reply from an upstream API. Message holds
// the upstream-supplied error text when the reply carried a parseable
// envelope; otherwise Error() synthesizes a status-coded message.
type Error struct {
	Name       string // display name, e.g. "Claude"
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s API error: %d", e.Name, e.StatusCode)
}

// maxErrorBody caps how much of an upstream error reply is read.
const maxErrorBody = 1 << 20

// ParseError builds an Error from a non-2xx reply, extracting the
// {"error":{"message":...}} envelope that the vision, search, and
// transcription APIs all share. A missing or malformed envelope leaves
// Message empty so Error() falls back to the status-coded form.
func ParseError(name string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var env struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		msg = env.Error.Message
	}
	return &Error{Name: name, StatusCode: resp.StatusCode, Message: msg}
}
