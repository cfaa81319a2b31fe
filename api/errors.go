package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a decoded error response from the service. Transport
// failures are never represented as *Error; they surface as wrapped
// errors from the underlying http client.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// decodeError reads an error body into *Error. Bodies that are not
// the usual {"message": ...} shape still yield a usable status-only error.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}
