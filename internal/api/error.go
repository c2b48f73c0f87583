package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-2xx API response. Detail carries the server's
// human-readable message when the body had one.
type Error struct {
	Status int
	Path   string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
}

// IsValidation reports whether the error is a 4xx rejection whose
// detail is safe to show to the user verbatim.
func (e *Error) IsValidation() bool {
	return e.Status >= 400 && e.Status < 500 && e.Detail != ""
}

// Detail extracts the server validation message from err, falling back
// to the provided generic message. Transport failures and 5xx responses
// always yield the fallback so internals never reach the user.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.IsValidation() {
		return apiErr.Detail
	}
	return fallback
}

const maxErrorBody = 64 << 10

func decodeError(path string, resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Path: path}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else if payload.Message != "" {
			apiErr.Detail = payload.Message
		}
	}
	return apiErr
}
