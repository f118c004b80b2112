package webue

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

const maxSnippetBytes = 512

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("webue api status %d: %s", e.StatusCode, e.Message)
	}
	if e.Body != "" {
		return fmt.Sprintf("webue api status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("webue api status %d", e.StatusCode)
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the backend rejected the credentials.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

func checkResponse(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	body := resp.Body()
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Body:       readBodySnippet(body),
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > maxSnippetBytes {
		body = body[:maxSnippetBytes]
		// Drop a rune split by the cut.
		for i := 0; i < utf8.UTFMax-1 && len(body) > 0; i++ {
			r, size := utf8.DecodeLastRune(body)
			if r != utf8.RuneError || size != 1 {
				break
			}
			body = body[:len(body)-1]
		}
	}
	return strings.TrimSpace(string(body))
}
