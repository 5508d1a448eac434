package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrPayloadTooLarge marks an HTTP 413 from the backend. The upload ceiling
// is enforced server-side; the client only reports it.
var ErrPayloadTooLarge = errors.New("payload too large")

// APIError is a non-2xx backend response. Detail carries the server-supplied
// message when the body was parseable, otherwise it is empty.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend rejected the request (status %d)", e.Status)
	}
	return e.Detail
}

func (c *Client) errorFromResponse(endpoint string, status int, body []byte) error {
	if status == http.StatusRequestEntityTooLarge {
		return ErrPayloadTooLarge
	}

	detail := parseErrorBody(body)
	c.logger.Sugar().Errorf("backend error from %s: status %d, detail %q", endpoint, status, detail)
	return &APIError{Status: status, Detail: detail}
}

// parseErrorBody extracts a readable message from a backend error body.
// The backend answers either {"detail": "..."} or a field-error map like
// {"title": ["This field is required."]}; multiple field errors are
// concatenated. An unparseable body yields "".
func parseErrorBody(body []byte) string {
	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ""
	}

	if detail, ok := decoded["detail"].(string); ok {
		return detail
	}

	fields := make([]string, 0, len(decoded))
	for name := range decoded {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var parts []string
	for _, name := range fields {
		switch v := decoded[name].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s: %s", name, v))
		case []interface{}:
			for _, item := range v {
				if msg, ok := item.(string); ok {
					parts = append(parts, fmt.Sprintf("%s: %s", name, msg))
				}
			}
		}
	}

	return strings.Join(parts, "; ")
}
