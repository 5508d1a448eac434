package service

import "strings"

// FieldError is one pre-flight validation failure, addressed to a specific
// form field so the page can focus it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError means the submission never left the gateway: no network
// call was made. Always recoverable by editing and resubmitting.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, "; ")
}

// First names the first invalid field, for focusing.
func (e *ValidationError) First() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0].Field
}
