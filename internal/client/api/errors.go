package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized matches a TransportError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation matches a TransportError with status 422.
	ErrValidation = errors.New("validation failed")
)

// TransportError is a failed gateway call. Status is 0 when no HTTP response
// was received; Err then holds the network error.
type TransportError struct {
	Method string
	Path   string
	Status int
	// Message is the server-provided "message" field, if any.
	Message string
	// Errors holds server-reported field errors.
	Errors map[string][]string
	Body   []byte
	// Generation is the session generation the request was issued under.
	Generation uint64
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Method, e.Path)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrValidation:
		return e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Status
	}
	return 0
}

// MessageOf returns the server message carried by err, or fallback.
func MessageOf(err error, fallback string) string {
	var te *TransportError
	if errors.As(err, &te) && te.Message != "" {
		return te.Message
	}
	return fallback
}

// FieldErrorsOf returns the server field errors carried by err, or nil.
func FieldErrorsOf(err error) map[string][]string {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Errors
	}
	return nil
}

type errorBody struct {
	Message string                     `json:"message"`
	Error   string                     `json:"error"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

// parseErrorBody extracts message and field errors from a JSON error body.
// Field errors may be a list of strings or a single string per field.
func parseErrorBody(body []byte) (string, map[string][]string) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return "", nil
	}

	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}

	if len(eb.Errors) == 0 {
		return msg, nil
	}

	fields := make(map[string][]string, len(eb.Errors))
	for name, raw := range eb.Errors {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			fields[name] = list
			continue
		}
		var one string
		if err := json.Unmarshal(raw, &one); err == nil {
			fields[name] = []string{one}
		}
	}

	if msg == "" {
		msg = firstFieldError(fields)
	}
	return msg, fields
}

func firstFieldError(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if len(fields[name]) > 0 {
			return fields[name][0]
		}
	}
	return ""
}
