package errors

import (
	"encoding/json"
	"strings"
)

// FieldViolation is one failed schema rule. Path uses JSON field names and
// [i] indices, e.g. content.employment[2].title.
type FieldViolation struct {
	Path       string `json:"path"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// NewConfigurationError builds a ConfigurationError carrying a user hint.
func NewConfigurationError(message, hint string) error {
	err := error(&ConfigurationError{Message: message})
	if hint != "" {
		err = WithHint(err, hint)
	}
	return err
}

type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// APIError is a classified non-2xx response. Details holds the raw body,
// as JSON when the body was JSON and as a JSON string otherwise.
type APIError struct {
	StatusCode int
	Kind       Kind
	Message    string
	Details    json.RawMessage
}

func NewAPIError(status int, body []byte) *APIError {
	c := Classify(status, body)
	return &APIError{
		StatusCode: status,
		Kind:       c.Kind,
		Message:    c.Message,
		Details:    rawDetails(body),
	}
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Is(target error) bool { return target == ErrAPI }

// Retryable reports whether the same request may succeed later unchanged.
func (e *APIError) Retryable() bool {
	return e.Kind == KindRateLimited || e.Kind == KindServerError
}

const transportMessage = "Could not reach the resume API. Check your network connection and base URL."

// TransportError wraps a network-level failure. Its message is generic;
// the cause is kept for logging.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string { return transportMessage }

func (e *TransportError) Unwrap() error { return e.Cause }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func rawDetails(body []byte) json.RawMessage {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(trimmed)
	return quoted
}
