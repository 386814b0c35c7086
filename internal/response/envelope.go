package response

import (
	"encoding/json"
	"net/http"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

// ErrorType discriminates failure envelopes.
type ErrorType string

const (
	TypeConfiguration ErrorType = "configuration_error"
	TypeValidation    ErrorType = "validation_error"
	TypeAPI           ErrorType = "api_error"
	TypeTransport     ErrorType = "transport_error"
	TypeUnknown       ErrorType = "unknown_error"

	// TypeRateLimited is produced by the HTTP transport itself, never by
	// an upstream failure.
	TypeRateLimited ErrorType = "rate_limited"
)

// Envelope is the caller-facing result of every operation.
type Envelope struct {
	Success    bool                    `json:"success"`
	Data       any                     `json:"data,omitempty"`
	Meta       any                     `json:"meta,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Type       ErrorType               `json:"type,omitempty"`
	Kind       errors.Kind             `json:"kind,omitempty"`
	StatusCode int                     `json:"status_code,omitempty"`
	Details    json.RawMessage         `json:"details,omitempty"`
	Violations []errors.FieldViolation `json:"violations,omitempty"`
	Hints      []string                `json:"hints,omitempty"`
}

func Success(data, meta any) Envelope {
	return Envelope{Success: true, Data: data, Meta: meta}
}

// FromError renders any error as a failure envelope. Unrecognised errors
// become unknown_error with their message.
func FromError(err error) Envelope {
	env := Envelope{Success: false, Error: err.Error(), Type: TypeUnknown}

	var (
		validationErr *errors.ValidationError
		apiErr        *errors.APIError
		transportErr  *errors.TransportError
		configErr     *errors.ConfigurationError
	)
	switch {
	case errors.As(err, &validationErr):
		env.Type = TypeValidation
		env.Error = validationErr.Error()
		env.Violations = validationErr.Violations
	case errors.As(err, &apiErr):
		env.Type = TypeAPI
		env.Error = apiErr.Message
		env.Kind = apiErr.Kind
		env.StatusCode = apiErr.StatusCode
		env.Details = apiErr.Details
	case errors.As(err, &transportErr):
		env.Type = TypeTransport
		env.Error = transportErr.Error()
	case errors.As(err, &configErr):
		env.Type = TypeConfiguration
		env.Error = configErr.Message
		env.Hints = errors.GetAllHints(err)
	}
	return env
}

// HTTPStatus maps an envelope onto the status an HTTP transport replies with.
func (e Envelope) HTTPStatus() int {
	if e.Success {
		return http.StatusOK
	}
	switch e.Type {
	case TypeValidation:
		return http.StatusUnprocessableEntity
	case TypeAPI:
		if e.StatusCode >= 400 && e.StatusCode < 600 {
			return e.StatusCode
		}
		return http.StatusBadGateway
	case TypeTransport:
		return http.StatusBadGateway
	case TypeRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// JSON renders the envelope. Marshalling an Envelope cannot fail for the
// payload types the facades produce.
func (e Envelope) JSON() []byte {
	b, err := json.Marshal(e)
	if err != nil {
		b, _ = json.Marshal(Envelope{Success: false, Error: err.Error(), Type: TypeUnknown})
	}
	return b
}
