// Package errors re-exports github.com/cockroachdb/errors and defines the
// error taxonomy of the gateway:
//
//   - ConfigurationError: missing or malformed credential, fatal at startup
//   - ValidationError: local schema violations, the request is never sent
//   - APIError: non-2xx response from the remote service, see Classify
//   - TransportError: network failure before any response arrived
//
// Operation results carry these as a kind discriminator; nothing past the
// facade boundary sees a raw error.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap

	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Sentinels for errors.Is checks. Typed errors below wrap these.
var (
	ErrConfiguration = New("configuration error")
	ErrValidation    = New("validation error")
	ErrAPI           = New("api error")
	ErrTransport     = New("transport error")
)

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	return Is(err, ErrConfiguration)
}
