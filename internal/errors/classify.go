package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind discriminates remote API failures.
type Kind string

const (
	KindAuthenticationFailed Kind = "authentication_failed"
	KindValidation           Kind = "validation_error"
	KindInsufficientCredits  Kind = "insufficient_credits"
	KindRateLimited          Kind = "rate_limited"
	KindServerError          Kind = "server_error"
	KindGeneric              Kind = "generic_api_error"
)

type Classification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Classify maps a non-2xx status and its body to a Kind and a message.
// It is pure and never fails.
func Classify(status int, body []byte) Classification {
	detail := ExtractDetail(body)
	c := Classification{Detail: detail}
	switch status {
	case http.StatusUnauthorized:
		c.Kind = KindAuthenticationFailed
		c.Message = "Authentication failed. Check your API key. " + detail
	case http.StatusBadRequest:
		c.Kind = KindValidation
		c.Message = "Validation error: " + detail
	case http.StatusPaymentRequired:
		c.Kind = KindInsufficientCredits
		c.Message = "Insufficient credits. " + detail
	case http.StatusTooManyRequests:
		c.Kind = KindRateLimited
		c.Message = "Rate limit exceeded. Please wait before making more requests."
	case http.StatusInternalServerError:
		c.Kind = KindServerError
		c.Message = "Server error. The service is temporarily unavailable."
	default:
		c.Kind = KindGeneric
		c.Message = fmt.Sprintf("API error (%d): %s", status, detail)
	}
	c.Message = strings.TrimSpace(c.Message)
	return c
}

// ExtractDetail picks the human-readable part of an error body: a JSON
// string as-is, the "error" field of an object, or else the whole body.
func ExtractDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if !gjson.Valid(trimmed) {
		return trimmed
	}
	res := gjson.Parse(trimmed)
	if res.Type == gjson.String {
		return res.String()
	}
	if res.IsObject() {
		if e := res.Get("error"); e.Exists() {
			if e.Type == gjson.String {
				return e.String()
			}
			return e.Raw
		}
	}
	return res.Raw
}
