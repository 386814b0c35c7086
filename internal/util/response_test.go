package util

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
	"github.com/fadilmartias/useresume-gateway/internal/response"
)

func TestWriteEnvelopeStatus(t *testing.T) {
	tests := []struct {
		name string
		env  response.Envelope
		want int
	}{
		{"success", response.Success("ok", nil), http.StatusOK},
		{"validation", response.FromError(&errors.ValidationError{}), http.StatusUnprocessableEntity},
		{"api", response.FromError(errors.NewAPIError(http.StatusTooManyRequests, nil)), http.StatusTooManyRequests},
		{"transport", response.FromError(&errors.TransportError{Cause: errors.New("reset")}), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return WriteEnvelope(c, tt.env) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var out map[string]any
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.env.Success, out["success"])
		})
	}
}

func TestErrorResponseDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusNotFound, Message: "unknown tool"}, errors.New("lookup failed"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out OrderedErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, "unknown tool", out.Error)
	assert.Equal(t, response.TypeUnknown, out.Type)
	assert.Equal(t, "lookup failed", out.DevMessage)
	assert.Empty(t, out.Trace)
}
