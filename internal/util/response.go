package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/fadilmartias/useresume-gateway/internal/config"
	"github.com/fadilmartias/useresume-gateway/internal/response"
)

// WriteEnvelope sends an operation result with the HTTP status it maps to.
func WriteEnvelope(c *fiber.Ctx, env response.Envelope) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(env.HTTPStatus()).Send(env.JSON())
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Type    response.ErrorType
	Hints   []string
}

type OrderedErrorResponse struct {
	Success    bool               `json:"success"`
	Error      string             `json:"error"`
	Type       response.ErrorType `json:"type"`
	Hints      []string           `json:"hints,omitempty"`
	DevMessage string             `json:"dev_message,omitempty"`
	Trace      string             `json:"trace,omitempty"`
}

// ErrorResponse reports failures that happen before an operation runs,
// such as an unknown route or tool. Outside production the cause and a
// stack trace are included.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	out := OrderedErrorResponse{
		Success: false,
		Error:   params.Message,
		Type:    params.Type,
		Hints:   params.Hints,
	}
	if out.Type == "" {
		out.Type = response.TypeUnknown
	}
	if !config.LoadAppConfig().IsProduction() && len(errs) > 0 && errs[0] != nil {
		out.DevMessage = errs[0].Error()
		if params.Code == 0 || params.Code >= fiber.StatusInternalServerError {
			out.Trace = string(debug.Stack())
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(out)
}
