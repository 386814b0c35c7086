package handler

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/fadilmartias/useresume-gateway/internal/config"
	"github.com/fadilmartias/useresume-gateway/internal/logging"
	"github.com/fadilmartias/useresume-gateway/internal/middleware"
	"github.com/fadilmartias/useresume-gateway/internal/usecase"
	"github.com/fadilmartias/useresume-gateway/internal/util"
)

type DocumentHandler struct {
	uc    *usecase.DocumentUsecase
	limit config.RateLimitConfig
}

func NewDocumentHandler(uc *usecase.DocumentUsecase, limit config.RateLimitConfig) *DocumentHandler {
	return &DocumentHandler{uc: uc, limit: limit}
}

// RegisterRoutes mounts every operation under /v1. Operations that spend
// credits share one rate limiter.
func (h *DocumentHandler) RegisterRoutes(app *fiber.App) {
	v1 := app.Group("/v1")
	paid := middleware.RateLimiter(h.limit.Max, h.limit.Expiration)

	resume := v1.Group("/resume", paid)
	resume.Post("/create", h.operation(h.uc.CreateResume))
	resume.Post("/parse", h.operation(h.uc.ParseResume))
	resume.Post("/create-tailored", h.operation(h.uc.CreateTailoredResume))

	letter := v1.Group("/cover-letter", paid)
	letter.Post("/create", h.operation(h.uc.CreateCoverLetter))
	letter.Post("/parse", h.operation(h.uc.ParseCoverLetter))
	letter.Post("/create-tailored", h.operation(h.uc.CreateTailoredCoverLetter))

	v1.Get("/runs/:id", h.RunStatus)
	v1.Get("/tools", h.ListTools)
	v1.Post("/tools/:name", paid, h.CallTool)
}

func (h *DocumentHandler) operation(facade usecase.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return util.WriteEnvelope(c, facade(requestContext(c), c.Body()))
	}
}

func (h *DocumentHandler) RunStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	raw, err := json.Marshal(map[string]string{"run_id": id})
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot encode run id"}, err)
	}
	return util.WriteEnvelope(c, h.uc.GetRunStatus(requestContext(c), raw))
}

type toolDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Cost        int             `json:"cost"`
	InputSchema json.RawMessage `json:"input_schema"`
}

func (h *DocumentHandler) ListTools(c *fiber.Ctx) error {
	tools := usecase.Tools()
	out := make([]toolDTO, 0, len(tools))
	for _, t := range tools {
		out = append(out, toolDTO{Name: t.Name, Description: t.Description, Cost: t.Cost, InputSchema: t.InputSchema()})
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}

func (h *DocumentHandler) CallTool(c *fiber.Ctx) error {
	name := c.Params("name")
	tool, ok := usecase.Lookup(name)
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "unknown tool " + name,
			Hints:   usecase.Names(),
		})
	}
	return util.WriteEnvelope(c, tool.Handler(h.uc)(requestContext(c), c.Body()))
}

func requestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if id, ok := c.Locals(middleware.RequestIDKey).(string); ok && id != "" {
		ctx = logging.WithRequestID(ctx, id)
	}
	return ctx
}
