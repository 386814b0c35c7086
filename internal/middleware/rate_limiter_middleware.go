package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
	"github.com/fadilmartias/useresume-gateway/internal/response"
)

func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			env := response.Envelope{
				Success: false,
				Error:   "Too many requests. Please wait before trying again.",
				Type:    response.TypeRateLimited,
				Kind:    errors.KindRateLimited,
			}
			return c.Status(env.HTTPStatus()).JSON(env)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
