package main

import (
	"errors"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fadilmartias/useresume-gateway/internal/config"
	"github.com/fadilmartias/useresume-gateway/internal/domain/fiber/handler"
	"github.com/fadilmartias/useresume-gateway/internal/logging"
	"github.com/fadilmartias/useresume-gateway/internal/metrics"
	"github.com/fadilmartias/useresume-gateway/internal/middleware"
	"github.com/fadilmartias/useresume-gateway/internal/service"
	"github.com/fadilmartias/useresume-gateway/internal/usecase"
	"github.com/fadilmartias/useresume-gateway/internal/util"
)

func main() {
	envErr := godotenv.Load()

	appConfig := config.LoadAppConfig()
	logger := logging.New(appConfig.LogLevel, appConfig.LogFormat, !appConfig.IsProduction())
	if envErr != nil {
		logger.Debug().Msg("no .env file loaded")
	}

	// The credential is checked before the first request can arrive.
	svc, err := service.GetUseResumeService(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("useresume client not configured")
	}
	metrics.MustRegister()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
		},
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	uc := usecase.NewDocumentUsecase(usecase.Fixed(svc), logger)
	handler.NewDocumentHandler(uc, appConfig.RateLimit).RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			logger.Debug().Int("goroutines", runtime.NumGoroutine()).Msg("runtime")
		}
	}()

	logger.Info().Str("port", appConfig.Port).Str("env", appConfig.Env).Msg("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
