package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	mcphandler "github.com/fadilmartias/useresume-gateway/internal/domain/mcp/handler"
	"github.com/fadilmartias/useresume-gateway/internal/metrics"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the tools over MCP stdio",
		Long: `Serve every useresume tool over the Model Context Protocol on stdin/stdout.

Logs go to stderr; stdout carries only protocol messages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.usecase()
			if err != nil {
				return err
			}
			if metricsAddr != "" {
				serveMetrics(opts, metricsAddr)
			}
			return mcphandler.NewToolServer(uc, opts.logger).Serve()
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Expose prometheus metrics on this address, e.g. :9090")
	return cmd
}

func serveMetrics(opts *rootOptions, addr string) {
	metrics.MustRegister()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	go func() {
		if err := app.Listen(addr); err != nil {
			opts.logger.Error().Err(err).Str("addr", addr).Msg("metrics listener stopped")
		}
	}()
	opts.logger.Info().Str("addr", addr).Msg("metrics listening")
}
