package commands

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fadilmartias/useresume-gateway/internal/config"
	"github.com/fadilmartias/useresume-gateway/internal/logging"
	"github.com/fadilmartias/useresume-gateway/internal/service"
	"github.com/fadilmartias/useresume-gateway/internal/usecase"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logger     *zerolog.Logger
}

// NewRootCmd builds the useresume command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "useresume",
		Short: "Resume and cover letter generation through the useresume API",
		Long: `useresume - generate, tailor and parse resumes and cover letters.

Configuration sources (in order of precedence):
1. Environment variables (RESUME_API_KEY, RESUME_API_BASE_URL, LOG_LEVEL...)
2. .env in the working directory
3. YAML file passed with --config

Examples:
  useresume mcp                          # Serve every tool over MCP stdio
  useresume tools --schema               # Show tools with their input schemas
  useresume call create_resume -i r.json # Run one tool with a JSON payload
  useresume run run_123                  # Check a run
  useresume encode resume.pdf            # Base64 a local document for parsing`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if opts.configPath != "" {
				if err := config.ApplyFile(opts.configPath); err != nil {
					return err
				}
			}
			app := config.LoadAppConfig()
			level := app.LogLevel
			if opts.logLevel != "" {
				level = opts.logLevel
			}
			opts.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level, app.LogFormat, false)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override LOG_LEVEL (trace, debug, info, warn, error)")

	root.AddCommand(
		newMCPCmd(opts),
		newToolsCmd(),
		newCallCmd(opts),
		newRunCmd(opts),
		newEncodeCmd(opts),
	)
	return root
}

// usecase builds the facades against the process-wide dispatcher. A
// missing or malformed credential fails here, before any call.
func (o *rootOptions) usecase() (*usecase.DocumentUsecase, error) {
	svc, err := service.GetUseResumeService(o.logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewDocumentUsecase(usecase.Fixed(svc), o.logger), nil
}
