package commands

import (
	"log/slog"
	"os"

	"github.com/FengLee1113/sentry/internal/cli/config"
	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/pkg/privacy"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd.
// format, when non-empty, overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	modeStr := cfg.OutputFormat
	if format != "" {
		modeStr = format
	}
	mode, err := output.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}, nil
}

// Labels returns the rule labels with configured overrides applied.
func (c *CommandContext) Labels() privacy.Labels {
	return privacy.DefaultLabels().WithOverrides(c.Cfg.Labels.Methods, c.Cfg.Labels.Types)
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cfg := config.Default()
	cfg.OutputFormat = getEnvOrDefault(config.EnvPrefix+"OUTPUT", config.DefaultOutput)
	cfg.Language = getEnvOrDefault(config.EnvPrefix+"LANGUAGE", config.DefaultLanguage)
	cfg.Verbose = os.Getenv(config.EnvPrefix+"VERBOSE") == "true"
	cfg.ShowNonContributing = os.Getenv(config.EnvPrefix+"SHOW_NON_CONTRIBUTING") == "true"
	cfg.GroupingFile = os.Getenv(config.EnvPrefix + "GROUPING_FILE")
	cfg.RulesFile = os.Getenv(config.EnvPrefix + "RULES_FILE")
	cfg.ProjectDir, _ = os.Getwd()
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
