package cli

import (
	"fmt"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/config"
	"github.com/rshade/healthcalc/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)

	traced := result.Logger.With().Str(logging.TraceIDField, traceID).Logger()
	logger = logging.ComponentLogger(traced, "cli")
	ctx = traced.WithContext(ctx)

	// Engine fallback warnings go through the global logger.
	zlog.Logger = traced

	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.CommandPath()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
