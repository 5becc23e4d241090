package cmds

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/aquaria-id/contest-api/internal/logger"
)

var tracer = otel.Tracer("github.com/aquaria-id/contest-api/cmd/contestctl")

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "contestctl",
	Short:         "Administrative tasks for the contest api",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.LogLevel.Set(slog.LevelDebug)
		}
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}
