package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/aquaria-id/contest-api/cmd/contestctl/cmds"
	"github.com/aquaria-id/contest-api/internal/exitcode"
	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/otel"
)

func runApp(ctx context.Context) int {
	useOTLP, err := strconv.ParseBool(os.Getenv("USE_OTLP"))
	if err != nil {
		useOTLP = false
	}

	shutdown, err := otel.SetupOTelSDK(ctx, "contestctl", useOTLP)
	if err != nil {
		logger.Logger.Warn("failed to setup otel sdk", "error", err)
	} else {
		defer func() {
			if fail := shutdown(ctx); fail != nil {
				logger.Logger.Warn("no clean shutdown for otel", "error", fail)
			}
		}()
	}

	err = cmds.Execute(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())

		var ee exitcode.ExitError
		if errors.As(err, &ee) {
			return ee.Code
		}
		return exitcode.Errored
	}

	return 0
}

func main() {
	logger.InitSlog()
	logger.LogLevel.Set(slog.LevelWarn)

	os.Exit(runApp(context.Background()))
}
