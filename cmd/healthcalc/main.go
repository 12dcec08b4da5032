package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/healthcalc/internal/cli"
	"github.com/rshade/healthcalc/pkg/version"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

// extractExitCode maps an error returned by run to a process exit code.
// Input errors carry their own code; anything else exits with 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var inputErr *cli.InputExitError
	if errors.As(err, &inputErr) {
		return inputErr.ExitCode
	}
	return 1
}

func main() {
	// Cobra has already printed the error.
	os.Exit(extractExitCode(run()))
}
