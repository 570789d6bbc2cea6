package main

import (
	"context"
	"os"

	"github.com/desertthunder/lrcx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	shared.LoadEnv()

	runner := NewRunner(RunnerOpts{Logger: logger})
	fetch := fetchCommand(runner)

	app := &cli.Command{
		Name:      "lrcx",
		Usage:     "Fetch synced lyrics (.lrc) for a FLAC music library",
		Version:   "0.1.0",
		ArgsUsage: "<library>",
		Arguments: fetch.Arguments,
		Flags:     fetch.Flags,
		Action:    fetch.Action,
		Commands:  runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
