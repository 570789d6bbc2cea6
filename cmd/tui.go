package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
	"github.com/desertthunder/lrcx/internal/tasks"
	"github.com/desertthunder/lrcx/internal/ui"
)

// redirectLogs sends logs to a file so they do not interfere with the progress display.
func (r *Runner) redirectLogs(path string) error {
	if path == "" {
		path = "./tmp/lrcx.log"
	}
	fileLogger, err := shared.NewFileLogger(path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)
	return nil
}

// runInteractive executes run behind the full-screen progress display.
func (r *Runner) runInteractive(ctx context.Context, mode models.ScanMode, run ui.RunFunc) (*tasks.RunResult, error) {
	title := fmt.Sprintf("lrcx · %s", mode)
	result, err := ui.Run(ctx, title, run)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: run did not complete", shared.ErrServiceUnavailable)
	}
	return result, nil
}

// runPlain executes run while printing progress lines to the output.
func (r *Runner) runPlain(ctx context.Context, run ui.RunFunc) (*tasks.RunResult, error) {
	progress := make(chan tasks.ProgressUpdate, 64)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ui.PrintProgress(r.output, progress, r.terminal)
	}()

	result, err := run(ctx, progress)
	close(progress)
	wg.Wait()
	return result, err
}
