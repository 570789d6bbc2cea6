package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/lrcx/internal/formatter"
	"github.com/desertthunder/lrcx/internal/library"
	"github.com/desertthunder/lrcx/internal/lyrics"
	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/services"
	"github.com/desertthunder/lrcx/internal/shared"
	"github.com/desertthunder/lrcx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// fetchSettings is the effective configuration of one fetch run after config, environment and
// flags have been merged.
type fetchSettings struct {
	config       *shared.Config
	root         string
	mode         models.ScanMode
	report       string
	reportFormat string
	progress     bool
}

// Fetch scans a library and downloads, upgrades or post-processes lyric files.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	s, err := r.fetchSettings(cmd)
	if err != nil {
		return err
	}

	if err := library.CheckRoot(s.root); err != nil {
		r.logger.Error("library directory not found", "path", s.root)
		return err
	}

	lock := shared.NewRunLock(s.root)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	tui := s.progress && r.terminal
	if tui {
		if err := r.redirectLogs(s.config.Log.File); err != nil {
			return err
		}
	}
	if level, err := shared.ParseLogLevel(s.config.Log.Level); err == nil {
		shared.SetLogLevel(r.logger, level)
	}

	engine, err := r.newEngine(s)
	if err != nil {
		return err
	}

	opts := tasks.RunOpts{
		Mode:     s.mode,
		Workers:  s.config.Fetch.Workers,
		Romanize: s.config.Fetch.Romanize,
		Embed:    s.config.Fetch.Embed,
	}

	switch s.mode {
	case models.ModeExisting:
		r.writePlainHeader("Processing EXISTING LYRICS")
	case models.ModeUpgrade:
		r.writePlainHeader("Scanning for UNSYNCED UPGRADES")
	default:
		r.writePlainHeader("Scanning for MISSING LYRICS")
	}

	run := func(ctx context.Context, progress chan<- tasks.ProgressUpdate) (*tasks.RunResult, error) {
		return r.executeRun(ctx, engine, s, opts, progress)
	}

	var result *tasks.RunResult
	if tui {
		result, err = r.runInteractive(ctx, s.mode, run)
	} else {
		result, err = r.runPlain(ctx, run)
	}
	if err != nil {
		return err
	}

	if result.Queued == 0 && s.mode != models.ModeExisting {
		r.writePlainln("✨ No songs found matching current mode criteria.")
	}
	r.writePlainln("%s", formatter.SummaryTable(result))
	r.logger.Info("run complete", "run_id", result.ID, "mode", result.Mode, "errors", result.Summary.Errors)

	if s.report != "" {
		if err := formatter.WriteReport(result, s.reportFormat, s.report); err != nil {
			return err
		}
		r.logger.Info("report written", "path", s.report, "format", s.reportFormat)
	}
	return nil
}

func (r *Runner) fetchSettings(cmd *cli.Command) (*fetchSettings, error) {
	existing := cmd.Bool("process-existing")
	unsynced := cmd.Bool("scan-unsynced")
	if existing && unsynced {
		return nil, fmt.Errorf("%w: --process-existing and --scan-unsynced cannot be combined", shared.ErrInvalidFlag)
	}

	root := cmd.StringArg("library")
	if root == "" {
		return nil, fmt.Errorf("%w: library directory", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cmd.Bool("romanize") {
		config.Fetch.Romanize = true
	}
	if cmd.Bool("embed") {
		config.Fetch.Embed = true
	}
	if w := int(cmd.Int("workers")); w != 0 {
		config.Fetch.Workers = w
	}
	if rate := cmd.Float("rate"); rate >= 0 {
		config.LRCLib.RateLimit = rate
	}
	if level := cmd.String("log-level"); level != "" {
		config.Log.Level = level
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &fetchSettings{
		config:       config,
		root:         root,
		mode:         models.ModeMissing,
		report:       cmd.String("report"),
		reportFormat: cmd.String("report-format"),
		progress:     cmd.Bool("progress"),
	}
	switch {
	case existing:
		s.mode = models.ModeExisting
	case unsynced:
		s.mode = models.ModeUpgrade
	}
	return s, nil
}

func (r *Runner) newEngine(s *fetchSettings) (*tasks.FetchEngine, error) {
	svc := services.NewLRCLibService(services.LRCLibOpts{
		BaseURL:    s.config.LRCLib.BaseURL,
		UserAgent:  s.config.LRCLib.UserAgent,
		Timeout:    s.config.LRCLib.Timeout(),
		RateLimit:  s.config.LRCLib.RateLimit,
		HTTPClient: r.httpClient,
	})

	opts := tasks.EngineOpts{
		Resolver: services.NewResolver(svc, s.config.Fetch.DurationTolerance, r.logger),
		Sink:     r.sink,
		Logger:   r.logger,
	}

	if s.config.Fetch.Romanize || s.mode == models.ModeExisting {
		tok, err := r.japaneseTokenizer()
		if err != nil {
			return nil, err
		}
		romanizer := lyrics.NewRomanizer(lyrics.NewKoreanRomanizer(), lyrics.NewJapaneseRomanizer(tok))
		opts.Transformer = lyrics.NewTransformer(romanizer)
	}

	return tasks.NewFetchEngine(opts), nil
}

func (r *Runner) japaneseTokenizer() (lyrics.Tokenizer, error) {
	if r.tokenizer != nil {
		return r.tokenizer, nil
	}
	r.logger.Debug("loading Japanese dictionary")
	tok, err := lyrics.NewKagomeTokenizer()
	if err != nil {
		return nil, fmt.Errorf("failed to load Japanese tokenizer: %w", err)
	}
	r.tokenizer = tok
	return tok, nil
}

// executeRun performs both phases: the scan runs to completion before any job starts.
func (r *Runner) executeRun(
	ctx context.Context,
	engine *tasks.FetchEngine,
	s *fetchSettings,
	opts tasks.RunOpts,
	progress chan<- tasks.ProgressUpdate,
) (*tasks.RunResult, error) {
	if s.mode == models.ModeExisting {
		files, err := library.FindLyricFiles(s.root)
		if err != nil {
			return nil, err
		}
		return engine.ProcessExisting(ctx, files, opts, progress)
	}

	scan, err := library.NewScanner(r.metadata, r.logger).Scan(s.root, s.mode)
	if err != nil {
		return nil, err
	}
	select {
	case progress <- tasks.ScanUpdate(scan):
	default:
	}

	result, err := engine.Run(ctx, scan.Items, opts, progress)
	if err != nil {
		return nil, err
	}
	result.ApplyScan(scan)
	return result, nil
}
