package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lrcx/internal/library"
	"github.com/desertthunder/lrcx/internal/lyrics"
	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
)

// DefaultWorkers is the worker pool size when none is configured.
const DefaultWorkers = 10

// LyricResolver finds at most one lyric candidate for a track.
type LyricResolver interface {
	Resolve(ctx context.Context, artist, title string, duration int) *models.RemoteCandidate
}

// TextTransformer rewrites lyric text, keeping its line structure.
type TextTransformer interface {
	Transform(text string) string
}

// WriteFunc persists lyric text to a path.
type WriteFunc func(path, text string) error

// RunOpts configures one run.
type RunOpts struct {
	Mode     models.ScanMode
	Workers  int  // Concurrent jobs (default: 10)
	Romanize bool // Transliterate Japanese and Korean lyrics before writing
	Embed    bool // Write final lyrics into the audio file's metadata
}

// RunResult contains the outcome of a whole run.
type RunResult struct {
	ID              string             `json:"id"`
	Mode            models.ScanMode    `json:"-"`
	ModeName        string             `json:"mode"`
	Romanize        bool               `json:"romanize"`
	Embed           bool               `json:"embed"`
	Queued          int                `json:"queued"`
	Scanned         int                `json:"scanned"`
	Skipped         int                `json:"skipped"`
	MissingMetadata int                `json:"missing_metadata"`
	Summary         Summary            `json:"summary"`
	Results         []models.JobResult `json:"-"`
	StartedAt       time.Time          `json:"started_at"`
	FinishedAt      time.Time          `json:"finished_at"`
}

// ApplyScan copies scan totals into the result.
func (r *RunResult) ApplyScan(scan *library.ScanResult) {
	if scan == nil {
		return
	}
	r.Scanned = scan.TotalAudio
	r.Skipped = scan.Skipped
	r.MissingMetadata = scan.MissingMetadata
}

// EngineOpts wires the collaborators of a [FetchEngine]. Nil fields get defaults where one exists.
type EngineOpts struct {
	Resolver    LyricResolver
	Transformer TextTransformer       // Required only when romanizing
	Sink        library.EmbeddingSink // Required only when embedding
	Write       WriteFunc             // Default: [lyrics.WriteLyricFile]
	Logger      *log.Logger
}

// FetchEngine runs lyric jobs for queued work items.
type FetchEngine struct {
	resolver    LyricResolver
	transformer TextTransformer
	sink        library.EmbeddingSink
	write       WriteFunc
	logger      *log.Logger
}

func NewFetchEngine(opts EngineOpts) *FetchEngine {
	if opts.Write == nil {
		opts.Write = lyrics.WriteLyricFile
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &FetchEngine{
		resolver:    opts.Resolver,
		transformer: opts.Transformer,
		sink:        opts.Sink,
		write:       opts.Write,
		logger:      opts.Logger,
	}
}

// Process runs one job: resolve, arbitrate, transform, persist, embed.
//
// With opts.Romanize set, only text containing Japanese or Korean goes through the transformer;
// other lyrics are saved exactly as fetched and never count as romanized.
//
// Failures never escape; they are reported through the returned result, panics included.
func (e *FetchEngine) Process(ctx context.Context, item models.WorkItem, opts RunOpts) (res models.JobResult) {
	res = models.JobResult{Item: item}
	logger := e.logger.With("file", item.Name())

	defer func() {
		if r := recover(); r != nil {
			res = models.JobResult{Item: item, Outcome: models.OutcomeFailed, Err: fmt.Errorf("%w: %v", shared.ErrJobPanic, r)}
			logger.Error("job failed", "error", res.Err)
		}
	}()

	if e.resolver == nil {
		res.Outcome = models.OutcomeFailed
		res.Err = fmt.Errorf("%w: no lyric resolver", shared.ErrServiceUnavailable)
		return res
	}

	candidate := e.resolver.Resolve(ctx, item.Artist, item.Title, item.Duration)
	if candidate == nil || !candidate.Usable() {
		logger.Debug("not found", "artist", item.Artist, "title", item.Title)
		res.Outcome = models.OutcomeNotFound
		return res
	}

	content := lyrics.NewContent(candidate.Text())
	res.Source = candidate.Source
	res.Synced = content.Synced

	if !ShouldAccept(item.UpgradeAttempt, content.Synced) {
		logger.Info("only found unsynced lyrics online, keeping existing unsynced file")
		res.Outcome = models.OutcomeKept
		return res
	}

	text := content.Text
	if opts.Romanize && e.transformer != nil && lyrics.ContainsCJK(text) {
		if romanized := e.transformer.Transform(text); romanized != text {
			text = romanized
			res.Romanized = true
		}
	}

	if err := e.write(item.LyricPath, text); err != nil {
		res.Outcome = models.OutcomeFailed
		res.Err = fmt.Errorf("%w: %s: %v", shared.ErrLyricsWrite, item.LyricPath, err)
		logger.Error("could not save lyrics", "error", err)
		return res
	}

	if item.UpgradeAttempt {
		res.Outcome = models.OutcomeUpgraded
		logger.Debug("upgraded to synced lyrics", "source", res.Source)
	} else {
		res.Outcome = models.OutcomeFound
		logger.Debug("saved lyrics", "synced", res.Synced, "source", res.Source)
	}

	if opts.Embed {
		res.Embedded = e.embed(item.AudioPath, text, logger)
	}
	return res
}

// embed reports whether text reached the audio file. The lyric file is already saved at this
// point, so a panicking sink is logged here and leaves the job outcome alone.
func (e *FetchEngine) embed(audioPath, text string, logger *log.Logger) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("could not embed lyrics", "error", fmt.Errorf("%w: %v", shared.ErrJobPanic, r))
			ok = false
		}
	}()

	if e.sink == nil {
		logger.Warn("embedding requested but no sink configured")
		return false
	}
	if err := e.sink.EmbedLyrics(audioPath, text); err != nil {
		logger.Error("could not embed lyrics", "error", err)
		return false
	}
	logger.Debug("embedded lyrics")
	return true
}
