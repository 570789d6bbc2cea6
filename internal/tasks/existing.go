package tasks

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/desertthunder/lrcx/internal/library"
	"github.com/desertthunder/lrcx/internal/lyrics"
	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
)

// ProcessExisting works through lyric files already on disk without any network access.
//
// Files containing Japanese or Korean text are romanized in place. With opts.Embed set, the
// final text is written into the sibling audio file when one exists. Files are handled one
// at a time in the given order.
func (e *FetchEngine) ProcessExisting(ctx context.Context, files []string, opts RunOpts, progress chan<- ProgressUpdate) (*RunResult, error) {
	opts.Mode = models.ModeExisting
	result := newRunResult(opts)
	result.Queued = len(files)
	result.Results = make([]models.JobResult, 0, len(files))
	counters := &Counters{}

	sendProgress(progress, existingStartUpdate(len(files)))

	for i, path := range files {
		var res models.JobResult
		if err := ctx.Err(); err != nil {
			res = models.JobResult{Item: models.WorkItem{LyricPath: path}, Outcome: models.OutcomeFailed, Err: err}
		} else {
			res = e.processExistingFile(path, opts)
		}

		counters.Apply(res)
		result.Results = append(result.Results, res)
		sendProgress(progress, existingDoneUpdate(i+1, len(files), res))
	}

	result.Summary = counters.Snapshot()
	result.FinishedAt = time.Now()
	sendProgress(progress, summaryUpdate(result))
	return result, nil
}

func (e *FetchEngine) processExistingFile(path string, opts RunOpts) (res models.JobResult) {
	audioPath, hasAudio := library.AudioPathFor(path)
	item := models.WorkItem{AudioPath: audioPath, LyricPath: path}
	res = models.JobResult{Item: item, Outcome: models.OutcomeProcessed}
	logger := e.logger.With("file", filepath.Base(path))

	defer func() {
		if r := recover(); r != nil {
			res = models.JobResult{Item: item, Outcome: models.OutcomeFailed, Err: fmt.Errorf("%w: %v", shared.ErrJobPanic, r)}
			logger.Error("job failed", "error", res.Err)
		}
	}()

	text, err := lyrics.ReadLyricFile(path)
	if err != nil {
		logger.Error("could not read lyric file", "error", err)
		res.Outcome = models.OutcomeFailed
		res.Err = err
		return res
	}
	res.Synced = lyrics.IsSynced(text)

	if e.transformer != nil && lyrics.ContainsCJK(text) {
		if romanized := e.transformer.Transform(text); romanized != text {
			if err := e.write(path, romanized); err != nil {
				logger.Error("could not save romanized lyrics", "error", err)
				res.Outcome = models.OutcomeFailed
				res.Err = fmt.Errorf("%w: %s: %v", shared.ErrLyricsWrite, path, err)
				return res
			}
			text = romanized
			res.Romanized = true
			logger.Debug("romanized lyric file")
		}
	}

	if opts.Embed {
		if !hasAudio {
			logger.Debug("no audio file to embed into")
		} else {
			res.Embedded = e.embed(audioPath, text, logger)
		}
	}
	return res
}
