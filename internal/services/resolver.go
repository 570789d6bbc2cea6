package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
)

// DefaultDurationTolerance is the widest gap in seconds between a search result and the local track.
const DefaultDurationTolerance = 3

// Resolver turns (artist, title, duration) into at most one lyric candidate.
//
// An exact lookup is tried first. A synced or plain exact match is returned as is, so a plain
// exact match never triggers a search even if a synced search result exists. Otherwise a fuzzy
// search is run and [SelectCandidate] picks the result.
//
// Lookup failures are logged and reported as no candidate; they never reach the caller.
type Resolver struct {
	svc       Service
	tolerance int
	logger    *log.Logger
}

// NewResolver creates a Resolver over svc. A negative tolerance selects [DefaultDurationTolerance].
func NewResolver(svc Service, tolerance int, logger *log.Logger) *Resolver {
	if tolerance < 0 {
		tolerance = DefaultDurationTolerance
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Resolver{svc: svc, tolerance: tolerance, logger: logger}
}

// Resolve returns the best candidate for the track, or nil when nothing usable was found.
//
// A duration of 0 means unknown and disables duration filtering.
func (r *Resolver) Resolve(ctx context.Context, artist, title string, duration int) *models.RemoteCandidate {
	logger := r.logger.With("artist", artist, "title", title)

	exact, err := r.svc.Get(ctx, artist, title, duration)
	switch {
	case err != nil:
		logger.Debug("exact lookup yielded nothing", "error", err)
	case exact.HasSynced():
		logger.Debug("found exact match (synced)")
		return exact.Candidate(models.SourceExact)
	case exact.PlainLyrics != "":
		logger.Debug("found exact match (plain)")
		return exact.Candidate(models.SourceExact)
	}

	logger.Debug("exact match failed or incomplete, trying fuzzy search")
	results, err := r.svc.Search(ctx, SearchQuery(artist, title))
	if err != nil {
		logger.Warn("fuzzy search failed", "error", err)
		return nil
	}

	best := SelectCandidate(results, duration, r.tolerance)
	if best == nil || !best.Usable() {
		return nil
	}

	if best.HasSynced() {
		logger.Debug("found synced lyrics via fuzzy search", "duration", best.Duration)
	} else {
		logger.Debug("found plain lyrics via fuzzy search", "duration", best.Duration)
	}
	return best.Candidate(models.SourceSearch)
}

// SearchQuery builds the fuzzy query string.
func SearchQuery(artist, title string) string {
	return fmt.Sprintf("%s %s", artist, title)
}

// SelectCandidate picks one search result.
//
// With a known duration, results within tolerance seconds (inclusive) are ranked synced first and
// then by smallest duration difference, keeping provider order among equals. When none fall within
// tolerance, or the duration is unknown, the provider's first result is returned. Nil means no results.
func SelectCandidate(results []Track, duration, tolerance int) *Track {
	if len(results) == 0 {
		return nil
	}

	if duration > 0 {
		within := make([]Track, 0, len(results))
		for _, r := range results {
			if r.DurationDiff(duration) <= float64(tolerance) {
				within = append(within, r)
			}
		}

		if len(within) > 0 {
			sort.SliceStable(within, func(i, j int) bool {
				a, b := within[i], within[j]
				if a.HasSynced() != b.HasSynced() {
					return a.HasSynced()
				}
				return a.DurationDiff(duration) < b.DurationDiff(duration)
			})
			return &within[0]
		}
	}

	return &results[0]
}
