// package models defines the data model for the lyric fetcher
package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertthunder/lrcx/internal/shared"
)

// TrackInfo is the subset of audio metadata used for matching.
//
// Duration is whole seconds, 0 when unknown.
type TrackInfo struct {
	Artist   string
	Title    string
	Duration int
}

// Complete reports whether artist, title and duration are all present.
func (t TrackInfo) Complete() bool {
	return strings.TrimSpace(t.Artist) != "" && strings.TrimSpace(t.Title) != "" && t.Duration > 0
}

// WorkItem is one audio file queued for remote processing.
//
// Items are built once by the scanner and never mutated afterwards.
type WorkItem struct {
	AudioPath      string
	LyricPath      string
	Artist         string
	Title          string
	Duration       int  // Seconds; 0 means absent
	UpgradeAttempt bool // Existing lyric file is unsynced
}

// NewWorkItem builds a [WorkItem] from scanned metadata, rejecting incomplete metadata.
func NewWorkItem(audioPath, lyricPath string, info TrackInfo, upgrade bool) (WorkItem, error) {
	item := WorkItem{
		AudioPath:      audioPath,
		LyricPath:      lyricPath,
		Artist:         strings.TrimSpace(info.Artist),
		Title:          strings.TrimSpace(info.Title),
		Duration:       info.Duration,
		UpgradeAttempt: upgrade,
	}
	if err := item.Validate(); err != nil {
		return WorkItem{}, err
	}
	return item, nil
}

// Validate checks that the item can be matched remotely.
func (w WorkItem) Validate() error {
	switch {
	case w.AudioPath == "" || w.LyricPath == "":
		return fmt.Errorf("%w: work item paths are empty", shared.ErrInvalidInput)
	case w.Artist == "":
		return fmt.Errorf("%w: artist", shared.ErrMissingMetadata)
	case w.Title == "":
		return fmt.Errorf("%w: title", shared.ErrMissingMetadata)
	case w.Duration <= 0:
		return fmt.Errorf("%w: duration", shared.ErrMissingMetadata)
	}
	return nil
}

// Name returns the audio file's base name for log output, or the lyric file's when there is
// no audio path.
func (w WorkItem) Name() string {
	if w.AudioPath == "" {
		return filepath.Base(w.LyricPath)
	}
	return filepath.Base(w.AudioPath)
}

// LyricContent is lyric text with its derived sync classification.
type LyricContent struct {
	Text   string
	Synced bool
}

// Match source for a [RemoteCandidate].
const (
	SourceExact  = "exact"
	SourceSearch = "search"
)

// RemoteCandidate is one result from the lyric lookup service.
type RemoteCandidate struct {
	SyncedLyrics string
	PlainLyrics  string
	Duration     int    // Seconds; 0 when the service did not report one
	Source       string // [SourceExact] or [SourceSearch]
}

// HasSynced reports whether the candidate carries timed lyrics.
func (c RemoteCandidate) HasSynced() bool { return c.SyncedLyrics != "" }

// Usable reports whether the candidate carries any lyric text at all.
func (c RemoteCandidate) Usable() bool { return c.SyncedLyrics != "" || c.PlainLyrics != "" }

// Text returns the synced lyrics when present, else the plain lyrics.
func (c RemoteCandidate) Text() string {
	if c.HasSynced() {
		return c.SyncedLyrics
	}
	return c.PlainLyrics
}

// ScanMode selects which audio files a run considers.
type ScanMode int

const (
	ModeMissing  ScanMode = iota // Fetch only where no lyric file exists
	ModeUpgrade                  // Re-fetch only where the lyric file is unsynced
	ModeExisting                 // Local only: rewrite and embed existing lyric files
)

func (m ScanMode) String() string {
	switch m {
	case ModeMissing:
		return "missing"
	case ModeUpgrade:
		return "upgrade"
	case ModeExisting:
		return "existing"
	default:
		return ""
	}
}

// ParseScanMode is the inverse of [ScanMode.String].
func ParseScanMode(s string) (ScanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "missing":
		return ModeMissing, nil
	case "upgrade":
		return ModeUpgrade, nil
	case "existing":
		return ModeExisting, nil
	default:
		return ModeMissing, fmt.Errorf("%w: scan mode %q", shared.ErrInvalidArgument, s)
	}
}

// Outcome is the primary result category of one job.
type Outcome int

const (
	OutcomeNotFound  Outcome = iota // No usable candidate
	OutcomeFound                    // New lyric file written
	OutcomeUpgraded                 // Unsynced file replaced by synced lyrics
	OutcomeKept                     // Upgrade attempt found only unsynced lyrics; file untouched
	OutcomeFailed                   // Local write or unexpected failure
	OutcomeProcessed                // Existing lyric file handled locally
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFound:
		return "found"
	case OutcomeUpgraded:
		return "upgraded"
	case OutcomeKept:
		return "kept"
	case OutcomeFailed:
		return "failed"
	case OutcomeProcessed:
		return "processed"
	default:
		return ""
	}
}

// MarshalText renders the outcome by name in reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// JobResult is returned by each job to the coordinator in place of unwinding errors.
type JobResult struct {
	Item      WorkItem
	Outcome   Outcome
	Source    string // Which lookup produced the lyrics, empty when none
	Synced    bool   // Written lyrics carry timestamps
	Romanized bool
	Embedded  bool
	Err       error
}
