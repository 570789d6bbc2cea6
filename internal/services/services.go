// package services defines interface Service for lyric lookup providers
//
// LRCLIB
package services

import (
	"context"
	"math"

	"github.com/desertthunder/lrcx/internal/models"
)

// Service defines the interface for lyric lookup providers.
type Service interface {
	// Get performs an exact lookup by artist and title, narrowed by duration in seconds when it is positive.
	//
	// Returns an error wrapping [shared.ErrLyricsNotFound] when the provider has no such track.
	Get(ctx context.Context, artist, title string, duration int) (*Track, error)

	// Search performs a fuzzy lookup and returns results in the provider's ranking order.
	Search(ctx context.Context, query string) ([]Track, error)

	// Name returns the name of the service (e.g., "LRCLIB")
	Name() string
}

// Track is a lyric record returned by a provider.
type Track struct {
	ID           int     `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"` // Seconds; 0 when absent
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// HasSynced reports whether the record carries timed lyrics.
func (t Track) HasSynced() bool { return t.SyncedLyrics != "" }

// Usable reports whether the record carries any lyrics.
func (t Track) Usable() bool { return t.SyncedLyrics != "" || t.PlainLyrics != "" }

// DurationDiff returns the absolute difference in seconds from target.
func (t Track) DurationDiff(target int) float64 {
	return math.Abs(t.Duration - float64(target))
}

// Candidate converts the record to a [models.RemoteCandidate] tagged with source.
func (t Track) Candidate(source string) *models.RemoteCandidate {
	return &models.RemoteCandidate{
		SyncedLyrics: t.SyncedLyrics,
		PlainLyrics:  t.PlainLyrics,
		Duration:     int(math.Round(t.Duration)),
		Source:       source,
	}
}
