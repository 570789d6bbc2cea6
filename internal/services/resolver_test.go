package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
)

// stubService is a test double for [Service] returning canned responses.
type stubService struct {
	exact     *Track
	exactErr  error
	results   []Track
	searchErr error
	searches  []string
}

func (s *stubService) Get(ctx context.Context, artist, title string, duration int) (*Track, error) {
	if s.exactErr != nil {
		return nil, s.exactErr
	}
	if s.exact == nil {
		return nil, shared.ErrLyricsNotFound
	}
	return s.exact, nil
}

func (s *stubService) Search(ctx context.Context, query string) ([]Track, error) {
	s.searches = append(s.searches, query)
	return s.results, s.searchErr
}

func (s *stubService) Name() string { return "stub" }

func newTestResolver(svc Service) *Resolver {
	return NewResolver(svc, DefaultDurationTolerance, shared.NewLogger(io.Discard))
}

func TestResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("exact synced match wins", func(t *testing.T) {
		svc := &stubService{exact: &Track{SyncedLyrics: "[00:01.00] Hello", PlainLyrics: "Hello"}}
		got := newTestResolver(svc).Resolve(ctx, "A", "B", 100)

		if got == nil || got.Text() != "[00:01.00] Hello" {
			t.Fatalf("expected synced exact match, got %+v", got)
		}
		if got.Source != models.SourceExact {
			t.Errorf("expected exact source, got %s", got.Source)
		}
		if len(svc.searches) != 0 {
			t.Error("expected no fuzzy search")
		}
	})

	t.Run("exact plain match skips fuzzy search", func(t *testing.T) {
		svc := &stubService{
			exact:   &Track{PlainLyrics: "Hello"},
			results: []Track{{Duration: 100, SyncedLyrics: "[00:01.00] Better"}},
		}
		got := newTestResolver(svc).Resolve(ctx, "A", "B", 100)

		if got == nil || got.Text() != "Hello" {
			t.Fatalf("expected plain exact match, got %+v", got)
		}
		if len(svc.searches) != 0 {
			t.Error("expected plain exact match to short-circuit search")
		}
	})

	t.Run("falls back to search when exact lookup is empty", func(t *testing.T) {
		svc := &stubService{
			exact:   &Track{Instrumental: true},
			results: []Track{{Duration: 101, SyncedLyrics: "[00:01.00] found"}},
		}
		got := newTestResolver(svc).Resolve(ctx, "Artist", "Title", 100)

		if got == nil || got.Text() != "[00:01.00] found" {
			t.Fatalf("expected search result, got %+v", got)
		}
		if got.Source != models.SourceSearch {
			t.Errorf("expected search source, got %s", got.Source)
		}
		if len(svc.searches) != 1 || svc.searches[0] != "Artist Title" {
			t.Errorf("expected one search for 'Artist Title', got %v", svc.searches)
		}
	})

	t.Run("falls back to search when exact lookup fails", func(t *testing.T) {
		svc := &stubService{
			exactErr: errors.New("boom"),
			results:  []Track{{Duration: 100, PlainLyrics: "plain"}},
		}
		if got := newTestResolver(svc).Resolve(ctx, "A", "B", 100); got == nil || got.Text() != "plain" {
			t.Fatalf("expected search result, got %+v", got)
		}
	})

	t.Run("no search results", func(t *testing.T) {
		svc := &stubService{}
		if got := newTestResolver(svc).Resolve(ctx, "A", "B", 100); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("search failure is absent", func(t *testing.T) {
		svc := &stubService{searchErr: shared.ErrAPIRequest}
		if got := newTestResolver(svc).Resolve(ctx, "A", "B", 100); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("selected result without lyrics is absent", func(t *testing.T) {
		svc := &stubService{results: []Track{{Duration: 100, Instrumental: true}}}
		if got := newTestResolver(svc).Resolve(ctx, "A", "B", 100); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("search prefers synced text of the selected result", func(t *testing.T) {
		svc := &stubService{results: []Track{{Duration: 100, PlainLyrics: "plain", SyncedLyrics: "[00:01.00] synced"}}}
		if got := newTestResolver(svc).Resolve(ctx, "A", "B", 100); got == nil || got.Text() != "[00:01.00] synced" {
			t.Fatalf("expected synced text, got %+v", got)
		}
	})
}

func TestSelectCandidate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := SelectCandidate(nil, 100, 3); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("difference of exactly three is included", func(t *testing.T) {
		results := []Track{
			{ID: 1, Duration: 150, PlainLyrics: "far"},
			{ID: 2, Duration: 103, PlainLyrics: "edge"},
		}
		if got := SelectCandidate(results, 100, 3); got.ID != 2 {
			t.Errorf("expected candidate at +3 to be selected, got %d", got.ID)
		}
	})

	t.Run("difference of four is excluded", func(t *testing.T) {
		results := []Track{
			{ID: 1, Duration: 150, PlainLyrics: "top"},
			{ID: 2, Duration: 96, SyncedLyrics: "[00:01.00] out"},
		}
		if got := SelectCandidate(results, 100, 3); got.ID != 1 {
			t.Errorf("expected fallback to top result, got %d", got.ID)
		}
	})

	t.Run("synced beats closer unsynced", func(t *testing.T) {
		results := []Track{
			{ID: 1, Duration: 100, PlainLyrics: "exact duration"},
			{ID: 2, Duration: 102, SyncedLyrics: "[00:01.00] synced"},
		}
		if got := SelectCandidate(results, 100, 3); got.ID != 2 {
			t.Errorf("expected synced candidate, got %d", got.ID)
		}
	})

	t.Run("closer wins among synced", func(t *testing.T) {
		results := []Track{
			{ID: 1, Duration: 103, SyncedLyrics: "a"},
			{ID: 2, Duration: 99, SyncedLyrics: "b"},
			{ID: 3, Duration: 101, SyncedLyrics: "c"},
		}
		// 99 and 101 are both one second off; provider order breaks the tie
		if got := SelectCandidate(results, 100, 3); got.ID != 2 {
			t.Errorf("expected candidate 2, got %d", got.ID)
		}
	})

	t.Run("fractional durations", func(t *testing.T) {
		results := []Track{
			{ID: 1, Duration: 103.5, SyncedLyrics: "a"},
			{ID: 2, Duration: 97.5, PlainLyrics: "b"},
		}
		if got := SelectCandidate(results, 100, 3); got.ID != 2 {
			t.Errorf("expected 3.5s difference to be excluded, got %d", got.ID)
		}
	})

	t.Run("unknown duration takes top result", func(t *testing.T) {
		results := []Track{
			{ID: 1, Duration: 300, PlainLyrics: "top"},
			{ID: 2, Duration: 100, SyncedLyrics: "s"},
		}
		if got := SelectCandidate(results, 0, 3); got.ID != 1 {
			t.Errorf("expected top result, got %d", got.ID)
		}
	})

	t.Run("missing result duration counts as zero", func(t *testing.T) {
		results := []Track{
			{ID: 1, SyncedLyrics: "no duration"},
			{ID: 2, Duration: 100, PlainLyrics: "match"},
		}
		if got := SelectCandidate(results, 100, 3); got.ID != 2 {
			t.Errorf("expected result with duration, got %d", got.ID)
		}
	})
}
