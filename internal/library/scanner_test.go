package library

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
	tu "github.com/desertthunder/lrcx/internal/testing"
)

func newTestScanner(tags *tu.FakeTags) *Scanner {
	return NewScanner(tags, shared.NewLogger(io.Discard))
}

func TestLyricPath(t *testing.T) {
	tests := []struct {
		audio string
		want  string
	}{
		{"/music/a/song.flac", "/music/a/song.lrc"},
		{"/music/a/SONG.FLAC", "/music/a/SONG.lrc"},
		{"/music/a.b/track.01.flac", "/music/a.b/track.01.lrc"},
	}

	for _, tt := range tests {
		t.Run(tt.audio, func(t *testing.T) {
			if got := LyricPath(tt.audio); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIsAudio(t *testing.T) {
	for path, want := range map[string]bool{
		"a.flac": true,
		"a.FLAC": true,
		"a.Flac": true,
		"a.mp3":  false,
		"a.lrc":  false,
		"flac":   false,
	} {
		if got := IsAudio(path); got != want {
			t.Errorf("IsAudio(%q): expected %v, got %v", path, want, got)
		}
	}
}

func TestScanner(t *testing.T) {
	complete := models.TrackInfo{Artist: "Artist", Title: "Title", Duration: 200}

	t.Run("missing mode", func(t *testing.T) {
		root := t.TempDir()
		tags := tu.NewFakeTags()

		withLRC := filepath.Join(root, "a", "with.flac")
		without := filepath.Join(root, "b", "without.FLAC")
		other := filepath.Join(root, "b", "other.mp3")
		for _, p := range []string{withLRC, without, other} {
			tu.MustWriteFile(t, p, []byte("audio"))
			tags.Info[p] = complete
		}
		tu.MustWriteFile(t, LyricPath(withLRC), []byte("[00:01.00] x"))

		result, err := newTestScanner(tags).Scan(root, models.ModeMissing)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.TotalAudio != 2 {
			t.Errorf("expected 2 audio files, got %d", result.TotalAudio)
		}
		if result.Skipped != 1 {
			t.Errorf("expected 1 skipped, got %d", result.Skipped)
		}
		if len(result.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(result.Items))
		}

		item := result.Items[0]
		if item.AudioPath != without || item.LyricPath != LyricPath(without) {
			t.Errorf("unexpected item paths %+v", item)
		}
		if item.UpgradeAttempt {
			t.Error("expected fetch item, got upgrade attempt")
		}
	})

	t.Run("upgrade mode", func(t *testing.T) {
		root := t.TempDir()
		tags := tu.NewFakeTags()

		synced := filepath.Join(root, "synced.flac")
		unsynced := filepath.Join(root, "unsynced.flac")
		noLRC := filepath.Join(root, "nolrc.flac")
		for _, p := range []string{synced, unsynced, noLRC} {
			tu.MustWriteFile(t, p, []byte("audio"))
			tags.Info[p] = complete
		}
		tu.MustWriteFile(t, LyricPath(synced), []byte("[ar:x]\n[00:01.00] line"))
		tu.MustWriteFile(t, LyricPath(unsynced), []byte("just words\nmore words"))

		result, err := newTestScanner(tags).Scan(root, models.ModeUpgrade)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Skipped != 1 {
			t.Errorf("expected synced file to be skipped, got %d skipped", result.Skipped)
		}
		if len(result.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(result.Items))
		}
		if !result.Items[0].UpgradeAttempt || result.Items[0].AudioPath != unsynced {
			t.Errorf("expected upgrade item for unsynced file, got %+v", result.Items[0])
		}
	})

	t.Run("timestamp beyond the prefix window counts as unsynced", func(t *testing.T) {
		root := t.TempDir()
		tags := tu.NewFakeTags()

		audio := filepath.Join(root, "late.flac")
		tu.MustWriteFile(t, audio, []byte("audio"))
		tags.Info[audio] = complete

		padding := make([]byte, 1200)
		for i := range padding {
			padding[i] = 'a'
		}
		tu.MustWriteFile(t, LyricPath(audio), append(padding, []byte("\n[00:01.00] late")...))

		result, err := newTestScanner(tags).Scan(root, models.ModeUpgrade)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result.Items) != 1 {
			t.Errorf("expected late timestamp file to be queued, got %d items", len(result.Items))
		}
	})

	t.Run("incomplete metadata is counted and not queued", func(t *testing.T) {
		root := t.TempDir()
		tags := tu.NewFakeTags()

		noArtist := filepath.Join(root, "1.flac")
		noDuration := filepath.Join(root, "2.flac")
		unreadable := filepath.Join(root, "3.flac")
		good := filepath.Join(root, "4.flac")
		for _, p := range []string{noArtist, noDuration, unreadable, good} {
			tu.MustWriteFile(t, p, []byte("audio"))
		}
		tags.Info[noArtist] = models.TrackInfo{Title: "T", Duration: 100}
		tags.Info[noDuration] = models.TrackInfo{Artist: "A", Title: "T"}
		tags.ReadErr[unreadable] = shared.ErrUnsupportedFile
		tags.Info[good] = complete

		result, err := newTestScanner(tags).Scan(root, models.ModeMissing)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MissingMetadata != 3 {
			t.Errorf("expected 3 missing metadata, got %d", result.MissingMetadata)
		}
		if len(result.Items) != 1 || result.Items[0].AudioPath != good {
			t.Errorf("expected only the complete file to be queued, got %+v", result.Items)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := newTestScanner(tu.NewFakeTags()).Scan(filepath.Join(t.TempDir(), "nope"), models.ModeMissing)
		if !errors.Is(err, shared.ErrLibraryNotFound) {
			t.Errorf("expected ErrLibraryNotFound, got %v", err)
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		tu.MustWriteFile(t, path, []byte("x"))
		if err := CheckRoot(path); !errors.Is(err, shared.ErrLibraryNotFound) {
			t.Errorf("expected ErrLibraryNotFound, got %v", err)
		}
	})

	t.Run("existing mode is rejected", func(t *testing.T) {
		_, err := newTestScanner(tu.NewFakeTags()).Scan(t.TempDir(), models.ModeExisting)
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestFindLyricFiles(t *testing.T) {
	root := t.TempDir()
	tu.MustWriteFile(t, filepath.Join(root, "a.lrc"), []byte("x"))
	tu.MustWriteFile(t, filepath.Join(root, "sub", "b.LRC"), []byte("x"))
	tu.MustWriteFile(t, filepath.Join(root, "sub", "c.txt"), []byte("x"))

	files, err := FindLyricFiles(root)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 lyric files, got %v", files)
	}
}

func TestAudioPathFor(t *testing.T) {
	root := t.TempDir()

	lower := filepath.Join(root, "a.lrc")
	tu.MustWriteFile(t, filepath.Join(root, "a.flac"), []byte("x"))
	if got, ok := AudioPathFor(lower); !ok || got != filepath.Join(root, "a.flac") {
		t.Errorf("expected a.flac, got %q (%v)", got, ok)
	}

	upper := filepath.Join(root, "b.lrc")
	tu.MustWriteFile(t, filepath.Join(root, "b.FLAC"), []byte("x"))
	if got, ok := AudioPathFor(upper); !ok || !IsAudio(got) {
		t.Errorf("expected upper case audio file, got %q (%v)", got, ok)
	}

	if _, ok := AudioPathFor(filepath.Join(root, "c.lrc")); ok {
		t.Error("expected no audio file for c.lrc")
	}
}
