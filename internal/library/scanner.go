package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lrcx/internal/lyrics"
	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
)

const (
	AudioExt = ".flac"
	LyricExt = ".lrc"
)

// MetadataReader extracts matching metadata from an audio file.
type MetadataReader interface {
	ReadTrackInfo(path string) (models.TrackInfo, error)
}

// ScanResult is the outcome of one library walk.
type ScanResult struct {
	Items           []models.WorkItem
	TotalAudio      int // Audio files seen
	Skipped         int // Audio files that needed no work in this mode
	MissingMetadata int // Audio files dropped for incomplete or unreadable metadata
}

// Scanner builds work items from a library directory.
type Scanner struct {
	reader MetadataReader
	logger *log.Logger
}

func NewScanner(reader MetadataReader, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Scanner{reader: reader, logger: logger}
}

// LyricPath returns the lyric file path paired with an audio file.
func LyricPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + LyricExt
}

// IsAudio reports whether path has the audio extension, ignoring case.
func IsAudio(path string) bool {
	return strings.EqualFold(filepath.Ext(path), AudioExt)
}

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrLibraryNotFound, root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", shared.ErrLibraryNotFound, root)
	}
	return nil
}

// Scan walks root and returns the items to process for mode.
//
// [models.ModeExisting] is not a scan mode; use [FindLyricFiles] instead.
func (s *Scanner) Scan(root string, mode models.ScanMode) (*ScanResult, error) {
	if mode == models.ModeExisting {
		return nil, fmt.Errorf("%w: scan mode %s", shared.ErrInvalidArgument, mode)
	}
	if err := CheckRoot(root); err != nil {
		return nil, err
	}

	result := &ScanResult{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsAudio(path) {
			return nil
		}

		result.TotalAudio++
		item, queued := s.consider(path, mode, result)
		if queued {
			result.Items = append(result.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("scan complete",
		"mode", mode, "audio", result.TotalAudio, "queued", len(result.Items),
		"skipped", result.Skipped, "missing_metadata", result.MissingMetadata)
	return result, nil
}

func (s *Scanner) consider(audioPath string, mode models.ScanMode, result *ScanResult) (models.WorkItem, bool) {
	lrcPath := LyricPath(audioPath)
	logger := s.logger.With("file", filepath.Base(audioPath))

	_, statErr := os.Stat(lrcPath)
	exists := statErr == nil

	upgrade := false
	switch mode {
	case models.ModeMissing:
		if exists {
			result.Skipped++
			return models.WorkItem{}, false
		}
	case models.ModeUpgrade:
		if !exists {
			return models.WorkItem{}, false
		}
		if lyrics.IsFileSynced(lrcPath) {
			result.Skipped++
			return models.WorkItem{}, false
		}
		upgrade = true
	}

	info, err := s.reader.ReadTrackInfo(audioPath)
	if err != nil {
		logger.Warn("could not read metadata", "error", err)
		result.MissingMetadata++
		return models.WorkItem{}, false
	}

	item, err := models.NewWorkItem(audioPath, lrcPath, info, upgrade)
	if err != nil {
		if errors.Is(err, shared.ErrMissingMetadata) {
			logger.Warn("missing metadata", "error", err)
		}
		result.MissingMetadata++
		return models.WorkItem{}, false
	}
	return item, true
}

// FindLyricFiles returns every lyric file under root in walk order.
func FindLyricFiles(root string) ([]string, error) {
	if err := CheckRoot(root); err != nil {
		return nil, err
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), LyricExt) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// AudioPathFor returns the existing audio file paired with a lyric file, trying the lower and
// upper case extension.
func AudioPathFor(lyricPath string) (string, bool) {
	stem := strings.TrimSuffix(lyricPath, filepath.Ext(lyricPath))
	for _, ext := range []string{AudioExt, strings.ToUpper(AudioExt)} {
		if _, err := os.Stat(stem + ext); err == nil {
			return stem + ext, true
		}
	}
	return "", false
}
