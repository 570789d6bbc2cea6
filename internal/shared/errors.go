package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrUnexpectedStatus   = fmt.Errorf("unexpected response status")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrLyricsNotFound     = fmt.Errorf("lyrics not found")

	// Library errors
	ErrLibraryNotFound = fmt.Errorf("library directory not found")
	ErrLibraryLocked   = fmt.Errorf("library is locked by another run")
	ErrMissingMetadata = fmt.Errorf("missing track metadata")
	ErrUnsupportedFile = fmt.Errorf("unsupported audio file")

	// Run errors
	ErrJobPanic    = fmt.Errorf("job panicked")
	ErrLyricsWrite = fmt.Errorf("failed to write lyric file")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
