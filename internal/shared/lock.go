package shared

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock guards a library root against concurrent runs.
//
// The lock file lives in the temp directory so the library itself is never written to.
type RunLock struct {
	path string
	lock *flock.Flock
}

// NewRunLock returns an unlocked [RunLock] for the library at root.
func NewRunLock(root string) *RunLock {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	sum := sha1.Sum([]byte(abs))
	path := filepath.Join(os.TempDir(), fmt.Sprintf("lrcx-%s.lock", hex.EncodeToString(sum[:8])))
	return &RunLock{path: path, lock: flock.New(path)}
}

// Path returns the lock file location.
func (l *RunLock) Path() string { return l.path }

// Acquire takes the lock without blocking. It fails with [ErrLibraryLocked] when another process holds it.
func (l *RunLock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLibraryLocked, l.path)
	}
	return nil
}

// Release drops the lock. Calling it on an unlocked RunLock is a no-op.
func (l *RunLock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
