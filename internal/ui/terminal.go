package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertthunder/lrcx/internal/tasks"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PrintProgress writes one plain line per update until updates is closed.
//
// Used when the full-screen display is off. Job lines are colored only when color is set.
func PrintProgress(w io.Writer, updates <-chan tasks.ProgressUpdate, color bool) {
	for u := range updates {
		if u.Phase == tasks.PhaseSummary || u.Message == "" {
			continue
		}
		line := u.Message
		if color && u.Step > 0 {
			line = colorize(line)
		}
		fmt.Fprintln(w, line)
	}
}

func colorize(line string) string {
	for _, mark := range []string{"✓", "✗", "·"} {
		if i := strings.Index(line, mark); i >= 0 {
			return line[:i] + styles.Mark(mark) + line[i+len(mark):]
		}
	}
	return line
}
