package tasks

import (
	"fmt"

	"github.com/desertthunder/lrcx/internal/library"
	"github.com/desertthunder/lrcx/internal/models"
)

// ProgressUpdate represents a progress event during a run.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data, a [models.JobResult] for completed jobs
}

// Operation phase enumeration
type Phase int

const (
	PhaseScan Phase = iota
	PhaseFetch
	PhaseExisting
	PhaseSummary
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scan"
	case PhaseFetch:
		return "fetch"
	case PhaseExisting:
		return "existing"
	case PhaseSummary:
		return "summary"
	default:
		return ""
	}
}

// Done reports whether the update closes out its phase.
func (u ProgressUpdate) Done() bool {
	return u.Total > 0 && u.Step >= u.Total
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
		// Channel full, drop this update
	}
}

// ScanUpdate reports a finished library scan.
func ScanUpdate(scan *library.ScanResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseScan,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Scanned %d audio files: %d queued, %d skipped", scan.TotalAudio, len(scan.Items), scan.Skipped),
		Data:    scan,
	}
}

func fetchStartUpdate(total, workers int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseFetch,
		Total:   total,
		Message: fmt.Sprintf("Processing %d songs with %d workers...", total, workers),
	}
}

func jobDoneUpdate(step, total int, res models.JobResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseFetch,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s %s", step, total, outcomeMark(res), res.Item.Name()),
		Data:    res,
	}
}

func existingStartUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseExisting,
		Total:   total,
		Message: fmt.Sprintf("Processing %d existing lyric files...", total),
	}
}

func existingDoneUpdate(step, total int, res models.JobResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseExisting,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s %s", step, total, outcomeMark(res), res.Item.Name()),
		Data:    res,
	}
}

func summaryUpdate(result *RunResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseSummary,
		Step:    1,
		Total:   1,
		Message: "Run complete",
		Data:    result,
	}
}

func outcomeMark(res models.JobResult) string {
	switch res.Outcome {
	case models.OutcomeFound, models.OutcomeUpgraded, models.OutcomeProcessed:
		return "✓"
	case models.OutcomeFailed:
		return "✗"
	default:
		return "·"
	}
}
