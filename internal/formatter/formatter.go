// package formatter renders run summaries and writes run reports (JSON, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
	"github.com/desertthunder/lrcx/internal/tasks"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Report formats
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// SummaryRow is one labelled count in a run summary.
type SummaryRow struct {
	Label string
	Count int
}

// SummaryRows returns the labelled counts for a run, worded for its mode.
func SummaryRows(r *tasks.RunResult) []SummaryRow {
	s := r.Summary
	var rows []SummaryRow

	switch r.Mode {
	case models.ModeExisting:
		rows = append(rows, SummaryRow{"Lyric files", r.Queued}, SummaryRow{"Romanized files", s.Romanized})
		if r.Embed {
			rows = append(rows, SummaryRow{"Embedded into FLAC", s.Embedded})
		}
		return append(rows, SummaryRow{"Errors", s.Errors})
	case models.ModeUpgrade:
		rows = append(rows,
			SummaryRow{"Skipped (Already Synced)", r.Skipped},
			SummaryRow{"Upgraded to Synced", s.Upgraded},
			SummaryRow{"Could not find upgrade", s.NotFound},
		)
	default:
		rows = append(rows,
			SummaryRow{"Skipped (Existing LRC)", r.Skipped},
			SummaryRow{"Downloaded New", s.Found},
			SummaryRow{"Not found", s.NotFound},
		)
	}

	if r.MissingMetadata > 0 {
		rows = append(rows, SummaryRow{"Missing metadata", r.MissingMetadata})
	}
	if r.Romanize {
		rows = append(rows, SummaryRow{"Romanized", s.Romanized})
	}
	if r.Embed {
		rows = append(rows, SummaryRow{"Embedded into FLAC", s.Embedded})
	}
	return append(rows, SummaryRow{"Errors", s.Errors})
}

// SummaryTable renders the run summary as a rounded table.
func SummaryTable(r *tasks.RunResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("Summary (%s)", r.Mode))
	tw.AppendHeader(table.Row{"Result", "Count"})
	for _, row := range SummaryRows(r) {
		tw.AppendRow(table.Row{row.Label, row.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// ReportItem is the per-file record of a run report.
type ReportItem struct {
	AudioPath string `json:"audio_path,omitempty"`
	LyricPath string `json:"lyric_path"`
	Artist    string `json:"artist,omitempty"`
	Title     string `json:"title,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Outcome   string `json:"outcome"`
	Source    string `json:"source,omitempty"`
	Synced    bool   `json:"synced"`
	Romanized bool   `json:"romanized"`
	Embedded  bool   `json:"embedded"`
	Error     string `json:"error,omitempty"`
}

// Report is the serialized form of a run.
type Report struct {
	*tasks.RunResult
	Elapsed string       `json:"elapsed"`
	Items   []ReportItem `json:"items"`
}

// NewReport flattens a run result for serialization.
func NewReport(r *tasks.RunResult) *Report {
	report := &Report{
		RunResult: r,
		Elapsed:   r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String(),
		Items:     make([]ReportItem, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		item := ReportItem{
			AudioPath: res.Item.AudioPath,
			LyricPath: res.Item.LyricPath,
			Artist:    res.Item.Artist,
			Title:     res.Item.Title,
			Duration:  res.Item.Duration,
			Outcome:   res.Outcome.String(),
			Source:    res.Source,
			Synced:    res.Synced,
			Romanized: res.Romanized,
			Embedded:  res.Embedded,
		}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		report.Items = append(report.Items, item)
	}
	return report
}

// ToJSON renders a run report as indented JSON.
func ToJSON(r *tasks.RunResult) ([]byte, error) {
	return json.MarshalIndent(NewReport(r), "", "  ")
}

// ToCSV renders the per-file records with columns: Audio, Lyric, Artist, Title, Duration, Outcome, Source, Synced, Romanized, Embedded, Error
func ToCSV(r *tasks.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Audio", "Lyric", "Artist", "Title", "Duration", "Outcome", "Source", "Synced", "Romanized", "Embedded", "Error"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range NewReport(r).Items {
		record := []string{
			item.AudioPath,
			item.LyricPath,
			item.Artist,
			item.Title,
			strconv.Itoa(item.Duration),
			item.Outcome,
			item.Source,
			strconv.FormatBool(item.Synced),
			strconv.FormatBool(item.Romanized),
			strconv.FormatBool(item.Embedded),
			item.Error,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

// ToMarkdown renders the summary and per-file outcomes as Markdown tables.
func ToMarkdown(r *tasks.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	report := NewReport(r)

	buf.WriteString(fmt.Sprintf("# lrcx run %s\n\n", r.ID))
	buf.WriteString(fmt.Sprintf("**Mode**: %s\n", r.Mode))
	buf.WriteString(fmt.Sprintf("**Started**: %s\n", r.StartedAt.Format(time.RFC3339)))
	buf.WriteString(fmt.Sprintf("**Elapsed**: %s\n\n", report.Elapsed))

	buf.WriteString("## Summary\n\n")
	summary := table.NewWriter()
	summary.AppendHeader(table.Row{"Result", "Count"})
	for _, row := range SummaryRows(r) {
		summary.AppendRow(table.Row{row.Label, row.Count})
	}
	buf.WriteString(summary.RenderMarkdown())
	buf.WriteString("\n\n")

	if len(report.Items) == 0 {
		return buf.Bytes(), nil
	}

	buf.WriteString("## Files\n\n")
	files := table.NewWriter()
	files.AppendHeader(table.Row{"#", "File", "Artist", "Title", "Outcome", "Synced", "Note"})
	for i, item := range report.Items {
		name := filepath.Base(item.LyricPath)
		if item.AudioPath != "" {
			name = filepath.Base(item.AudioPath)
		}
		files.AppendRow(table.Row{i + 1, name, item.Artist, item.Title, item.Outcome, yesNo(item.Synced), note(item)})
	}
	buf.WriteString(files.RenderMarkdown())
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

func note(item ReportItem) string {
	var parts []string
	if item.Romanized {
		parts = append(parts, "romanized")
	}
	if item.Embedded {
		parts = append(parts, "embedded")
	}
	if item.Error != "" {
		parts = append(parts, item.Error)
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// WriteReport writes a run report to path in the given format (json by default).
func WriteReport(r *tasks.RunResult, format, path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(format) {
	case "", FormatJSON:
		data, err = ToJSON(r)
	case FormatCSV:
		data, err = ToCSV(r)
	case FormatMarkdown, "md":
		data, err = ToMarkdown(r)
	default:
		return fmt.Errorf("%w: report format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
