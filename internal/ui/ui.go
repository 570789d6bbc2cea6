package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/lrcx/internal/formatter"
	"github.com/desertthunder/lrcx/internal/tasks"
)

// recentLimit is the number of job lines kept under the progress bar.
const recentLimit = 8

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ProgressView ViewState = iota
	ResultView
)

// RunFunc starts a run that reports through progress and returns when every job has finished.
type RunFunc func(ctx context.Context, progress chan<- tasks.ProgressUpdate) (*tasks.RunResult, error)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	cancel       context.CancelFunc
	view         ViewState
	title        string
	run          RunFunc
	width        int
	height       int
	bar          progress.Model
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	recent       []string
	resultList   list.Model
	help         help.Model
	keys         keyMap

	mu       sync.Mutex
	finished chan struct{}
	result   *tasks.RunResult
	err      error
}

// NewModel creates a new TUI model that executes run once started.
func NewModel(ctx context.Context, title string, run RunFunc) *Model {
	ctx, cancel := context.WithCancel(ctx)
	return &Model{
		ctx:      ctx,
		cancel:   cancel,
		view:     ProgressView,
		title:    title,
		run:      run,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		help:     help.New(),
		keys:     newKeyMap(),
		finished: make(chan struct{}),
	}
}

// Init starts the run in the background and begins listening for updates.
func (m *Model) Init() tea.Cmd {
	return m.startRun()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 4; w > 10 {
			m.bar.Width = min(w, 80)
		}
		if m.view == ResultView {
			m.resultList.SetSize(max(msg.Width-4, 40), m.listHeight())
		}
		return m, nil

	case tea.KeyMsg:
		if m.view == ResultView && m.resultList.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.quit) {
			m.cancel()
			return m, tea.Quit
		}

	case Msg:
		switch msg.kind {
		case MsgProgressUpdate:
			m.applyUpdate(msg.data.(tasks.ProgressUpdate))
			return m, m.waitForProgress()
		case MsgRunComplete:
			outcome := msg.data.(runOutcome)
			m.showResult(outcome.result, outcome.err)
			return m, nil
		}
	}

	if m.view == ResultView {
		var cmd tea.Cmd
		m.resultList, cmd = m.resultList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ProgressView:
		return m.renderProgress()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

// Outcome waits for the run to finish and returns its result.
//
// Safe to call after the program exits, including when the user quit early.
func (m *Model) Outcome() (*tasks.RunResult, error) {
	<-m.finished
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result, m.err
}

func (m *Model) startRun() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 64)

	go func() {
		result, err := m.run(m.ctx, m.progressChan)
		m.mu.Lock()
		m.result, m.err = result, err
		m.mu.Unlock()
		close(m.finished)
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	ch := m.progressChan
	return func() tea.Msg {
		if update, ok := <-ch; ok {
			return progressUpdateMsg(update)
		}
		result, err := m.Outcome()
		return runCompleteMsg(result, err)
	}
}

func (m *Model) applyUpdate(u tasks.ProgressUpdate) {
	m.progress = u
	if u.Step == 0 || u.Phase == tasks.PhaseSummary {
		return
	}
	m.recent = append(m.recent, u.Message)
	if len(m.recent) > recentLimit {
		m.recent = m.recent[len(m.recent)-recentLimit:]
	}
}

func (m *Model) showResult(result *tasks.RunResult, err error) {
	m.view = ResultView
	m.mu.Lock()
	m.result, m.err = result, err
	m.mu.Unlock()
	if result == nil {
		return
	}

	m.resultList = list.New(resultItems(result.Results), list.NewDefaultDelegate(), max(m.width-4, 40), m.listHeight())
	m.resultList.Title = fmt.Sprintf("Files (%d)", len(result.Results))
	m.resultList.SetShowHelp(false)
}

func (m *Model) listHeight() int {
	if h := m.height - 20; h > 5 {
		return h
	}
	return 10
}

// Percent returns the fraction of jobs reported so far.
func (m *Model) Percent() float64 {
	if m.progress.Total == 0 {
		return 0
	}
	return float64(m.progress.Step) / float64(m.progress.Total)
}

func (m *Model) renderProgress() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(m.title))
	b.WriteString("\n")

	switch m.progress.Phase {
	case tasks.PhaseScan:
		b.WriteString("Scanning library...")
	default:
		b.WriteString(fmt.Sprintf("%s %d/%d", m.bar.ViewAs(m.Percent()), m.progress.Step, m.progress.Total))
	}
	b.WriteString("\n\n")

	for _, line := range m.recent {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.quit}))
	return b.String()
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Run failed: %v\n\nPress q to quit", m.err))
	}
	if m.result == nil {
		return styles.err.Render("No result available\n\nPress q to quit")
	}

	title := styles.ok.Render("✓ Run Complete")
	if m.result.Summary.Errors > 0 {
		title = styles.warn.Render(fmt.Sprintf("Run complete with %d errors", m.result.Summary.Errors))
	}

	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.filter, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
		title,
		formatter.SummaryTable(m.result),
		m.resultList.View(),
		m.help.ShortHelpView(helpKeys),
	)
}

// Run executes the model as a full-screen program and returns the run's result once it has
// finished. Quitting early cancels jobs that have not started yet.
func Run(ctx context.Context, title string, run RunFunc) (*tasks.RunResult, error) {
	model := NewModel(ctx, title, run)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		model.cancel()
		model.Outcome()
		return nil, fmt.Errorf("error running TUI: %w", err)
	}
	return model.Outcome()
}
