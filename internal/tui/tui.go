// Package tui provides a Bubble Tea terminal user interface for browsing a
// spotify-analysis report.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/spotify-analysis/internal/analysis"
	"github.com/handiism/spotify-analysis/internal/config"
	"github.com/handiism/spotify-analysis/internal/pipeline"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1DB954")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#191414")).
			Background(lipgloss.Color("#1DB954")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D")).
			Padding(0, 1)

	songStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateReport
	StateError
)

// Tab is one report view.
type Tab int

const (
	TabArtist Tab = iota
	TabOldest
	TabTotals
	TabYears
	tabCount
)

var tabNames = [tabCount]string{"Artist filter", "Oldest", "Totals", "By year"}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   pipeline.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	tab      Tab
	filter   textinput.Model
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logs     []LogEntry
	err      error

	result  *pipeline.Result
	matches []string

	// Analysis context
	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model for the given settings.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "artist name or part of it"
	ti.SetValue(settings.TargetArtist)
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DB954"))

	prog := progress.New(progress.WithSolidFill("#1DB954"), progress.WithoutPercentage())
	prog.Width = 40

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateLoading,
		filter:   ti,
		spinner:  sp,
		progress: prog,
		settings: settings,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.analyze())
}

// AnalyzeDoneMsg is sent when the dataset has been analyzed.
type AnalyzeDoneMsg struct {
	Result *pipeline.Result
	Logs   []LogEntry
	Err    error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 30
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		if m.progress.Width < 10 {
			m.progress.Width = 10
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit

		case "tab", "right":
			if m.state == StateReport {
				m.tab = (m.tab + 1) % tabCount
				return m, nil
			}

		case "shift+tab", "left":
			if m.state == StateReport {
				m.tab = (m.tab + tabCount - 1) % tabCount
				return m, nil
			}

		case "q":
			if m.state == StateError || (m.state == StateReport && m.tab != TabArtist) {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateError || (m.state == StateReport && m.tab != TabArtist) {
				m.state = StateLoading
				m.result = nil
				m.matches = nil
				m.logs = nil
				m.err = nil
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
				return m, tea.Batch(m.analyze(), m.spinner.Tick)
			}
		}

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case AnalyzeDoneMsg:
		m.logs = msg.Logs
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateReport
			m.result = msg.Result
			m.applyFilter()
		}
	}

	// Update filter input
	if m.state == StateReport && m.tab == TabArtist {
		before := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
		if m.filter.Value() != before {
			m.applyFilter()
		}
	}

	return m, tea.Batch(cmds...)
}

// applyFilter recomputes the songs credited to the filter text.
func (m *Model) applyFilter() {
	if m.result == nil {
		m.matches = nil
		return
	}
	m.matches = analysis.SongsByArtist(m.result.Songs, m.filter.Value())
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Spotify Top Songs"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.settings.InputPath))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateReport:
		b.WriteString(m.viewReport())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Analyzing dataset..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReport() string {
	var b strings.Builder

	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.tab {
	case TabArtist:
		b.WriteString(m.viewArtist())
	case TabOldest:
		b.WriteString(m.viewOldest())
	case TabTotals:
		b.WriteString(m.viewTotals())
	case TabYears:
		b.WriteString(m.viewYears())
	}

	return b.String()
}

func (m Model) viewArtist() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Artist:"))
	b.WriteString(" ")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("No songs match."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(successStyle.Render(fmt.Sprintf("%d song(s):", len(m.matches))))
	b.WriteString("\n")
	for _, title := range m.matches {
		b.WriteString(songStyle.Render("  ♪ " + title))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewOldest() string {
	var b strings.Builder

	report := m.result.Report
	b.WriteString(subtitleStyle.Render(report.OldestSongsKey() + ":"))
	b.WriteString("\n")
	for i, title := range report.OldestSongs {
		b.WriteString(songStyle.Render(fmt.Sprintf("  %d. %s", i+1, title)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewTotals() string {
	var b strings.Builder

	report := m.result.Report
	b.WriteString(subtitleStyle.Render(report.ArtistTotalsKey() + ":"))
	b.WriteString("\n")

	nameWidth := 0
	for _, total := range report.ArtistTotals {
		nameWidth = max(nameWidth, lipgloss.Width(total.Artist))
	}
	for _, total := range report.ArtistTotals {
		b.WriteString(fmt.Sprintf("  %-*s  %s\n", nameWidth, total.Artist, infoStyle.Render(fmt.Sprintf("%.3f", total.Streams))))
	}

	return b.String()
}

func (m Model) viewYears() string {
	var b strings.Builder

	histogram := m.result.Report.SongsPerYear
	b.WriteString(subtitleStyle.Render("Popular songs by release year:"))
	b.WriteString("\n")

	maxCount := 0
	for _, yc := range histogram {
		maxCount = max(maxCount, yc.Count)
	}
	for _, yc := range histogram {
		var percent float64
		if maxCount > 0 {
			percent = float64(yc.Count) / float64(maxCount)
		}
		b.WriteString(fmt.Sprintf("  %s %s %d\n", yc.Label(), m.progress.ViewAs(percent), yc.Count))
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(m.renderLogs())
	b.WriteString("\n")
	b.WriteString(errorStyle.Render("Analysis failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case pipeline.LevelError:
			style = errorStyle
			prefix = "✗"
		case pipeline.LevelWarning:
			style = warningStyle
			prefix = "!"
		case pipeline.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case pipeline.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			continue
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateLoading:
		return "esc: cancel"
	case StateReport:
		if m.tab == TabArtist {
			return "type to filter • tab: next view • esc: quit"
		}
		return "tab/←/→: switch view • r: reload • q: quit"
	case StateError:
		return "r: retry • q: quit"
	}
	return ""
}

// analyze runs the dataset analysis in the background.
func (m Model) analyze() tea.Cmd {
	ctx, settings := m.ctx, m.settings
	return func() tea.Msg {
		var logs []LogEntry
		runner := pipeline.NewRunner(settings, func(event pipeline.ProgressEvent) {
			logs = append(logs, LogEntry{Message: event.Message, Level: event.Level})
		})

		result, err := runner.Analyze(ctx)
		return AnalyzeDoneMsg{Result: result, Logs: logs, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
