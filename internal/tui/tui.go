// Package tui provides a Bubble Tea terminal user interface for pluck.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/YSSF8/pluck/internal/config"
	"github.com/YSSF8/pluck/internal/download"
	"github.com/YSSF8/pluck/internal/extract"
	pluckhttp "github.com/YSSF8/pluck/internal/http"
	"github.com/YSSF8/pluck/internal/library"
	"github.com/YSSF8/pluck/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
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

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateExtracting
	StateResults
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.EventLevel
}

// resultItem is one selectable row in the results list.
type resultItem struct {
	category model.Category
	url      string
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Extraction results
	set    *model.CategorizedMediaSet
	items  []resultItem
	cursor int

	// Collaborators
	extractor *extract.Extractor
	orch      *download.Orchestrator

	// Last terminal download outcome
	lastEvent download.Event

	// Options
	verbose bool

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "https://site.com/gallery or a direct media URL"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	client := pluckhttp.NewClientWithTimeout(settings.UserAgent,
		time.Duration(settings.HTTPTimeoutSeconds)*time.Second)
	lib := library.New(settings.LibraryPath, library.Options{
		TagAudio:         settings.TagAudioAssets,
		WriteThumbnails:  settings.WriteImageThumbnails,
		ThumbnailMaxSize: settings.ThumbnailMaxSize,
	})
	orch := download.NewOrchestrator(
		client,
		library.Writable(settings.LibraryPath),
		lib,
		settings.TempPath,
		settings.AlbumRoot,
	)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		extractor: extract.NewExtractor(client),
		orch:      orch,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ExtractDoneMsg is sent when the extraction completes.
	ExtractDoneMsg struct {
		Set *model.CategorizedMediaSet
		Err error
	}

	// DownloadEventMsg carries one orchestrator event.
	DownloadEventMsg struct {
		Event download.Event
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateResults, StateComplete, StateError:
				m.resetToInput()
			}

		case "enter":
			switch m.state {
			case StateInput:
				if m.textInput.Value() != "" {
					m.state = StateExtracting
					return m, tea.Batch(m.runExtraction(), m.spinner.Tick)
				}
			case StateResults:
				if len(m.items) > 0 {
					item := m.items[m.cursor]
					err := m.orch.Start(m.ctx, item.url, item.category)
					if errors.Is(err, download.ErrBusy) {
						m.appendLog("a download is already in progress", download.LevelWarning)
						return m, nil
					}
					if err != nil {
						m.appendLog(err.Error(), download.LevelError)
						return m, nil
					}
					m.state = StateDownloading
					return m, tea.Batch(m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
				}
			}

		case "up", "k":
			if m.state == StateResults && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateResults && m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "b":
			if (m.state == StateComplete || m.state == StateError) && m.set != nil {
				m.state = StateResults
			}

		case "q":
			if m.state == StateResults || m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.resetToInput()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ExtractDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.set = msg.Set
			m.items = flatten(msg.Set)
			m.cursor = 0
			m.state = StateResults
			if len(m.items) == 0 {
				m.appendLog("no media found on this page", download.LevelWarning)
			}
		}

	case DownloadEventMsg:
		event := msg.Event
		if event.Message != "" && (event.Level != download.LevelVerbose || m.verbose) {
			m.appendLog(event.Message, event.Level)
		}
		if event.Terminal() {
			m.lastEvent = event
			if event.State == model.JobStateSucceeded {
				m.state = StateComplete
			} else {
				m.state = StateError
				m.err = fmt.Errorf("%s", event.Message)
			}
			return m, nil
		}
		cmds = append(cmds, m.waitForEvent())

	case TickMsg:
		if m.state == StateDownloading {
			if _, fraction, ok := m.orch.Tracker().Current(); ok && fraction >= 0 {
				cmds = append(cmds, m.progress.SetPercent(fraction))
			}
			cmds = append(cmds, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) resetToInput() {
	m.state = StateInput
	m.logs = nil
	m.set = nil
	m.items = nil
	m.cursor = 0
	m.err = nil
	m.lastEvent = download.Event{}
	m.textInput.SetValue("")
	m.textInput.Focus()
}

func (m *Model) appendLog(message string, level download.EventLevel) {
	m.logs = append(m.logs, LogEntry{Message: message, Level: level})
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// flatten orders the set's categories into one selectable list.
func flatten(set *model.CategorizedMediaSet) []resultItem {
	var items []resultItem
	for _, cat := range []model.Category{model.CategoryImage, model.CategoryAudio, model.CategoryVideo} {
		for _, u := range set.URLs(cat) {
			items = append(items, resultItem{category: cat, url: u})
		}
	}
	return items
}

// runExtraction extracts media from the entered URL in the background.
func (m *Model) runExtraction() tea.Cmd {
	input := m.textInput.Value()
	return func() tea.Msg {
		set, err := m.extractor.Extract(m.ctx, input)
		return ExtractDoneMsg{Set: set, Err: err}
	}
}

// waitForEvent delivers the next orchestrator event to the UI.
func (m *Model) waitForEvent() tea.Cmd {
	events := m.orch.Events()
	return func() tea.Msg {
		return DownloadEventMsg{Event: <-events}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🔍 Pluck"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Extract and download media from webpages"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateExtracting:
		b.WriteString(m.viewExtracting())
	case StateResults:
		b.WriteString(m.viewResults())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a page URL or direct media link:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Library path: %s", m.settings.LibraryPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExtracting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning page for media..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	if m.set != nil {
		b.WriteString(successStyle.Render(fmt.Sprintf(
			"Found %d images, %d audio files, %d videos:",
			len(m.set.Images), len(m.set.Audios), len(m.set.Videos),
		)))
		b.WriteString("\n\n")
	}

	var lastCategory model.Category = model.CategoryUnclassified
	for i, item := range m.items {
		if item.category != lastCategory {
			b.WriteString(categoryStyle.Render(item.category.FolderName()))
			b.WriteString("\n")
			lastCategory = item.category
		}
		line := "  " + truncate(item.url, m.width-6)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸" + line[1:]))
		} else {
			b.WriteString(dimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	url, fraction, active := m.orch.Tracker().Current()

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Downloading"))
	if active {
		b.WriteString(dimStyle.Render(" " + truncate(url, m.width-20)))
	}
	b.WriteString("\n\n")

	if active && fraction >= 0 {
		b.WriteString(m.progress.ViewAs(fraction))
	} else {
		b.WriteString(dimStyle.Render("size unknown, downloading..."))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Saved!\n\n"+
			"File:  %s\n"+
			"Album: %s",
		m.lastEvent.Filename,
		m.lastEvent.Album,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: extract • v: verbose • esc: quit"
	case StateExtracting:
		return "ctrl+c: quit"
	case StateResults:
		return "↑/↓: select • enter: download • esc: new page • q: quit"
	case StateDownloading:
		return "ctrl+c: quit"
	case StateComplete, StateError:
		return "b: back to results • r: new page • q: quit"
	}
	return ""
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
