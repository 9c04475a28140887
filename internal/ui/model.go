// Package ui implements the interactive Bubble Tea dashboard over a
// computed analysis result. The dashboard never mutates the result; a
// refresh runs the whole batch pipeline again and swaps in the new result.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/probelab/latscope/internal/analyzer"
)

// tabID identifies a dashboard tab.
type tabID int

const (
	tabOverview tabID = iota
	tabOperations
	tabThroughput
	tabTrades
)

var tabNames = []string{"Overview", "Operations", "Throughput", "Trades"}

// reloadDoneMsg carries the outcome of a re-run of the analysis.
type reloadDoneMsg struct {
	result *analyzer.Result
	err    error
}

// Model is the dashboard's Bubble Tea model.
type Model struct {
	analyzer *analyzer.Analyzer
	result   *analyzer.Result

	activeTab tabID
	viewport  viewport.Model
	opsTable  table.Model
	spinner   spinner.Model

	keys   keyMap
	styles styles

	watching    bool
	fileChanges <-chan struct{}

	loading bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewModel builds the dashboard model around an already computed result.
func NewModel(a *analyzer.Analyzer, res *analyzer.Result) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primary)

	m := &Model{
		analyzer: a,
		result:   res,
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
		viewport: viewport.New(0, 0),
		spinner:  sp,
	}
	m.opsTable = newOpsTable(res)
	return m
}

func newOpsTable(res *analyzer.Result) table.Model {
	columns := []table.Column{
		{Title: "Operation", Width: 16},
		{Title: "Count", Width: 10},
		{Title: "Mean μs", Width: 10},
		{Title: "Median μs", Width: 10},
		{Title: "P95 μs", Width: 10},
		{Title: "P99 μs", Width: 10},
	}

	var rows []table.Row
	if res != nil && res.HasData {
		for _, op := range res.CategoryOrder {
			s := res.Categories[op]
			rows = append(rows, table.Row{
				strings.ToUpper(op),
				fmt.Sprintf("%d", s.Count),
				fmt.Sprintf("%.3f", s.MeanUs()),
				fmt.Sprintf("%.3f", s.MedianUs()),
				fmt.Sprintf("%.3f", s.P95Us()),
				fmt.Sprintf("%.3f", s.P99Us()),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).Foreground(primary).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(subtle)
	ts.Selected = ts.Selected.Foreground(lipgloss.Color("252")).Background(bgLight).Bold(true)
	t.SetStyles(ts)

	return t
}

// Init starts the spinner and, in watch mode, the file-change wait loop.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.watching && m.fileChanges != nil {
		cmds = append(cmds, waitForFileChange(m.fileChanges))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fileChangedMsg:
		cmds := []tea.Cmd{m.reload()}
		if m.fileChanges != nil {
			cmds = append(cmds, waitForFileChange(m.fileChanges))
		}
		return m, tea.Batch(cmds...)

	case reloadDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.result = msg.result
			m.opsTable = newOpsTable(msg.result)
			m.resize()
		}
		m.refreshViewport()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab1):
		m.switchTab(tabOverview)
	case key.Matches(msg, m.keys.Tab2):
		m.switchTab(tabOperations)
	case key.Matches(msg, m.keys.Tab3):
		m.switchTab(tabThroughput)
	case key.Matches(msg, m.keys.Tab4):
		m.switchTab(tabTrades)

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(tabID((int(m.activeTab) + 1) % len(tabNames)))
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(tabID((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reload()

	default:
		// Scrolling and table navigation go to the active tab's widget.
		var cmd tea.Cmd
		if m.activeTab == tabOperations {
			m.opsTable, cmd = m.opsTable.Update(msg)
		} else {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) switchTab(tab tabID) {
	m.activeTab = tab
	m.refreshViewport()
}

// reload re-runs the full batch analysis off the event loop.
func (m *Model) reload() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true

	a := m.analyzer
	path := m.result.SourcePath
	return func() tea.Msg {
		res, err := a.Run(path)
		if err == nil {
			a.CheckAlert(res)
		}
		return reloadDoneMsg{result: res, err: err}
	}
}

func (m *Model) resize() {
	contentHeight := m.height - 4
	if contentHeight < 0 {
		contentHeight = 0
	}
	m.viewport.Width = m.width
	m.viewport.Height = contentHeight

	tableHeight := contentHeight - 4
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.opsTable.SetHeight(tableHeight)
}

// refreshViewport re-renders the active tab's content into the viewport.
func (m *Model) refreshViewport() {
	switch m.activeTab {
	case tabOverview:
		m.viewport.SetContent(m.renderOverview())
	case tabThroughput:
		m.viewport.SetContent(m.renderThroughput())
	case tabTrades:
		m.viewport.SetContent(m.renderTrades())
	}
	m.viewport.GotoTop()
}

// View renders the dashboard.
func (m *Model) View() string {
	if !m.ready {
		return m.styles.Content.Render(fmt.Sprintf("%s Loading...", m.spinner.View()))
	}

	var b strings.Builder
	b.WriteString(m.renderNavbar())
	b.WriteString("\n")

	if m.activeTab == tabOperations {
		b.WriteString(m.renderOperations())
	} else {
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *Model) renderNavbar() string {
	var tabs []string
	for i, name := range tabNames {
		if tabID(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(fmt.Sprintf("[%d] %s", i+1, name)))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(fmt.Sprintf(" %d  %s", i+1, name)))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return m.styles.TabBar.Width(m.width).Render(bar)
}

func (m *Model) renderStatusBar() string {
	var parts []string

	if m.loading {
		parts = append(parts, fmt.Sprintf("%s re-running analysis", m.spinner.View()))
	} else if m.err != nil {
		parts = append(parts, m.styles.Error.Render(fmt.Sprintf("reload failed: %v", m.err)))
	} else if m.result != nil {
		parts = append(parts, m.styles.Subtle.Render(m.result.SourcePath))
	}

	if m.watching {
		parts = append(parts, m.styles.Success.Render("watching"))
	}

	parts = append(parts, m.styles.Help.Render(m.helpLine()))
	return m.styles.StatusBar.Render(strings.Join(parts, "  "))
}

// helpLine builds the status bar hint text from the keymap bindings.
func (m *Model) helpLine() string {
	bindings := []key.Binding{
		m.keys.Tab1, m.keys.NextTab, m.keys.Up, m.keys.Down, m.keys.Refresh, m.keys.Quit,
	}
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// Run starts the dashboard program. With watch enabled it reloads the
// analysis whenever the input file is rewritten.
func Run(a *analyzer.Analyzer, res *analyzer.Result, watch bool) error {
	m := NewModel(a, res)

	var watcher *fsnotify.Watcher
	if watch {
		w, changes, err := watchFile(res.SourcePath)
		if err != nil {
			return fmt.Errorf("watch %s: %w", res.SourcePath, err)
		}
		watcher = w
		m.watching = true
		m.fileChanges = changes
	}
	if watcher != nil {
		defer func() { _ = watcher.Close() }()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}
