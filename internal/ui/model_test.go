package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/probelab/latscope/internal/analyzer"
	"github.com/probelab/latscope/internal/config"
	"github.com/probelab/latscope/internal/models"
	"github.com/probelab/latscope/internal/stats"
)

func testResult() *analyzer.Result {
	records := []models.LatencyRecord{
		{OperationType: "add_order", LatencyNs: 1500},
		{OperationType: "add_order", LatencyNs: 2500},
		{OperationType: "cancel_order", LatencyNs: 800},
	}
	return &analyzer.Result{
		SourcePath:    "perf.csv",
		HasData:       true,
		Records:       records,
		Overall:       stats.Summarize(records),
		CategoryOrder: stats.Categories(records),
		Categories:    stats.SummarizeByCategory(records),
		Windows:       []models.Window{{StartIndex: 0, OpsPerSec: 625000}},
		AvgThroughput: 625000,
	}
}

func testModel() *Model {
	a := analyzer.New(&config.Config{WindowSize: 1000})
	return NewModel(a, testResult())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sized(m *Model) *Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(*Model)
}

func TestView_BeforeFirstResize(t *testing.T) {
	m := testModel()
	if !strings.Contains(m.View(), "Loading") {
		t.Error("pre-resize view missing loading indicator")
	}
}

func TestView_Overview(t *testing.T) {
	m := sized(testModel())

	view := m.View()
	if !strings.Contains(view, "Overview") {
		t.Error("navbar missing Overview tab")
	}
	if !strings.Contains(view, "Total Operations") {
		t.Error("overview missing stat lines")
	}
	if !strings.Contains(view, "perf.csv") {
		t.Error("status bar missing source path")
	}
}

func TestTabSwitching(t *testing.T) {
	m := sized(testModel())

	updated, _ := m.Update(keyPress('2'))
	m = updated.(*Model)
	if m.activeTab != tabOperations {
		t.Fatalf("activeTab = %v after pressing 2, want operations", m.activeTab)
	}
	if !strings.Contains(m.View(), "ADD_ORDER") {
		t.Error("operations tab missing table rows")
	}

	updated, _ = m.Update(keyPress('4'))
	m = updated.(*Model)
	if m.activeTab != tabTrades {
		t.Fatalf("activeTab = %v after pressing 4, want trades", m.activeTab)
	}
	if !strings.Contains(m.View(), "No trade data available") {
		t.Error("trades tab missing empty-state message")
	}
}

func TestTabCycling(t *testing.T) {
	m := sized(testModel())

	// Tab forward through all four tabs wraps back to the first.
	for i := 0; i < len(tabNames); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(*Model)
	}
	if m.activeTab != tabOverview {
		t.Errorf("activeTab = %v after a full cycle, want overview", m.activeTab)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(*Model)
	if m.activeTab != tabTrades {
		t.Errorf("activeTab = %v after shift+tab from overview, want trades", m.activeTab)
	}
}

func TestQuitKey(t *testing.T) {
	m := sized(testModel())

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestReloadDone_Error(t *testing.T) {
	m := sized(testModel())
	previous := m.result

	updated, _ := m.Update(reloadDoneMsg{err: errors.New("csv parse failed")})
	m = updated.(*Model)

	if m.result != previous {
		t.Error("failed reload replaced the previous result")
	}
	if !strings.Contains(m.View(), "reload failed") {
		t.Error("status bar missing reload error")
	}
}

func TestReloadDone_Success(t *testing.T) {
	m := sized(testModel())

	next := testResult()
	next.SourcePath = "perf-v2.csv"
	updated, _ := m.Update(reloadDoneMsg{result: next})
	m = updated.(*Model)

	if m.result != next {
		t.Error("successful reload did not swap the result in")
	}
	if !strings.Contains(m.View(), "perf-v2.csv") {
		t.Error("status bar still shows the old source path")
	}
}

func TestStatusBarHelp(t *testing.T) {
	m := sized(testModel())

	view := m.View()
	for _, hint := range []string{"scroll up", "scroll down", "re-run analysis", "quit"} {
		if !strings.Contains(view, hint) {
			t.Errorf("status bar help missing %q", hint)
		}
	}
}

func TestNoDataViews(t *testing.T) {
	a := analyzer.New(&config.Config{WindowSize: 1000})
	m := sized(NewModel(a, &analyzer.Result{SourcePath: "missing.csv"}))

	for _, tab := range []rune{'1', '2', '3', '4'} {
		updated, _ := m.Update(keyPress(tab))
		m = updated.(*Model)
		if !strings.Contains(m.View(), "No performance data loaded") {
			t.Errorf("tab %c missing empty-state message", tab)
		}
	}
}
