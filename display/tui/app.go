// Package tui implements the interactive dashboard: a tabbed bubbletea
// program over the collector snapshots, with history charts, a sortable
// process table, and a confirm-then-kill workflow.
//
// The Update loop is the only writer of model state. Snapshots arrive as
// messages from the collector runner; input transitions apply immediately
// and never wait on the next poll.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/systop/collectors/system"
	"gitlab.com/tinyland/lab/systop/config"
	"gitlab.com/tinyland/lab/systop/internal/format"
	"gitlab.com/tinyland/lab/systop/internal/history"
	"gitlab.com/tinyland/lab/systop/internal/procctl"
	"gitlab.com/tinyland/lab/systop/internal/proctable"
)

// tab identifies one dashboard view.
type tab int

const (
	tabOverview tab = iota
	tabProcesses
	tabNetwork
	tabDisks
)

// next returns the successor in the tab cycle. The cycle order is an
// explicit contract, not index arithmetic.
func (t tab) next() tab {
	switch t {
	case tabOverview:
		return tabProcesses
	case tabProcesses:
		return tabNetwork
	case tabNetwork:
		return tabDisks
	default:
		return tabOverview
	}
}

// prev returns the predecessor in the tab cycle.
func (t tab) prev() tab {
	switch t {
	case tabOverview:
		return tabDisks
	case tabProcesses:
		return tabOverview
	case tabNetwork:
		return tabProcesses
	default:
		return tabNetwork
	}
}

// String returns the tab's display title.
func (t tab) String() string {
	switch t {
	case tabOverview:
		return "Overview"
	case tabProcesses:
		return "Processes"
	case tabNetwork:
		return "Network"
	case tabDisks:
		return "Disks"
	default:
		return "Unknown"
	}
}

// allTabs is the header display order.
var allTabs = []tab{tabOverview, tabProcesses, tabNetwork, tabDisks}

// statusTTL is how long a transient status message stays in the footer.
const statusTTL = 4 * time.Second

// Model is the bubbletea model for the dashboard. All mutation happens in
// Update; View only reads.
type Model struct {
	cfg  *config.Config
	keys keyMap

	width  int
	height int

	activeTab tab

	// Metric state, replaced wholesale per snapshot.
	snapshot    *system.Snapshot
	history     *history.Store
	rates       history.RateTracker
	procs       *proctable.Table
	lastUpdated time.Time

	kill killState

	terminator procctl.Terminator
	refresher  Refresher
	refreshing bool

	// Transient footer message.
	status      string
	statusIsErr bool
	statusUntil time.Time

	logger *slog.Logger

	// now is injectable so tests control status expiry.
	now func() time.Time
}

// NewModel creates the dashboard model. refresher may be nil, in which case
// manual refresh is disabled; terminator may be nil to disable the kill
// workflow (read-only mode).
func NewModel(cfg *config.Config, refresher Refresher, terminator procctl.Terminator, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		cfg:        cfg,
		keys:       defaultKeyMap(),
		activeTab:  tabOverview,
		history:    history.NewStore(cfg.Monitor.HistorySamples),
		procs:      proctable.New(),
		terminator: terminator,
		refresher:  refresher,
		logger:     logger,
		now:        time.Now,
	}
}

// Init starts the housekeeping tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Display.TickInterval.Duration)
}

// Update is the single state mutation entry point.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SnapshotMsg:
		m.handleSnapshot(msg)
		return m, nil

	case refreshDoneMsg:
		m.refreshing = false
		m.handleSnapshot(msg.msg)
		if msg.msg.Err == nil {
			m.setStatus("refreshed", false)
		}
		return m, nil

	case killResultMsg:
		if msg.err != nil {
			m.logger.Warn("terminate failed", "pid", msg.pid, "error", msg.err)
			m.setStatus("kill failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("SIGTERM sent", false)
		}
		return m, nil

	case tickMsg:
		if m.status != "" && m.now().After(m.statusUntil) {
			m.status = ""
		}
		return m, tickCmd(m.cfg.Display.TickInterval.Duration)
	}

	return m, nil
}

// handleKey applies one input transition.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending confirmation captures the keyboard: only confirm, cancel,
	// quit, and tab switches (which cancel) are honored.
	if m.kill.phase == killPendingConfirm {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			if m.kill.confirm() && m.terminator != nil {
				return m, killCmd(m.terminator, m.kill.pid)
			}
			m.kill.reset()
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			m.kill.cancel()
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.kill.cancel()
			m.activeTab = m.activeTab.next()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.kill.cancel()
			m.activeTab = m.activeTab.prev()
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = m.activeTab.next()

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = m.activeTab.prev()

	case key.Matches(msg, m.keys.Tab1):
		m.activeTab = tabOverview
	case key.Matches(msg, m.keys.Tab2):
		m.activeTab = tabProcesses
	case key.Matches(msg, m.keys.Tab3):
		m.activeTab = tabNetwork
	case key.Matches(msg, m.keys.Tab4):
		m.activeTab = tabDisks

	case key.Matches(msg, m.keys.Up):
		if m.activeTab == tabProcesses {
			m.procs.MoveSelection(-1)
		}

	case key.Matches(msg, m.keys.Down):
		if m.activeTab == tabProcesses {
			m.procs.MoveSelection(1)
		}

	case key.Matches(msg, m.keys.Sort):
		if m.activeTab == tabProcesses {
			m.procs.CycleSort()
			m.setStatus("sort: "+m.procs.SortKey().String(), false)
		}

	case key.Matches(msg, m.keys.Refresh):
		if m.refresher != nil && !m.refreshing {
			m.refreshing = true
			return m, refreshCmd(m.refresher, system.CollectorName)
		}

	case key.Matches(msg, m.keys.Kill):
		if m.activeTab == tabProcesses {
			if row, ok := m.procs.Selected(); ok {
				m.kill.request(row.PID, row.Name)
			}
		}
	}

	return m, nil
}

// handleSnapshot folds one collection result into the model. A failed cycle
// keeps the previous metrics on screen and only surfaces a transient error.
func (m *Model) handleSnapshot(msg SnapshotMsg) {
	if msg.Err != nil {
		m.setStatus("metrics unavailable: "+msg.Err.Error(), true)
		return
	}
	if msg.Snapshot == nil {
		return
	}
	m.applySnapshot(msg.Snapshot)
}

// applySnapshot pushes derived series into history, replaces the process
// rows, and resolves kill-workflow transitions tied to the process set. Tab
// selection and sort key are untouched.
func (m *Model) applySnapshot(snap *system.Snapshot) {
	m.history.Push(history.SeriesCPU, snap.CPUPercent)
	m.history.Push(history.SeriesMemory, snap.MemoryPercent())

	if rx, tx, ok := m.rates.Update(snap.NetworkRxBytes, snap.NetworkTxBytes, snap.Timestamp); ok {
		m.history.Push(history.SeriesNetRx, rx)
		m.history.Push(history.SeriesNetTx, tx)
	}

	rows := make([]proctable.Row, len(snap.Processes))
	for i, p := range snap.Processes {
		rows[i] = proctable.Row{
			PID:         p.PID,
			Name:        p.Name,
			CPUPercent:  p.CPUPercent,
			MemoryBytes: p.MemoryBytes,
			Status:      p.Status,
		}
	}
	m.procs.SetRows(rows)

	m.snapshot = snap
	m.lastUpdated = snap.Timestamp

	switch m.kill.phase {
	case killPendingConfirm:
		// The target can vanish on its own before confirmation; it can no
		// longer be targeted.
		if !m.procs.Contains(m.kill.pid) {
			m.setStatus("process exited before confirmation", false)
			m.kill.reset()
		}
	case killIssued:
		if !m.procs.Contains(m.kill.pid) {
			m.setStatus("process terminated", false)
		}
		m.kill.reset()
	}
}

// setStatus records a transient footer message.
func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
	m.statusUntil = m.now().Add(statusTTL)
}

// View renders the full frame: tab header, active tab body, footer.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	header := m.renderTabs(width)
	footer := m.renderFooter(width)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	switch m.activeTab {
	case tabOverview:
		body = m.renderOverview(width)
	case tabProcesses:
		body = m.renderProcesses(width, bodyHeight)
	case tabNetwork:
		body = m.renderNetwork(width)
	case tabDisks:
		body = m.renderDisks(width)
	}

	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderTabs draws the tab bar.
func (m Model) renderTabs(width int) string {
	cells := make([]string, 0, len(allTabs))
	for _, t := range allTabs {
		style := styleInactiveTab
		if t == m.activeTab {
			style = styleActiveTab
		}
		cells = append(cells, style.Render(t.String()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return styleHeader.Width(width).Render(bar)
}

// renderFooter draws the confirmation prompt, transient status, or the key
// help plus freshness line.
func (m Model) renderFooter(width int) string {
	var line string
	switch {
	case m.kill.phase == killPendingConfirm:
		line = styleStatusInfo.Render(m.kill.prompt())
	case m.status != "":
		style := styleStatusInfo
		if m.statusIsErr {
			style = styleStatusError
		}
		line = style.Render(m.status)
	default:
		parts := make([]string, 0, 8)
		for _, b := range m.keys.ShortHelp() {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
		freshness := "waiting for data"
		if !m.lastUpdated.IsZero() {
			freshness = "updated " + format.TimeSince(m.lastUpdated)
		}
		line = styleFooter.Render(strings.Join(parts, " · ") + "  |  " + freshness)
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}
