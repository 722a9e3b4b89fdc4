package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/winston6800/Jobclick/internal/counter"
	"github.com/winston6800/Jobclick/internal/storage"
	"github.com/winston6800/Jobclick/internal/ui"
)

const recentDays = 14

type keyMap struct {
	Tap     key.Binding
	Reset   key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Reset, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tap, k.Reset}, {k.Refresh, k.Help, k.Quit}}
}

var defaultKeys = keyMap{
	Tap: key.NewBinding(
		key.WithKeys(" ", "+", "t"),
		key.WithHelp("space/+", "count one"),
	),
	Reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset today"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type boardModel struct {
	ctx context.Context
	svc *counter.Service

	width  int
	height int

	today   string
	history storage.History
	stats   counter.Stats

	// confirming gates the reset action behind an inline y/n prompt.
	confirming bool

	keys keyMap
	help help.Model

	lastLog string
	loading bool
	err     error
}

type tickMsg struct{ now time.Time }

type loadedMsg struct {
	snap *counter.Snapshot
	err  error
}

type tappedMsg struct {
	res *counter.TapResult
	err error
}

type resetDoneMsg struct {
	res *counter.ResetResult
	err error
}

func newBoardModel(ctx context.Context, svc *counter.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		today:   counter.Today(time.Now()),
		keys:    defaultKeys,
		help:    help.New(),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(m.today), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg{now: t} })
}

func (m boardModel) loadCmd(today string) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx, today)
		return loadedMsg{snap: snap, err: err}
	}
}

func (m boardModel) tapCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Tap(m.ctx, m.today)
		return tappedMsg{res: res, err: err}
	}
}

func (m boardModel) resetCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ResetToday(m.ctx, m.today)
		return resetDoneMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		// Day rollover: only act when the formatted date changes.
		d := counter.Today(msg.now)
		if d != m.today {
			m.today = d
			m.confirming = false
			m.lastLog = "New day: " + d
			return m, tea.Batch(m.loadCmd(d), tickCmd())
		}
		return m, tickCmd()
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.today = msg.snap.Today
		m.history = msg.snap.History
		m.stats = msg.snap.Stats
		if msg.snap.Warning != "" {
			m.lastLog = ui.Warn.Render(ui.IconWarn + " " + msg.snap.Warning)
		} else {
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		}
		return m, nil
	case tappedMsg:
		if msg.err != nil {
			m.lastLog = "Tap failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s today: %d", ui.Good.Render(ui.IconSend+" +1"), msg.res.Count)
		return m, m.loadCmd(m.today)
	case resetDoneMsg:
		if msg.err != nil {
			m.lastLog = "Reset failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s today reset (was %d)", ui.Warn.Render(ui.IconSweep), msg.res.Before)
		return m, m.loadCmd(m.today)
	case tea.KeyMsg:
		if m.confirming {
			m.confirming = false
			switch msg.String() {
			case "y", "Y":
				m.lastLog = "Resetting…"
				return m, m.resetCmd()
			default:
				m.lastLog = "Reset cancelled."
				return m, nil
			}
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd(m.today)
		case key.Matches(msg, m.keys.Tap):
			return m, m.tapCmd()
		case key.Matches(msg, m.keys.Reset):
			if counter.Count(m.history, m.today) == 0 {
				m.lastLog = "Today is already 0."
				return m, nil
			}
			m.confirming = true
			m.lastLog = ui.Warn.Render("Reset today's count to 0? (y/n)")
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.loading && len(m.history) == 0 {
		return "Jobclick — loading…"
	}
	return fmt.Sprintf("Jobclick | %s | Today: %d applications", m.today, counter.Count(m.history, m.today))
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Total: %d", m.stats.Total))
	lines = append(lines, fmt.Sprintf("- Last 7 days: %d", m.stats.Last7Days))
	if m.stats.Best.Date != "" {
		lines = append(lines, fmt.Sprintf("- Best day: %s (%d)", m.stats.Best.Date, m.stats.Best.Count))
	} else {
		lines = append(lines, "- Best day: (none)")
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Recent days")
	recent := m.history
	if len(recent) > recentDays {
		recent = recent[:recentDays]
	}
	if len(recent) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	scale := 1
	for _, rec := range recent {
		if rec.Count > scale {
			scale = rec.Count
		}
	}
	for _, rec := range recent {
		marker := "  "
		if rec.Date == m.today {
			marker = "> "
		}
		out = append(out, fmt.Sprintf("%s%s %3d %s", marker, rec.Date, rec.Count, countBar(rec.Count, scale, 20)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog + "\n" + m.help.View(m.keys)
}

func countBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
