package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treygilliland/zootype/internal/corpus"
	"github.com/treygilliland/zootype/internal/driver"
	"github.com/treygilliland/zootype/internal/engine"
	"github.com/treygilliland/zootype/internal/stats"
)

const (
	eventBuffer   = 128
	deltaBuffer   = 64
	curveBucket   = time.Second
	curveSmooth   = 3
	contentShare  = 0.70
	minFooterRows = 3
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	statLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Options selects the session behavior for the typing UI.
type Options struct {
	Policy    engine.Policy
	TimeLimit time.Duration // zero means word-count mode
}

type view int

const (
	viewTyping view = iota
	viewResults
)

type deltaMsg engine.RenderDelta

type sessionDoneMsg struct {
	report stats.Report
	err    error
}

// Model implements the Bubble Tea typing UI. Key capture happens in
// Update; events flow through an SPSC channel to a driver goroutine that
// owns the session, and render deltas come back through a bounded
// drop-oldest queue.
type Model struct {
	opts     Options
	generate func() string

	width  int
	height int

	text   string
	corpus *corpus.Corpus
	sess   *engine.Session
	events chan engine.KeyEvent
	sink   *driver.DropOldest

	cells  []engine.CellState
	cursor int
	phase  engine.Phase

	view      view
	report    stats.Report
	sparkline string
	err       error

	countdown timer.Model
	bar       progress.Model

	lastWPM float64
	lastAcc float64
	hasLast bool
}

// NewModel constructs a typing TUI model. generate supplies the practice
// text for each round.
func NewModel(opts Options, generate func() string) *Model {
	m := &Model{
		opts:     opts,
		generate: generate,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startRound(m.generate())
}

func (m *Model) startRound(text string) tea.Cmd {
	c, err := corpus.New(text)
	if err != nil {
		m.err = fmt.Errorf("failed to build corpus: %w", err)
		return nil
	}
	sess, err := engine.Begin(c, m.opts.Policy)
	if err != nil {
		m.err = fmt.Errorf("failed to begin session: %w", err)
		return nil
	}

	m.text = text
	m.corpus = c
	m.sess = sess
	m.events = make(chan engine.KeyEvent, eventBuffer)
	m.sink = driver.NewDropOldest(deltaBuffer)
	m.cells = make([]engine.CellState, c.Len())
	m.cursor = 0
	m.phase = engine.PhaseNotStarted
	m.view = viewTyping
	m.sparkline = ""

	cmds := []tea.Cmd{
		runDriver(sess, m.events, m.sink),
		waitDelta(m.sink.Deltas()),
	}
	if m.opts.TimeLimit > 0 {
		m.countdown = timer.NewWithInterval(m.opts.TimeLimit, time.Second)
		cmds = append(cmds, m.countdown.Init())
	}
	return tea.Batch(cmds...)
}

func runDriver(sess *engine.Session, events <-chan engine.KeyEvent, sink driver.Sink) tea.Cmd {
	return func() tea.Msg {
		report, err := driver.Run(context.Background(), sess, events, sink)
		return sessionDoneMsg{report: report, err: err}
	}
}

func waitDelta(deltas <-chan engine.RenderDelta) tea.Cmd {
	return func() tea.Msg {
		return deltaMsg(<-deltas)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = m.contentWidth()
		return m, nil

	case timer.TickMsg, timer.StartStopMsg:
		if m.opts.TimeLimit <= 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		// The clock is a collaborator: it ends the session by feeding a
		// synthetic interrupt, never by touching the engine.
		m.sendEvent(engine.Interrupt(time.Now()))
		return m, nil

	case deltaMsg:
		return m.applyDelta(engine.RenderDelta(msg))

	case sessionDoneMsg:
		return m.finishRound(msg)

	case tea.KeyMsg:
		if m.err != nil {
			return m, tea.Quit
		}
		if m.view == viewResults {
			return m.handleResultsKey(msg)
		}
		return m.handleTypingKey(msg)

	default:
		return m, nil
	}
}

func (m *Model) applyDelta(d engine.RenderDelta) (tea.Model, tea.Cmd) {
	for i := d.From; i < d.To && i < len(m.cells); i++ {
		m.cells[i] = d.Cells[i-d.From]
	}
	m.cursor = d.Cursor
	m.phase = d.Phase
	if d.Terminal() {
		// The driver is about to deliver the report; stop re-arming.
		return m, nil
	}
	return m, waitDelta(m.sink.Deltas())
}

func (m *Model) finishRound(msg sessionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logErrf("session failed: %v\n", msg.err)
		m.err = msg.err
		return m, tea.Quit
	}
	m.report = msg.report
	m.view = viewResults
	m.sparkline = roundSparkline(m.sess)
	m.lastWPM = msg.report.WPM
	m.lastAcc = msg.report.Accuracy
	m.hasLast = true
	return m, nil
}

// roundSparkline plots per-second WPM over the finished round. The
// session is safe to read here: its driver goroutine has returned.
func roundSparkline(sess *engine.Session) string {
	if sess == nil || sess.StartedAt().IsZero() {
		return ""
	}
	var samples []stats.Sample
	for _, tc := range sess.Log() {
		if tc.Kind != engine.KindInsert {
			continue
		}
		samples = append(samples, stats.Sample{At: tc.At, Correct: tc.Correct})
	}
	series := stats.WPMSeries(samples, sess.StartedAt(), curveBucket)
	if len(series) < 2 {
		return ""
	}
	return stats.Sparkline(stats.MovingAverage(series, curveSmooth))
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.sendEvent(engine.Interrupt(now))
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		m.sendEvent(engine.Backspace(now))
		return m, nil
	case tea.KeySpace:
		m.sendEvent(engine.Insert(' ', now))
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.sendEvent(engine.Insert(r, now))
		}
		return m, nil
	default:
		return m, nil
	}
}

// sendEvent forwards a key event to the driver without ever blocking the
// UI loop; once the session is terminal the driver is gone and stragglers
// are dropped.
func (m *Model) sendEvent(ev engine.KeyEvent) {
	if m.phase == engine.PhaseFinished || m.phase == engine.PhaseAborted {
		return
	}
	select {
	case m.events <- ev:
	default:
	}
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case msg.Type == tea.KeyEnter:
		return m, m.startRound(m.generate())
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		switch msg.Runes[0] {
		case 'n', 'N':
			return m, m.startRound(m.generate())
		case 'r', 'R':
			return m, m.startRound(m.text)
		case 'q', 'Q':
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("zootype: %v", m.err)) + "\n"
	}
	if m.view == viewResults {
		return m.viewResults()
	}
	return m.viewTyping()
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * contentShare)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) viewTyping() string {
	if m.corpus == nil {
		return ""
	}
	styled := buildStyledCells(m.corpus.Runes(), m.cells, m.cursor, m.corpus.Words())
	if m.width == 0 || m.height == 0 {
		return renderStyledCells(styled)
	}
	contentWidth := m.contentWidth()
	wrapped := wrapStyledCells(styled, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := m.renderFooter()
	if footer == "" || m.height < minFooterRows {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	if m.corpus == nil || m.corpus.Len() == 0 {
		return ""
	}
	segments := []string{}
	if m.opts.TimeLimit > 0 {
		segments = append(segments, m.countdown.View())
	} else {
		pct := float64(m.cursor) / float64(m.corpus.Len())
		segments = append(segments, fmt.Sprintf("Progress %d%%", int(pct*100)))
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.lastWPM, m.lastAcc*100))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) viewResults() string {
	r := m.report
	rows := []string{
		titleStyle.Render("Results"),
		"",
		statRow("WPM", fmt.Sprintf("%.1f", r.WPM)),
		statRow("Raw WPM", fmt.Sprintf("%.1f", r.RawWPM)),
		statRow("Accuracy", fmt.Sprintf("%.1f%%", r.Accuracy*100)),
		statRow("Errors", fmt.Sprintf("%d", r.ErrorCount)),
		statRow("Backspaces", fmt.Sprintf("%d", r.Backspaces)),
		statRow("Duration", fmt.Sprintf("%.1fs", r.Duration.Seconds())),
	}
	if m.opts.TimeLimit > 0 {
		bar := m.bar.ViewAs(float64(m.cursor) / float64(m.corpus.Len()))
		rows = append(rows, "", bar)
	}
	if m.sparkline != "" {
		rows = append(rows, "", statLabelStyle.Render("WPM over time"), m.sparkline)
	}
	rows = append(rows, "", footerStyle.Render("(n)ext · (r)etry · (q)uit"))
	content := strings.Join(rows, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func statRow(label, value string) string {
	return fmt.Sprintf("%s %s", statLabelStyle.Render(fmt.Sprintf("%-11s", label+":")), statValueStyle.Render(value))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
