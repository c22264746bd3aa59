package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/taskdeck/internal/config"
	"github.com/Iron-Ham/taskdeck/internal/lifecycle"
	"github.com/Iron-Ham/taskdeck/internal/logging"
	"github.com/Iron-Ham/taskdeck/internal/poll"
	"github.com/Iron-Ham/taskdeck/internal/remote"
	"github.com/Iron-Ham/taskdeck/internal/snapshot"
)

// Model is the bubbletea model for the watch UI. The left sidebar lists
// the current task snapshot, the right pane shows rendered logs for the
// selected task when a tail is active.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	store  *snapshot.Store
	sync   *poll.Synchronizer
	tails  *poll.TailRegistry
	coord  *lifecycle.Coordinator
	logger *logging.Logger

	tasks   []remote.Task
	cursor  int
	logText map[int]string

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	inputActive bool
	pending     lifecycle.Intent
	busy        bool
	showHelp    bool
	outputsFor  int

	width  int
	height int
	ready  bool

	infoMessage  string
	errorMessage string
	quitting     bool
}

// NewModel creates the watch UI model. All components must be non-nil
// except logger, which defaults to the no-op logger.
func NewModel(ctx context.Context, cfg *config.Config, store *snapshot.Store, sync *poll.Synchronizer, tails *poll.TailRegistry, coord *lifecycle.Coordinator, logger *logging.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		cfg:     cfg,
		store:   store,
		sync:    sync,
		tails:   tails,
		coord:   coord,
		logger:  logger,
		tasks:   store.Tasks(),
		logText: make(map[int]string),
		input:   ti,
		spin:    sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case snapshotMsg:
		m.tasks = m.store.Tasks()
		m.clampCursor()
		return m, nil

	case tailUpdateMsg:
		m.logText[msg.taskID] = m.trimLogText(msg.text)
		if m.ready && msg.taskID == m.selectedID() && m.outputsFor == 0 {
			atBottom := m.viewport.AtBottom()
			m.viewport.SetContent(m.logText[msg.taskID])
			if atBottom {
				m.viewport.GotoBottom()
			}
		}
		return m, nil

	case tailStoppedMsg:
		delete(m.logText, msg.taskID)
		if m.ready && msg.taskID == m.selectedID() {
			m.viewport.SetContent("")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case outputsMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.outputsFor = msg.taskID
		if m.ready {
			m.viewport.SetContent(renderOutputs(msg.lines))
			m.viewport.GotoTop()
		}
		m.infoMessage = fmt.Sprintf("outputs for task %d", msg.taskID)
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.logger.Warn("action failed", "error", msg.err)
			m.errorMessage = msg.err.Error()
			m.infoMessage = ""
			return m, nil
		}
		m.infoMessage = msg.info
		m.errorMessage = ""
		return m, m.refreshCmd()

	case configReloadedMsg:
		m.infoMessage = "configuration reloaded"
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal states swallow all keys until resolved.
	if m.pending != nil {
		return m.handleConfirmKey(msg)
	}
	if m.inputActive {
		return m.handleInputKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "g", "home":
		m.cursor = 0
		m.syncViewport()
		return m, nil

	case "G", "end":
		if len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}
		m.syncViewport()
		return m, nil

	case "enter", "t":
		return m.toggleTail()

	case "n":
		return m.openSubmitInput()

	case "c":
		return m.requestAction(lifecycle.CancelIntent{TaskID: m.selectedID()})

	case "r":
		return m.requestAction(lifecycle.RetryIntent{TaskID: m.selectedID()})

	case "o":
		return m.fetchOutputs()

	case "R":
		m.infoMessage = "refreshing"
		return m, m.refreshCmd()

	case "?":
		m.showHelp = true
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		intent := m.pending
		m.pending = nil
		m.busy = true
		return m, tea.Batch(m.executeCmd(intent), m.spin.Tick)
	case "n", "N", "esc", "q":
		m.pending = nil
		m.infoMessage = "action dismissed"
		return m, nil
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputActive = false
		m.input.Blur()
		return m, nil
	case "enter":
		raw := m.input.Value()
		m.inputActive = false
		m.input.Blur()
		m.busy = true
		return m, tea.Batch(m.submitCmd(raw), m.spin.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// requestAction stages an intent behind the confirmation overlay, or
// executes it immediately when confirmations are disabled.
func (m Model) requestAction(intent lifecycle.Intent) (tea.Model, tea.Cmd) {
	if len(m.tasks) == 0 {
		m.errorMessage = "no task selected"
		return m, nil
	}
	if m.cfg != nil && !m.cfg.TUI.ConfirmActions {
		m.busy = true
		return m, tea.Batch(m.executeCmd(intent), m.spin.Tick)
	}
	m.pending = intent
	return m, nil
}

func (m Model) openSubmitInput() (tea.Model, tea.Cmd) {
	m.inputActive = true
	m.errorMessage = ""
	m.input.SetValue(lifecycle.SubmitPrefix + " ")
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) toggleTail() (tea.Model, tea.Cmd) {
	id := m.selectedID()
	if id == 0 {
		return m, nil
	}
	if m.tails.Active(id) {
		tails := m.tails
		return m, func() tea.Msg {
			tails.StopTail(id)
			return nil
		}
	}
	ctx, tails := m.ctx, m.tails
	return m, func() tea.Msg {
		tails.StartTail(ctx, id, nil)
		return nil
	}
}

func (m Model) fetchOutputs() (tea.Model, tea.Cmd) {
	id := m.selectedID()
	if id == 0 {
		return m, nil
	}
	ctx, coord := m.ctx, m.coord
	return m, func() tea.Msg {
		lines, err := coord.Outputs(ctx, id)
		return outputsMsg{taskID: id, lines: lines, err: err}
	}
}

func (m Model) executeCmd(intent lifecycle.Intent) tea.Cmd {
	ctx, coord := m.ctx, m.coord
	return func() tea.Msg {
		if err := coord.Execute(ctx, intent); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{info: doneMessage(intent)}
	}
}

func (m Model) submitCmd(raw string) tea.Cmd {
	ctx, coord := m.ctx, m.coord
	return func() tea.Msg {
		if err := coord.SubmitRaw(ctx, raw); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{info: "task submitted"}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		sync.RefreshNow(ctx)
		return nil
	}
}

func doneMessage(intent lifecycle.Intent) string {
	switch i := intent.(type) {
	case lifecycle.SubmitIntent:
		return "task submitted"
	case lifecycle.CancelIntent:
		return fmt.Sprintf("task %d cancelled", i.TaskID)
	case lifecycle.RetryIntent:
		return fmt.Sprintf("task %d retried", i.TaskID)
	default:
		return "done"
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.syncViewport()
}

func (m *Model) clampCursor() {
	if len(m.tasks) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
}

// selectedID returns the task ID under the cursor, or 0 when the
// snapshot is empty. The service never assigns ID 0.
func (m Model) selectedID() int {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return 0
	}
	return m.tasks[m.cursor].ID
}

// syncViewport swaps the log pane content when the cursor moves to a
// different task. Any transient outputs view is dropped.
func (m *Model) syncViewport() {
	m.outputsFor = 0
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.logText[m.selectedID()])
	m.viewport.GotoBottom()
}

func (m *Model) resizeViewport() {
	paneWidth := m.width - m.sidebarWidth() - 6
	if paneWidth < 10 {
		paneWidth = 10
	}
	paneHeight := m.height - 6
	if paneHeight < 3 {
		paneHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(paneWidth, paneHeight)
		m.ready = true
		m.syncViewport()
		return
	}
	m.viewport.Width = paneWidth
	m.viewport.Height = paneHeight
}

func (m Model) sidebarWidth() int {
	if m.cfg != nil && m.cfg.TUI.SidebarWidth > 0 {
		return m.cfg.TUI.SidebarWidth
	}
	return 36
}

// trimLogText keeps only the newest lines when the rendered text
// exceeds the configured cap.
func (m Model) trimLogText(text string) string {
	max := 0
	if m.cfg != nil {
		max = m.cfg.TUI.MaxLogLines
	}
	if max <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= max {
		return text
	}
	return strings.Join(lines[len(lines)-max:], "\n")
}
