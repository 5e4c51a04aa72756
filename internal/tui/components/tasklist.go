package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	"github.com/hy4ri/widget-tui/internal/logging"
	"github.com/hy4ri/widget-tui/internal/todolist"
	"github.com/hy4ri/widget-tui/internal/tui/styles"
)

// TaskListModel mounts the task list editor. The cursor selects the row
// that delete and move act on, so the index handed to the reducer always
// comes from the current render.
type TaskListModel struct {
	state  todolist.State
	cursor int
	input  textinput.Model

	// waitingD is set after a first 'd' while waiting for the second one.
	waitingD bool

	// viewport scrolls the rows once the list outgrows the widget height.
	viewport      viewport.Model
	viewportReady bool

	vim           bool
	width, height int
	logger        *log.Logger
}

// NewTaskList creates an empty task list editor.
func NewTaskList(vim bool, logger *log.Logger) *TaskListModel {
	if logger == nil {
		logger = logging.Discard()
	}

	input := textinput.New()
	input.Placeholder = "Enter a task..."
	input.CharLimit = 500
	input.Width = 40

	return &TaskListModel{
		state:  todolist.New(),
		input:  input,
		vim:    vim,
		logger: logger,
	}
}

// State returns the current list state.
func (m *TaskListModel) State() todolist.State {
	return m.state
}

// Cursor returns the selected row.
func (m *TaskListModel) Cursor() int {
	return m.cursor
}

// Dispatch runs an action through the reducer and keeps the draft field
// and cursor in step with the result.
func (m *TaskListModel) Dispatch(a todolist.Action) {
	before := m.state
	m.state = todolist.Reduce(m.state, a)

	switch a := a.(type) {
	case todolist.TaskAdded:
		if m.state.Len() > before.Len() {
			m.logger.Debug("task added", "index", m.state.Len()-1)
			m.input.SetValue("")
		}
	case todolist.TaskDeleted:
		if m.state.Len() < before.Len() {
			m.logger.Debug("task deleted", "index", a.Index)
		}
	case todolist.TaskMovedUp:
		if moved(before, m.state) {
			m.logger.Debug("task moved up", "index", a.Index)
			m.cursor = a.Index - 1
		}
	case todolist.TaskMovedDown:
		if moved(before, m.state) {
			m.logger.Debug("task moved down", "index", a.Index)
			m.cursor = a.Index + 1
		}
	}
	m.clampCursor()
}

func moved(before, after todolist.State) bool {
	for i := range before.Tasks {
		if before.Tasks[i] != after.Tasks[i] {
			return true
		}
	}
	return false
}

// Capturing implements Capturer.
func (m *TaskListModel) Capturing() bool {
	return m.input.Focused()
}

// Init implements Component.
func (m *TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (m *TaskListModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.input.Focused() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.input.Focused() {
		return m, m.handleInputKey(keyMsg)
	}

	key := keyMsg.String()

	// Handle 'dd' sequence (delete)
	if m.waitingD {
		m.waitingD = false
		if key == "d" {
			m.Dispatch(todolist.TaskDeleted{Index: m.cursor})
			return m, nil
		}
	}

	switch {
	case key == "i" || key == "a" || key == "enter":
		return m, m.input.Focus()
	case key == "down" || (m.vim && key == "j"):
		m.cursor++
		m.clampCursor()
	case key == "up" || (m.vim && key == "k"):
		m.cursor--
		m.clampCursor()
	case key == "home" || (m.vim && key == "g"):
		m.cursor = 0
	case key == "end" || (m.vim && key == "G"):
		m.cursor = m.state.Len() - 1
		m.clampCursor()
	case key == "shift+up" || (m.vim && key == "K"):
		m.Dispatch(todolist.TaskMovedUp{Index: m.cursor})
	case key == "shift+down" || (m.vim && key == "J"):
		m.Dispatch(todolist.TaskMovedDown{Index: m.cursor})
	case key == "delete":
		m.Dispatch(todolist.TaskDeleted{Index: m.cursor})
	case key == "d":
		m.waitingD = true
	case key == "y":
		if m.state.Len() > 0 {
			return m, copyCmd("task", m.state.Tasks[m.cursor])
		}
	}
	return m, nil
}

func (m *TaskListModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.Dispatch(todolist.TaskAdded{})
		return nil
	case "esc":
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Draft {
		m.Dispatch(todolist.DraftChanged{Text: v})
	}
	return cmd
}

func (m *TaskListModel) clampCursor() {
	if m.cursor >= m.state.Len() {
		m.cursor = m.state.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements Component.
func (m *TaskListModel) View() string {
	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.state.Len() == 0 {
		b.WriteString(styles.Empty.Render("No tasks yet"))
		return b.String()
	}

	// Header plus the blank line below it
	listHeight := m.height - lipgloss.Height(header) - 1
	b.WriteString(m.renderRows(listHeight))

	return b.String()
}

func (m *TaskListModel) renderHeader() string {
	inputStyle := styles.Input
	if m.input.Focused() {
		inputStyle = styles.InputFocused
	}
	input := lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render(m.input.View()),
		" ",
		styles.Button.Render("[Add]"),
	)
	return styles.Title.Render("TO-DO-LIST") + "\n\n" + input
}

// renderRows draws the numbered tasks. When the size is known the rows go
// through the viewport, which is scrolled so the cursor row stays visible.
func (m *TaskListModel) renderRows(maxHeight int) string {
	hint := m.rowHint()
	numWidth := len(fmt.Sprint(m.state.Len()))
	// cursor border + index + ". " + trailing hint
	labelWidth := m.width - numWidth - 4 - runewidth.StringWidth(hint) - 2
	if m.width == 0 {
		labelWidth = 60
	}
	if labelWidth < 10 {
		labelWidth = 10
	}

	rows := make([]string, 0, m.state.Len())
	for i, task := range m.state.Tasks {
		num := styles.TaskIndex.Render(fmt.Sprintf("%*d.", numWidth, i+1))
		row := num + " " + truncateString(task, labelWidth)
		if i == m.cursor && !m.input.Focused() {
			row = styles.TaskSelected.Render(row + "  " + styles.HelpDesc.Render(hint))
		} else {
			row = styles.TaskItem.Render(row)
		}
		rows = append(rows, row)
	}
	content := strings.Join(rows, "\n")

	if !m.viewportReady {
		return content
	}

	if maxHeight < 1 {
		maxHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = maxHeight
	m.viewport.SetContent(content)
	m.syncViewportToCursor(m.cursor)
	return m.viewport.View()
}

// syncViewportToCursor ensures the viewport shows the cursor line.
func (m *TaskListModel) syncViewportToCursor(cursorLine int) {
	vpHeight := m.viewport.Height
	if vpHeight <= 0 {
		return
	}

	currentTop := m.viewport.YOffset
	currentBottom := currentTop + vpHeight - 1

	if cursorLine < currentTop {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine > currentBottom {
		m.viewport.SetYOffset(cursorLine - vpHeight + 1)
	}
}

// ScrollOffset returns the index of the first visible row.
func (m *TaskListModel) ScrollOffset() int {
	if !m.viewportReady {
		return 0
	}
	return m.viewport.YOffset
}

// rowHint lists the row actions next to the selected task.
func (m *TaskListModel) rowHint() string {
	if m.vim {
		return "dd delete • K up • J down"
	}
	return "dd/del delete • shift+↑ up • shift+↓ down"
}

// SetSize implements Component.
func (m *TaskListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 80 {
		inputWidth = 80
	}
	m.input.Width = inputWidth

	if width <= 0 || height <= 0 {
		return
	}
	if !m.viewportReady {
		m.viewport = viewport.New(width, height)
		m.viewport.Style = lipgloss.NewStyle()
		m.viewportReady = true
	} else {
		m.viewport.Width = width
	}
}
