package components

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/widget-tui/internal/todolist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskListWith(tasks ...string) *TaskListModel {
	m := NewTaskList(true, nil)
	for _, task := range tasks {
		m.Dispatch(todolist.DraftChanged{Text: task})
		m.Dispatch(todolist.TaskAdded{})
	}
	return m
}

func TestTaskListTypeAndAdd(t *testing.T) {
	m := NewTaskList(true, nil)

	press(m, "i")
	require.True(t, m.Capturing())

	typeText(m, "Buy milk")
	assert.Equal(t, "Buy milk", m.State().Draft)

	press(m, "enter")
	assert.Equal(t, []string{"Buy milk"}, m.State().Tasks)
	assert.Equal(t, "", m.State().Draft)
	assert.Equal(t, "", m.input.Value())
	assert.True(t, m.Capturing(), "input stays focused for the next task")
}

func TestTaskListRejectsBlankDraft(t *testing.T) {
	m := NewTaskList(true, nil)

	press(m, "a")
	typeText(m, "   ")
	press(m, "enter")

	assert.Empty(t, m.State().Tasks)
	assert.Equal(t, "   ", m.State().Draft)
	assert.Equal(t, "   ", m.input.Value())
}

func TestTaskListEscLeavesInput(t *testing.T) {
	m := NewTaskList(true, nil)
	press(m, "i", "esc")
	assert.False(t, m.Capturing())

	// 'j' is navigation again, not text
	press(m, "j")
	assert.Equal(t, "", m.State().Draft)
}

func TestTaskListCursorClamps(t *testing.T) {
	m := newTaskListWith("A", "B", "C")

	press(m, "j", "j", "j", "j")
	assert.Equal(t, 2, m.Cursor())

	press(m, "k", "up", "k", "k")
	assert.Equal(t, 0, m.Cursor())

	press(m, "G")
	assert.Equal(t, 2, m.Cursor())
	press(m, "g")
	assert.Equal(t, 0, m.Cursor())
}

func TestTaskListMoveFollowsTask(t *testing.T) {
	m := newTaskListWith("A", "B", "C")
	press(m, "j")

	press(m, "K")
	assert.Equal(t, []string{"B", "A", "C"}, m.State().Tasks)
	assert.Equal(t, 0, m.Cursor())

	// already at the top
	press(m, "K")
	assert.Equal(t, []string{"B", "A", "C"}, m.State().Tasks)
	assert.Equal(t, 0, m.Cursor())

	press(m, "J", "J")
	assert.Equal(t, []string{"A", "C", "B"}, m.State().Tasks)
	assert.Equal(t, 2, m.Cursor())

	// already at the bottom
	press(m, "shift+down")
	assert.Equal(t, []string{"A", "C", "B"}, m.State().Tasks)

	press(m, "shift+up")
	assert.Equal(t, []string{"A", "B", "C"}, m.State().Tasks)
	assert.Equal(t, 1, m.Cursor())
}

func TestTaskListDeleteNeedsDoubleD(t *testing.T) {
	m := newTaskListWith("A", "B", "C")
	press(m, "j")

	press(m, "d", "j")
	assert.Len(t, m.State().Tasks, 3, "single d followed by another key does nothing")

	press(m, "d", "d")
	assert.Equal(t, []string{"A", "B"}, m.State().Tasks)
	assert.Equal(t, 1, m.Cursor(), "cursor clamps to the new last row")

	press(m, "delete")
	assert.Equal(t, []string{"A"}, m.State().Tasks)
	assert.Equal(t, 0, m.Cursor())

	press(m, "d", "d", "d", "d")
	assert.Empty(t, m.State().Tasks)
	assert.Equal(t, 0, m.Cursor())
}

func TestTaskListVimKeysDisabled(t *testing.T) {
	m := NewTaskList(false, nil)
	m.Dispatch(todolist.DraftChanged{Text: "A"})
	m.Dispatch(todolist.TaskAdded{})
	m.Dispatch(todolist.DraftChanged{Text: "B"})
	m.Dispatch(todolist.TaskAdded{})

	press(m, "j")
	assert.Equal(t, 0, m.Cursor())

	press(m, "down")
	assert.Equal(t, 1, m.Cursor())
}

func TestTaskListView(t *testing.T) {
	m := NewTaskList(true, nil)
	assert.Contains(t, m.View(), "TO-DO-LIST")
	assert.Contains(t, m.View(), "No tasks yet")

	m = newTaskListWith("Buy milk", "Walk dog")
	m.SetSize(80, 24)
	view := m.View()

	assert.Contains(t, view, "[Add]")
	assert.Contains(t, view, "1. Buy milk")
	assert.Contains(t, view, "2. Walk dog")
	assert.Less(t, strings.Index(view, "Buy milk"), strings.Index(view, "Walk dog"))
}

func TestTaskListViewTruncatesLongTasks(t *testing.T) {
	m := newTaskListWith(strings.Repeat("x", 200))
	m.SetSize(60, 24)

	assert.Contains(t, m.View(), "…")
}

func TestTaskListCopy(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m := newTaskListWith("A", "B")
	press(m, "j")
	cmd := press(m, "y")
	require.NotNil(t, cmd)

	msg, ok := cmd().(StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "B", copied)
	assert.NoError(t, msg.Err)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	msg = cmd().(StatusMsg)
	assert.Error(t, msg.Err)
}

func TestTaskListCopyEmptyList(t *testing.T) {
	m := NewTaskList(true, nil)
	assert.Nil(t, press(m, "y"))
}

func TestTaskListScrollsToCursor(t *testing.T) {
	tasks := make([]string, 40)
	for i := range tasks {
		tasks[i] = fmt.Sprintf("task-%d", i)
	}
	m := newTaskListWith(tasks...)
	m.SetSize(80, 19)

	view := m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 19)
	assert.Contains(t, view, "TO-DO-LIST")
	assert.Contains(t, view, " 1. task-0")
	assert.NotContains(t, view, "40. task-39")

	press(m, "G")
	view = m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 19)
	assert.Contains(t, view, "TO-DO-LIST", "header stays on screen")
	assert.Contains(t, view, "40. task-39")
	assert.NotContains(t, view, " 1. task-0")
	assert.Positive(t, m.ScrollOffset())

	// moving up past the top of the window scrolls back
	press(m, "g")
	view = m.View()
	assert.Contains(t, view, " 1. task-0")
	assert.Equal(t, 0, m.ScrollOffset())
}

func TestTaskListScrollFollowsMovedTask(t *testing.T) {
	tasks := make([]string, 30)
	for i := range tasks {
		tasks[i] = fmt.Sprintf("task-%d", i)
	}
	m := newTaskListWith(tasks...)
	m.SetSize(80, 12)
	m.View()

	for i := 0; i < 29; i++ {
		press(m, "J")
		m.View()
	}
	assert.Equal(t, 29, m.Cursor())
	assert.Equal(t, "task-0", m.State().Tasks[29])
	assert.Contains(t, m.View(), "30. task-0")
}
