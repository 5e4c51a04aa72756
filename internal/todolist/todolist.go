// Package todolist holds the state of the task list editor and the reducer
// that applies user actions to it.
//
// Every transition returns a fresh State; the Tasks slice of the input is
// never written to, so callers may keep old states around.
package todolist

import "strings"

// State is the task list plus the in-progress draft.
type State struct {
	Tasks []string
	Draft string
}

// New returns an empty list with an empty draft.
func New() State {
	return State{Tasks: []string{}}
}

// Len returns the number of tasks.
func (s State) Len() int {
	return len(s.Tasks)
}

// Action is a task list event. Only the types below implement it.
type Action interface {
	todoAction()
}

// DraftChanged replaces the draft text.
type DraftChanged struct {
	Text string
}

// TaskAdded commits the draft to the end of the list.
type TaskAdded struct{}

// TaskDeleted removes the task at Index.
type TaskDeleted struct {
	Index int
}

// TaskMovedUp swaps the task at Index with the one above it.
type TaskMovedUp struct {
	Index int
}

// TaskMovedDown swaps the task at Index with the one below it.
type TaskMovedDown struct {
	Index int
}

func (DraftChanged) todoAction() {}
func (TaskAdded) todoAction() {}
func (TaskDeleted) todoAction() {}
func (TaskMovedUp) todoAction() {}
func (TaskMovedDown) todoAction() {}

// Reduce applies a to s. Out-of-range indices leave the state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case DraftChanged:
		s.Draft = a.Text
	case TaskAdded:
		return add(s)
	case TaskDeleted:
		return remove(s, a.Index)
	case TaskMovedUp:
		return swap(s, a.Index, a.Index-1)
	case TaskMovedDown:
		return swap(s, a.Index, a.Index+1)
	}
	return s
}

// add appends the draft as typed; blank drafts are rejected silently.
func add(s State) State {
	if strings.TrimSpace(s.Draft) == "" {
		return s
	}
	tasks := make([]string, 0, len(s.Tasks)+1)
	tasks = append(tasks, s.Tasks...)
	tasks = append(tasks, s.Draft)
	return State{Tasks: tasks}
}

func remove(s State, i int) State {
	if !s.valid(i) {
		return s
	}
	tasks := make([]string, 0, len(s.Tasks)-1)
	tasks = append(tasks, s.Tasks[:i]...)
	tasks = append(tasks, s.Tasks[i+1:]...)
	s.Tasks = tasks
	return s
}

func swap(s State, i, j int) State {
	if !s.valid(i) || !s.valid(j) {
		return s
	}
	tasks := make([]string, len(s.Tasks))
	copy(tasks, s.Tasks)
	tasks[i], tasks[j] = tasks[j], tasks[i]
	s.Tasks = tasks
	return s
}

func (s State) valid(i int) bool {
	return i >= 0 && i < len(s.Tasks)
}
