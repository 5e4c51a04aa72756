// Package tui hosts the color selector and task list widgets in a
// Bubble Tea program.
package tui

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains the app-level key bindings. Widget keys are handled by
// the widgets themselves and only listed here for the help screen.
type Keymap struct {
	Quit       Key
	ForceQuit  Key
	Help       Key
	NextWidget Key
	PrevWidget Key
	ColorTab   Key
	TodoTab    Key

	// vim switches the widget key descriptions shown in help.
	vim bool
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap(vim bool) Keymap {
	return Keymap{
		Quit:       Key{Key: "q", Help: "quit"},
		ForceQuit:  Key{Key: "ctrl+c", Help: "quit"},
		Help:       Key{Key: "?", Help: "help"},
		NextWidget: Key{Key: "tab", Help: "next widget"},
		PrevWidget: Key{Key: "shift+tab", Help: "previous widget"},
		ColorTab:   Key{Key: "1", Help: "color picker"},
		TodoTab:    Key{Key: "2", Help: "to-do list"},
		vim:        vim,
	}
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	left, right, up, down := "←", "→", "↑", "↓"
	moveUp, moveDown := "shift+↑", "shift+↓"
	if k.vim {
		left, right, up, down = "h/←", "l/→", "k/↑", "j/↓"
		moveUp, moveDown = "K", "J"
	}

	return [][]string{
		{"General", ""},
		{k.NextWidget.Key + "/" + k.PrevWidget.Key, "Switch widget"},
		{k.ColorTab.Key + "/" + k.TodoTab.Key, "Color picker / To-do list"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
		{"", ""},
		{"Color Picker", ""},
		{left + " " + right, "Previous/next palette color"},
		{"i/enter", "Enter a hex color"},
		{"y", "Copy color"},
		{"esc", "Cancel hex entry"},
		{"", ""},
		{"To-Do List", ""},
		{"i/a/enter", "New task"},
		{"enter", "Add task (while typing)"},
		{up + " " + down, "Select task"},
		{moveUp + " " + moveDown, "Move task up/down"},
		{"dd/del", "Delete task"},
		{"y", "Copy task"},
		{"esc", "Leave input"},
	}
}
