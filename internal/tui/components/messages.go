package components

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg asks the app to show a line in the status bar.
type StatusMsg struct {
	Text string
	Err  error
}

// HelpClosedMsg is emitted when the help overlay is dismissed.
type HelpClosedMsg struct{}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyCmd writes text to the system clipboard off the update loop.
func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return StatusMsg{Text: "Failed to copy " + what, Err: err}
		}
		return StatusMsg{Text: "Copied " + what + ": " + text}
	}
}
