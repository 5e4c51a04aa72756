package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpView(t *testing.T) {
	h := NewHelp()
	assert.Contains(t, h.View(), "No keybindings registered")

	h.SetSize(80, 24)
	h.SetKeymap([][]string{
		{"General", ""},
		{"q", "Quit"},
	})
	view := h.View()
	assert.Contains(t, view, "General")
	assert.Contains(t, view, "Quit")
}

func TestHelpCloses(t *testing.T) {
	h := NewHelp()
	for _, k := range []string{"esc", "?", "q"} {
		_, cmd := h.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, HelpClosedMsg{}, cmd())
	}

	_, cmd := h.Update(keyMsg("x"))
	assert.Nil(t, cmd)
}
