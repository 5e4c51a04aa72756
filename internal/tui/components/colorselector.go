package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/widget-tui/internal/colorpick"
	"github.com/hy4ri/widget-tui/internal/logging"
	"github.com/hy4ri/widget-tui/internal/tui/styles"
)

const (
	swatchHeight   = 5
	swatchMinWidth = 30
	swatchMaxWidth = 60
)

// ColorSelectorModel mounts the color selector. The palette and the hex
// field play the part of a native color input: they only ever dispatch
// valid hex strings.
type ColorSelectorModel struct {
	state   colorpick.State
	palette []string
	cursor  int // -1 when the color is not a palette entry

	input   textinput.Model
	invalid bool

	vim           bool
	width, height int
	logger        *log.Logger
}

// NewColorSelector creates a color selector starting at initial, or white
// when initial is empty.
func NewColorSelector(initial string, palette []string, vim bool, logger *log.Logger) *ColorSelectorModel {
	input := textinput.New()
	input.Prompt = "Hex: "
	input.Placeholder = "#RRGGBB"
	input.CharLimit = 7
	input.Width = 10

	if logger == nil {
		logger = logging.Discard()
	}

	m := &ColorSelectorModel{
		state:   colorpick.New(),
		palette: palette,
		input:   input,
		vim:     vim,
		logger:  logger,
	}
	if initial != "" {
		m.state = colorpick.Reduce(m.state, colorpick.ColorChanged{Value: initial})
	}
	m.cursor = colorpick.IndexOf(palette, m.state.Color)
	return m
}

// State returns the current selector state.
func (m *ColorSelectorModel) State() colorpick.State {
	return m.state
}

// Dispatch runs an action through the reducer.
func (m *ColorSelectorModel) Dispatch(a colorpick.Action) {
	prev := m.state
	m.state = colorpick.Reduce(m.state, a)
	if prev != m.state {
		m.logger.Debug("color changed", "from", prev.Color, "to", m.state.Color)
	}
	m.cursor = colorpick.IndexOf(m.palette, m.state.Color)
}

// Capturing implements Capturer.
func (m *ColorSelectorModel) Capturing() bool {
	return m.input.Focused()
}

// Init implements Component.
func (m *ColorSelectorModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (m *ColorSelectorModel) Update(msg tea.Msg) (Component, tea.Cmd) {
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

	switch key := keyMsg.String(); {
	case key == "left" || (m.vim && key == "h"):
		m.moveCursor(-1)
	case key == "right" || (m.vim && key == "l"):
		m.moveCursor(1)
	case key == "home" || (m.vim && key == "0"):
		m.moveCursor(-len(m.palette))
	case key == "end" || (m.vim && key == "$"):
		m.moveCursor(len(m.palette))
	case key == "i" || key == "#" || key == "enter":
		m.invalid = false
		m.input.SetValue(m.state.Color)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key == "y":
		return m, copyCmd("color", m.state.Color)
	}
	return m, nil
}

func (m *ColorSelectorModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		value, err := colorpick.ParseHex(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.invalid = true
			return nil
		}
		m.invalid = false
		m.input.Blur()
		m.Dispatch(colorpick.ColorChanged{Value: value})
		return nil
	case "esc":
		m.invalid = false
		m.input.Blur()
		return nil
	}

	m.invalid = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// moveCursor steps through the palette, applying each color as it is reached.
func (m *ColorSelectorModel) moveCursor(delta int) {
	if len(m.palette) == 0 {
		return
	}
	// Off the palette (cursor -1) both directions land on the first entry.
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.palette) {
		next = len(m.palette) - 1
	}
	m.cursor = next
	m.Dispatch(colorpick.ColorChanged{Value: m.palette[next]})
}

// View implements Component.
func (m *ColorSelectorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Color-Picker"))
	b.WriteString("\n\n")

	b.WriteString(m.SwatchStyle().Render(colorpick.Caption(m.state)))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Select a Color:"))
	b.WriteString(" ")
	b.WriteString(m.renderPalette())
	b.WriteString("\n\n")

	inputStyle := styles.Input
	if m.input.Focused() {
		inputStyle = styles.InputFocused
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	if m.invalid {
		b.WriteString("\n")
		b.WriteString(styles.InputError.Render("Not a hex color (#RGB or #RRGGBB)"))
	}

	return b.String()
}

// SwatchStyle returns the swatch style bound to the current color.
func (m *ColorSelectorModel) SwatchStyle() lipgloss.Style {
	color := m.state.Color
	return styles.SwatchStyle(color, colorpick.TextColor(color), m.swatchWidth(), swatchHeight)
}

func (m *ColorSelectorModel) renderPalette() string {
	if len(m.palette) == 0 {
		return styles.Empty.Render("no palette configured")
	}

	chips := make([]string, 0, len(m.palette)+1)
	for i, c := range m.palette {
		chip := lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("   ")
		if i == m.cursor {
			chip = styles.PaletteCursor.Render("[") + chip + styles.PaletteCursor.Render("]")
		} else {
			chip = styles.PaletteChip.Render(chip)
		}
		chips = append(chips, chip)
	}
	if m.cursor >= 0 {
		chips = append(chips, styles.HelpDesc.Render(" "+m.palette[m.cursor]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

func (m *ColorSelectorModel) swatchWidth() int {
	w := m.width - 4
	if w > swatchMaxWidth {
		w = swatchMaxWidth
	}
	if w < swatchMinWidth {
		w = swatchMinWidth
	}
	return w
}

// SetSize implements Component.
func (m *ColorSelectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
