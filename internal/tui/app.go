package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/widget-tui/internal/config"
	"github.com/hy4ri/widget-tui/internal/logging"
	"github.com/hy4ri/widget-tui/internal/tui/components"
	"github.com/hy4ri/widget-tui/internal/tui/styles"
)

// Widget identifies a mounted widget.
type Widget int

const (
	WidgetColor Widget = iota
	WidgetTodo

	widgetCount
)

// ParseWidget maps a config name to a Widget. Unknown names select the
// color picker.
func ParseWidget(name string) Widget {
	if name == config.WidgetTodo {
		return WidgetTodo
	}
	return WidgetColor
}

func (w Widget) String() string {
	if w == WidgetTodo {
		return config.WidgetTodo
	}
	return config.WidgetColor
}

// tabs in display order.
var tabs = []struct {
	widget Widget
	key    string
	name   string
}{
	{WidgetColor, "1", "Color-Picker"},
	{WidgetTodo, "2", "TO-DO-LIST"},
}

// App is the main Bubble Tea model for the application.
type App struct {
	config *config.Config
	logger *log.Logger
	keymap Keymap

	current  Widget
	showHelp bool

	colorComp *components.ColorSelectorModel
	taskComp  *components.TaskListModel
	helpComp  *components.HelpModel

	statusMsg string
	statusErr bool
	width     int
	height    int
}

// NewApp creates a new App instance.
func NewApp(cfg *config.Config, logger *log.Logger, start Widget) *App {
	if logger == nil {
		logger = logging.Discard()
	}

	keymap := DefaultKeymap(cfg.UI.VimMode)
	help := components.NewHelp()
	help.SetKeymap(keymap.HelpItems())

	return &App{
		config:    cfg,
		logger:    logger,
		keymap:    keymap,
		current:   start,
		colorComp: components.NewColorSelector(cfg.Color.Initial, cfg.Color.Palette, cfg.UI.VimMode, logger),
		taskComp:  components.NewTaskList(cfg.UI.VimMode, logger),
		helpComp:  help,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.logger.Info("starting", "widget", a.current)
	return tea.SetWindowTitle("widget-tui")
}

// Current returns the widget on screen.
func (a *App) Current() Widget {
	return a.current
}

// ColorSelector returns the mounted color selector.
func (a *App) ColorSelector() *components.ColorSelectorModel {
	return a.colorComp
}

// TaskList returns the mounted task list editor.
func (a *App) TaskList() *components.TaskListModel {
	return a.taskComp
}

func (a *App) active() components.Component {
	if a.current == WidgetTodo {
		return a.taskComp
	}
	return a.colorComp
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		w, h := a.bodySize()
		a.colorComp.SetSize(w, h)
		a.taskComp.SetSize(w, h)
		a.helpComp.SetSize(w, h)
		return a, nil

	case components.StatusMsg:
		a.statusMsg = msg.Text
		a.statusErr = msg.Err != nil
		if msg.Err != nil {
			a.logger.Warn(msg.Text, "err", msg.Err)
		}
		return a, nil

	case components.HelpClosedMsg:
		a.showHelp = false
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	_, cmd := a.active().Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == a.keymap.ForceQuit.Key {
		return a, tea.Quit
	}

	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	active := a.active()
	if c, ok := active.(components.Capturer); ok && c.Capturing() {
		_, cmd := active.Update(msg)
		return a, cmd
	}

	a.statusMsg = ""

	switch key {
	case a.keymap.Quit.Key:
		return a, tea.Quit
	case a.keymap.Help.Key:
		a.showHelp = true
	case a.keymap.NextWidget.Key:
		a.switchTo((a.current + 1) % widgetCount)
	case a.keymap.PrevWidget.Key:
		a.switchTo((a.current + widgetCount - 1) % widgetCount)
	case a.keymap.ColorTab.Key:
		a.switchTo(WidgetColor)
	case a.keymap.TodoTab.Key:
		a.switchTo(WidgetTodo)
	default:
		_, cmd := active.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) switchTo(w Widget) {
	if w == a.current {
		return
	}
	a.logger.Debug("switching widget", "from", a.current, "to", w)
	a.current = w
}

// bodySize is the space left for a widget after the tab bar, status bar
// and app padding.
func (a *App) bodySize() (int, int) {
	w := a.width - 4
	h := a.height - 2 - 1 - 2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	content := a.active().View()
	if a.showHelp {
		content = a.helpComp.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderTabBar(),
		styles.App.Render(content),
		a.renderStatusBar(),
	)
}

func (a *App) renderTabBar() string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.key + " " + t.name
		if t.widget == a.current {
			parts = append(parts, styles.TabActive.Render(label))
		} else {
			parts = append(parts, styles.Tab.Render(label))
		}
	}
	return styles.TabBar.Width(a.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (a *App) renderStatusBar() string {
	if a.statusMsg != "" {
		style := styles.StatusBarSuccess
		if a.statusErr {
			style = styles.StatusBarError
		}
		return styles.StatusBar.Width(a.width).Render(style.Render(a.statusMsg))
	}

	hints := []Key{a.keymap.NextWidget, a.keymap.Help, a.keymap.Quit}
	parts := make([]string, 0, len(hints))
	for _, k := range hints {
		parts = append(parts, styles.StatusBarKey.Render(k.Key)+styles.StatusBarText.Render(" "+k.Help))
	}
	return styles.StatusBar.Width(a.width).Render(strings.Join(parts, styles.StatusBarText.Render(" • ")))
}
