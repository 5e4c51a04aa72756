// Package main is the entry point for the widget-tui application.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/widget-tui/internal/colorpick"
	"github.com/hy4ri/widget-tui/internal/config"
	"github.com/hy4ri/widget-tui/internal/logging"
	"github.com/hy4ri/widget-tui/internal/tui"
)

const version = "0.1.0"

const configTemplate = `# widget-tui configuration
# Location: ~/.config/widget-tui/config.yaml

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Widget shown on start: "color" or "todo"
  start_widget: color

color:
  # Color shown when the picker opens
  initial: "#FFFFFF"
  # Colors offered by the palette (#RGB or #RRGGBB)
  # palette: ["#FFFFFF", "#000000", "#FF0000"]

log:
  # Defaults to ~/.config/widget-tui/widget-tui.log
  # file: ""
  level: info
`

// CLI is the command line of widget-tui.
type CLI struct {
	Config       string           `short:"c" help:"Configuration file path (default: ~/.config/widget-tui/config.yaml)." type:"path"`
	Color        bool             `help:"Start in the color picker." xor:"start"`
	Todo         bool             `help:"Start in the to-do list." xor:"start"`
	InitialColor string           `help:"Initial color as #RGB or #RRGGBB." placeholder:"HEX"`
	Debug        bool             `help:"Enable debug logging."`
	Init         bool             `help:"Create a template config file."`
	Version      kong.VersionFlag `short:"v" help:"Show version information."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("widget-tui"),
		kong.Description("A terminal color picker and to-do list."),
		kong.Vars{"version": "widget-tui version " + version},
		kong.UsageOnError(),
	)

	if err := run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	path := cli.Config
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if cli.Init {
		return createConfigTemplate(path, os.Stdin, os.Stdout)
	}

	cfg, err := loadConfig(cli, path)
	if err != nil {
		return err
	}

	return runApp(cfg, startWidget(cli, cfg))
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cli *CLI, path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cli.InitialColor != "" {
		c, err := colorpick.ParseHex(cli.InitialColor)
		if err != nil {
			return nil, fmt.Errorf("--initial-color: %w", err)
		}
		cfg.Color.Initial = c
	}
	if cli.Debug {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

// startWidget picks the first widget: flags win over the config.
func startWidget(cli *CLI, cfg *config.Config) tui.Widget {
	switch {
	case cli.Color:
		return tui.WidgetColor
	case cli.Todo:
		return tui.WidgetTodo
	}
	return tui.ParseWidget(cfg.UI.StartWidget)
}

// createConfigTemplate writes the template config to path, asking before
// overwriting an existing file.
func createConfigTemplate(path string, in io.Reader, out io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config, start tui.Widget) error {
	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}

	logger, closer, err := logging.Open(logPath, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	app := tui.NewApp(cfg, logger, start)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("exited")
	return nil
}
