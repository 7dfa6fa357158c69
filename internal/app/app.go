package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/portfolio-tui/internal/content"
	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/atomicstack/portfolio-tui/internal/prefs"
	"github.com/atomicstack/portfolio-tui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	ContentPath string
	PrefsPath   string
	Width       int
	Height      int
	RowHeight   int
	ShowFooter  bool
	Mouse       bool
	// InitialWidth and InitialHeight are the detected terminal size, used
	// until the program reports its own.
	InitialWidth  int
	InitialHeight int
}

// LoadContent returns the portfolio at path, or the built-in one when path
// is empty.
func LoadContent(path string) (content.Portfolio, error) {
	if path == "" {
		return content.Default()
	}
	p, err := content.Load(path)
	if err != nil {
		return content.Portfolio{}, fmt.Errorf("load content: %w", err)
	}
	return p, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	portfolio, err := LoadContent(cfg.ContentPath)
	if err != nil {
		return err
	}
	path := cfg.PrefsPath
	if path == "" {
		path = prefs.DefaultPath()
	}
	store, err := prefs.Open(path)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error(err)
		}
	}()

	model, err := ui.NewModel(ui.Options{
		Content:    portfolio,
		Store:      store,
		Width:         cfg.Width,
		Height:        cfg.Height,
		InitialWidth:  cfg.InitialWidth,
		InitialHeight: cfg.InitialHeight,
		RowHeight:     cfg.RowHeight,
		ShowFooter:    cfg.ShowFooter,
	})
	if err != nil {
		return fmt.Errorf("build page: %w", err)
	}
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
