package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/portfolio-tui/internal/app"
	"github.com/atomicstack/portfolio-tui/internal/config"
	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := probeTerminal(
		namedFile{"stdout", os.Stdout},
		namedFile{"stdin", os.Stdin},
		namedFile{"stderr", os.Stderr},
	)
	cfg.App = seedSize(cfg.App, tty)
	events.App.Start(startupPayload(cfg, tty))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type namedFile struct {
	name string
	file *os.File
}

// terminalProbe is the result of checking one descriptor for a terminal.
type terminalProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

type terminalInfo struct {
	Probes []terminalProbe `json:"probes"`
}

// Size returns the dimensions of the first probed terminal that reported
// them.
func (t terminalInfo) Size() (width, height int, ok bool) {
	for _, p := range t.Probes {
		if p.Terminal && p.Width > 0 && p.Height > 0 {
			return p.Width, p.Height, true
		}
	}
	return 0, 0, false
}

func probeTerminal(files ...namedFile) terminalInfo {
	info := terminalInfo{Probes: make([]terminalProbe, 0, len(files))}
	for _, nf := range files {
		p := terminalProbe{Name: nf.name}
		if nf.file != nil && term.IsTerminal(int(nf.file.Fd())) {
			p.Terminal = true
			if w, h, err := term.GetSize(int(nf.file.Fd())); err == nil {
				p.Width, p.Height = w, h
			} else {
				p.Error = err.Error()
			}
		}
		info.Probes = append(info.Probes, p)
	}
	return info
}

// seedSize gives the page the detected terminal size for its first frame.
// Explicit --width/--height keep precedence.
func seedSize(cfg app.Config, tty terminalInfo) app.Config {
	w, h, ok := tty.Size()
	if !ok {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = w
	}
	if cfg.Height == 0 {
		cfg.InitialHeight = h
	}
	return cfg
}

// startupPayload is the trace record written once before the page starts.
func startupPayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"envFile":  cfg.EnvFile,
		"app":      cfg.App,
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
		"terminal": tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}
