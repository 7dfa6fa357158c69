package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/portfolio-tui/internal/app"
	"github.com/atomicstack/portfolio-tui/internal/config"
)

func TestProbeTerminalSkipsPlainFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	info := probeTerminal(namedFile{"file", f}, namedFile{"missing", nil})
	if len(info.Probes) != 2 || info.Probes[0].Name != "file" || info.Probes[1].Name != "missing" {
		t.Fatalf("expected one probe per file in order, got %+v", info.Probes)
	}
	for _, p := range info.Probes {
		if p.Terminal {
			t.Fatalf("expected %s not to be a terminal", p.Name)
		}
	}
	if _, _, ok := info.Size(); ok {
		t.Fatalf("expected no size without a terminal")
	}
}

func TestSeedSizeUsesFirstTerminal(t *testing.T) {
	tty := terminalInfo{Probes: []terminalProbe{
		{Name: "stdout"},
		{Name: "stdin", Terminal: true, Width: 132, Height: 43},
		{Name: "stderr", Terminal: true, Width: 80, Height: 24},
	}}
	got := seedSize(app.Config{RowHeight: 20}, tty)
	if got.InitialWidth != 132 || got.InitialHeight != 43 {
		t.Fatalf("expected 132x43 from stdin, got %dx%d", got.InitialWidth, got.InitialHeight)
	}
	if got.Width != 0 || got.Height != 0 {
		t.Fatalf("expected the page to keep following resizes, got %+v", got)
	}
}

func TestSeedSizeKeepsExplicitDimensions(t *testing.T) {
	tty := terminalInfo{Probes: []terminalProbe{{Name: "stdout", Terminal: true, Width: 200, Height: 60}}}
	got := seedSize(app.Config{Width: 90}, tty)
	if got.InitialWidth != 0 {
		t.Fatalf("expected --width to win, got initial width %d", got.InitialWidth)
	}
	if got.InitialHeight != 60 {
		t.Fatalf("expected detected height 60, got %d", got.InitialHeight)
	}

	none := seedSize(app.Config{}, terminalInfo{})
	if none != (app.Config{}) {
		t.Fatalf("expected config unchanged without a terminal, got %+v", none)
	}
}

func TestStartupPayloadCarriesConfig(t *testing.T) {
	cfg := config.Config{
		App:     app.Config{ContentPath: "me.yaml", RowHeight: 20, InitialWidth: 100},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		EnvFile: ".env",
		Flags:   map[string]string{"content": "me.yaml"},
		Args:    []string{"--content", "me.yaml"},
	}
	tty := terminalInfo{Probes: []terminalProbe{{Name: "stdout"}}}
	payload := startupPayload(cfg, tty)

	if got, ok := payload["app"].(app.Config); !ok || got != cfg.App {
		t.Fatalf("expected app config %+v, got %#v", cfg.App, payload["app"])
	}
	if flags, ok := payload["flags"].(map[string]string); !ok || flags["content"] != "me.yaml" {
		t.Fatalf("expected flags in payload, got %#v", payload["flags"])
	}
	if payload["trace"] != true || payload["logFile"] != "trace.log" || payload["envFile"] != ".env" {
		t.Fatalf("expected logging details, got %#v", payload)
	}
	if got, ok := payload["terminal"].(terminalInfo); !ok || len(got.Probes) != 1 {
		t.Fatalf("expected terminal probes in payload, got %#v", payload["terminal"])
	}
}
