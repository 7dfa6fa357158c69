package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.env")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.RowHeight != defaultRowHeight {
		t.Fatalf("expected row height %d, got %d", defaultRowHeight, cfg.App.RowHeight)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.ShowFooter || cfg.App.Mouse {
		t.Fatalf("expected zero-value sizing defaults, got %#v", cfg.App)
	}
	if cfg.EnvFile != defaultEnvFile {
		t.Fatalf("expected env file %q, got %q", defaultEnvFile, cfg.EnvFile)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		envWidth + "=100",
		envHeight + "=30",
		envShowFooter + "=true",
		envContent + "=env.yaml",
	}
	cfg, err := LoadArgs([]string{"--width", "90", "--content", "flag.yaml", "--mouse"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected flag width 90, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 30 {
		t.Fatalf("expected env height 30, got %d", cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.App.Mouse {
		t.Fatalf("expected footer and mouse enabled, got %#v", cfg.App)
	}
	if cfg.App.ContentPath != "flag.yaml" {
		t.Fatalf("expected flag content path, got %q", cfg.App.ContentPath)
	}
	if cfg.Flags["width"] != "90" || cfg.Flags["content"] != "flag.yaml" {
		t.Fatalf("expected flags map to reflect parsed values, got %#v", cfg.Flags)
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args copied, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvFileIsLowestPrecedence(t *testing.T) {
	path := writeEnvFile(t, "PORTFOLIO_TUI_ROW_HEIGHT=16\nPORTFOLIO_TUI_WIDTH=70\nPORTFOLIO_TUI_PREFS=/tmp/prefs.db\n")
	env := []string{envWidth + "=100"}
	cfg, err := LoadArgs([]string{"--env-file", path}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.RowHeight != 16 {
		t.Fatalf("expected row height from env file, got %d", cfg.App.RowHeight)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected process env to beat env file, got %d", cfg.App.Width)
	}
	if cfg.App.PrefsPath != "/tmp/prefs.db" {
		t.Fatalf("expected prefs path from env file, got %q", cfg.App.PrefsPath)
	}

	cfg, err = LoadArgs([]string{"--env-file", path, "--row-height", "24"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.RowHeight != 24 {
		t.Fatalf("expected flag to beat env file, got %d", cfg.App.RowHeight)
	}
}

func TestLoadArgsEnvFileFromEnvironment(t *testing.T) {
	path := writeEnvFile(t, "PORTFOLIO_TUI_FOOTER=true\n")
	cfg, err := LoadArgs(nil, []string{envEnvFile + "=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer from env file")
	}
	if cfg.EnvFile != path {
		t.Fatalf("expected env file %q, got %q", path, cfg.EnvFile)
	}
}

func TestLoadArgsMissingExplicitEnvFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	if _, err := LoadArgs([]string{"--env-file", missing}, nil); err == nil {
		t.Fatalf("expected error for missing env file")
	}
}

func TestLoadArgsRejectsBadSizes(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height", "-5"},
		{"--row-height", "0"},
		{"--row-height", "-20"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	env := []string{envWidth + "=wide", envTrace + "=maybe", "garbage", ""}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace {
		t.Fatalf("expected malformed env values to fall back, got %#v / %#v", cfg.App, cfg.Logging)
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}
