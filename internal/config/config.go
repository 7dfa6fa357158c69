package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/portfolio-tui/internal/app"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	EnvFile string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envContent    = "PORTFOLIO_TUI_CONTENT"
	envPrefs      = "PORTFOLIO_TUI_PREFS"
	envRowHeight  = "PORTFOLIO_TUI_ROW_HEIGHT"
	envWidth      = "PORTFOLIO_TUI_WIDTH"
	envHeight     = "PORTFOLIO_TUI_HEIGHT"
	envShowFooter = "PORTFOLIO_TUI_FOOTER"
	envMouse      = "PORTFOLIO_TUI_MOUSE"
	envTrace      = "PORTFOLIO_TUI_TRACE"
	envLogFile    = "PORTFOLIO_TUI_LOG_FILE"
	envEnvFile    = "PORTFOLIO_TUI_ENV_FILE"

	defaultEnvFile   = ".env"
	defaultRowHeight = 20
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// the process environment, which wins over values read from the env file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	// The first pass only resolves --env-file; the file then supplies
	// defaults for every other flag.
	first, err := parseFlags(args, env)
	if err != nil {
		return Config{}, err
	}
	dotenv, err := readEnvFile(first.envFile, first.envFile != defaultEnvFile)
	if err != nil {
		return Config{}, err
	}
	values := first
	if len(dotenv) > 0 {
		for k, v := range dotenv {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
		if values, err = parseFlags(args, env); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		App: app.Config{
			ContentPath: values.contentPath,
			PrefsPath:   values.prefsPath,
			Width:       values.width,
			Height:      values.height,
			RowHeight:   values.rowHeight,
			ShowFooter:  values.footer,
			Mouse:       values.mouse,
		},
		Logging: Logging{
			FilePath: values.logFile,
			Trace:    values.trace,
		},
		EnvFile: first.envFile,
		Flags: map[string]string{
			"content":   values.contentPath,
			"prefs":     values.prefsPath,
			"rowHeight": strconv.Itoa(values.rowHeight),
			"width":     strconv.Itoa(values.width),
			"height":    strconv.Itoa(values.height),
			"footer":    strconv.FormatBool(values.footer),
			"mouse":     strconv.FormatBool(values.mouse),
			"trace":     strconv.FormatBool(values.trace),
			"logFile":   values.logFile,
			"envFile":   first.envFile,
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type flagValues struct {
	contentPath string
	prefsPath   string
	rowHeight   int
	width       int
	height      int
	footer      bool
	mouse       bool
	trace       bool
	logFile     string
	envFile     string
}

func parseFlags(args []string, env map[string]string) (flagValues, error) {
	var v flagValues
	flagSet := pflag.NewFlagSet("portfolio-tui", pflag.ContinueOnError)
	flagSet.SetOutput(new(strings.Builder))

	flagSet.StringVar(&v.contentPath, "content", envOrDefault(env, envContent, ""), "path to a portfolio YAML file (built-in content when empty)")
	flagSet.StringVar(&v.prefsPath, "prefs", envOrDefault(env, envPrefs, ""), "path to the preferences database")
	flagSet.IntVar(&v.rowHeight, "row-height", envOrInt(env, envRowHeight, defaultRowHeight), "page pixels per terminal row")
	flagSet.IntVar(&v.width, "width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	flagSet.IntVar(&v.height, "height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	flagSet.BoolVar(&v.footer, "footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	flagSet.BoolVar(&v.mouse, "mouse", envOrBool(env, envMouse, false), "enable mouse wheel scrolling")
	flagSet.BoolVar(&v.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	flagSet.StringVar(&v.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	flagSet.StringVar(&v.envFile, "env-file", envOrDefault(env, envEnvFile, defaultEnvFile), "path to a .env file with default settings")

	if err := flagSet.Parse(args); err != nil {
		return flagValues{}, err
	}
	return v, nil
}

// readEnvFile loads KEY=value pairs. A missing file is only an error when it
// was asked for explicitly.
func readEnvFile(path string, required bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the program cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.RowHeight <= 0 {
		return fmt.Errorf("row height must be > 0 (got %d)", cfg.App.RowHeight)
	}
	return nil
}
