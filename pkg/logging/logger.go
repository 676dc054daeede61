package logging

import (
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

const (
	// DefaultLevel keeps the shim quiet unless asked otherwise.
	DefaultLevel = "warn"

	timeFormat = "2006-01-02T15:04:05Z" // UTC ISO format
)

// NewLogger creates a new hclog logger with standard settings.
//
// level accepts a plain hclog level ("debug") or a "json:" prefixed one
// ("json:debug"), which switches the output to JSON.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	actualLevel, jsonFormat := ParseLevel(level)
	if os.Getenv("GAMEFRAME_JSON_LOG") == "1" {
		jsonFormat = true
	}

	// hclog cannot detect a terminal behind the prefix writer, so decide here.
	color := hclog.ColorOff
	if !jsonFormat && runtime.GOOS != "windows" && isTerminal(output) && os.Getenv("NO_COLOR") == "" {
		color = hclog.ForceColor
	}
	if !jsonFormat {
		output = NewPrefixWriter(Prefix(), output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(actualLevel),
		JSONFormat: jsonFormat,
		Output:     output,
		Color:      color,
		TimeFormat: timeFormat,
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// ParseLevel splits a "json:<level>" value into its level and format.
// A bare "json" means JSON at info level.
func ParseLevel(value string) (string, bool) {
	if !strings.HasPrefix(value, "json") {
		return value, false
	}
	parts := strings.SplitN(value, ":", 2)
	if len(parts) > 1 && parts[1] != "" {
		return parts[1], true
	}
	return "info", true
}

// Prefix returns the line prefix for human readable output.
func Prefix() string {
	if runtime.GOOS == "windows" {
		return "[GF] "
	}
	return "🎮 "
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("GAMEFRAME_LOG_LEVEL")
	if level == "" {
		level = DefaultLevel
	}
	return level
}

// OpenOutput returns the log destination. GAMEFRAME_LOG_PATH appends to a
// file; anything that cannot be opened falls back to stderr.
func OpenOutput() io.Writer {
	if logPath := os.Getenv("GAMEFRAME_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			return file
		}
	}
	return os.Stderr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
