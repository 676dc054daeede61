package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/provide-io/gameframe/pkg/gameframe"
	"github.com/provide-io/gameframe/pkg/logging"
)

const version = "0.1.0"

func buildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return "unknown"
}

func main() {
	// Set up panic recovery to return specific exit code
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(gameframe.ExitPanic)
		}
	}()

	logger := logging.NewLogger("gameframe", logging.GetLogLevel(), logging.OpenOutput())
	launcher := gameframe.NewLauncher(logger)

	// Every argument belongs to the game unless GAMEFRAME_LAUNCHER_CLI is set
	if gameframe.IsCLIMode(os.LookupEnv) {
		os.Exit(runCLI(os.Args[1:], launcher, gameframe.NewDetector(), os.Stdout))
	}
	os.Exit(launcher.Run(os.Args[1:]))
}
