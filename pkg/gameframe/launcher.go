package gameframe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/gameframe/internal/userdirs"
	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
)

// Usage is printed when no command is given.
const Usage = "Usage: gameframe <command> [args...]"

// Launcher runs one launch against a process environment.
type Launcher struct {
	Lookup  LookupFunc
	Environ func() []string
	Dirs    userdirs.Dirs
	Logger  hclog.Logger
	Stderr  io.Writer
}

// NewLauncher returns a Launcher bound to the current process.
func NewLauncher(logger hclog.Logger) *Launcher {
	return &Launcher{
		Lookup:  os.LookupEnv,
		Environ: os.Environ,
		Dirs:    userdirs.Default(),
		Logger:  logger,
		Stderr:  os.Stderr,
	}
}

// Prepare reads the toggles and resolves args into a Plan without writing
// anything.
func (l *Launcher) Prepare(args []string) (*Plan, error) {
	if len(args) == 0 {
		return nil, gferrors.ErrNoCommand
	}
	policy := GetIOPolicy(l.Lookup)
	toggles := ReadToggles(l.Lookup)

	var profiles Profiles
	if toggles.Profile {
		path := ProfilesPath(l.Lookup, l.Dirs.ProfilesFile())
		loaded, err := LoadProfiles(path)
		if err != nil {
			if policy == IOStrict {
				return nil, err
			}
			l.Logger.Warn("⚠️ Failed to load profiles, using builtin ones", "path", path, "error", err)
		}
		profiles = loaded
	}

	opts := PlanOptions{Dirs: l.Dirs, Profiles: profiles, Logger: l.Logger}
	plan, err := BuildPlan(args, toggles, opts)
	if errors.Is(err, gferrors.ErrInvalidLaunchOptions) && policy == IOLenient {
		l.Logger.Warn("⚠️ Ignoring profile with bad launch options", "error", err)
		toggles.Profile = false
		plan, err = BuildPlan(args, toggles, opts)
	}
	return plan, err
}

// Run performs a full launch and returns the exit code for the shim. In
// exec mode a successful launch never returns.
func (l *Launcher) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(l.Stderr, Usage)
		return ExitUsage
	}

	l.Logger.Debug("🎮 gameframe starting", "command", args[0], "args", args[1:])
	if l.Logger.IsTrace() {
		l.Logger.Trace("🔧 Environment received from parent process", "count", len(l.Environ()))
	}

	plan, err := l.Prepare(args)
	if err != nil {
		fmt.Fprintf(l.Stderr, "Error: %v\n", err)
		if errors.Is(err, gferrors.ErrInvalidLaunchOptions) {
			return ExitInvalidArgs
		}
		return ExitIOError
	}

	if err := WriteConfigFiles(plan.Files, GetIOPolicy(l.Lookup), l.Logger); err != nil {
		fmt.Fprintf(l.Stderr, "Error: %v\n", err)
		return ExitIOError
	}

	code, err := Handoff(plan, GetExecMode(l.Lookup), l.Environ(), l.Logger)
	if err != nil {
		l.Logger.Error("❌ Failed to launch", "command", plan.Command, "error", err)
		fmt.Fprintf(l.Stderr, "Failed to launch: %s: %v\n", plan.Command, err)
		return ExitLaunchFailed
	}
	return code
}
