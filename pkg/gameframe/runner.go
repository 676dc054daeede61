package gameframe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/gameframe/internal/userdirs"
	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
)

// Runner is the compatibility layer picked for a Windows executable.
type Runner struct {
	Path  string
	Found bool // false means Path is the bare binary name, left to PATH
}

// NeedsRunner reports whether command is a Windows executable.
// The suffix match is case-sensitive.
func NeedsRunner(command string) bool {
	return strings.HasSuffix(command, WindowsExeSuffix)
}

// DiscoverRunner scans dir (one level) for the first entry whose name
// contains the Proton marker. Entries are visited in lexical order.
// A missing or unreadable dir yields the bare "proton" runner and an error
// wrapping ErrRunnerScan; the runner is usable either way.
func DiscoverRunner(dir string) (Runner, error) {
	fallback := Runner{Path: ProtonBinary}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s: %v", gferrors.ErrRunnerScan, dir, err)
	}

	for _, entry := range entries {
		if strings.Contains(entry.Name(), ProtonMarker) {
			return Runner{
				Path:  filepath.Join(dir, entry.Name(), ProtonBinary),
				Found: true,
			}, nil
		}
	}
	return fallback, nil
}

// resolveRunner records the runner environment and returns the DXVK config
// file for a Windows executable. Non-Windows commands are left alone.
func resolveRunner(command string, dirs userdirs.Dirs, env *Environment, logger hclog.Logger) (*Runner, []ConfigFile) {
	if !NeedsRunner(command) {
		logger.Debug("🐧 Native command, no runner", "command", command)
		return nil, nil
	}

	runner, err := DiscoverRunner(dirs.SteamCommon())
	if err != nil {
		logger.Warn("⚠️ Could not scan for Proton, relying on PATH", "error", err)
	} else if !runner.Found {
		logger.Debug("🔍 No Proton build found, relying on PATH", "dir", dirs.SteamCommon())
	} else {
		logger.Debug("🍷 Found Proton", "path", runner.Path)
	}

	dxvkPath := dirs.DXVKConfig()
	env.Set(EnvProtonEnable, toggleEnabled)
	env.Set(EnvProtonPath, runner.Path)
	env.Set(EnvDXVKHud, DXVKHudFields)
	env.Set(EnvDXVKConfigFile, dxvkPath)

	return &runner, []ConfigFile{DXVKConfig(dxvkPath)}
}

// buildArgv prefixes args with the runner recorded in env, if any.
// The decision is read from env so the argv always agrees with what the
// game will see in PROTON_ENABLE and PROTON_PATH.
func buildArgv(args []string, env *Environment) []string {
	if !env.Has(EnvProtonEnable) {
		return append([]string(nil), args...)
	}
	runner, ok := env.Get(EnvProtonPath)
	if !ok || runner == "" {
		runner = ProtonBinary
	}
	argv := make([]string, 0, len(args)+2)
	argv = append(argv, runner, ProtonRunSubcmd)
	return append(argv, args...)
}
