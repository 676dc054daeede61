package gameframe

import (
	"runtime"
	"strconv"
	"strings"
)

// IOPolicy decides what a failed config write or profile read does.
type IOPolicy int

const (
	IOLenient IOPolicy = iota // Default - warn and keep going
	IOStrict                  // Abort before handoff
)

func (p IOPolicy) String() string {
	if p == IOStrict {
		return "strict"
	}
	return "lenient"
}

// GetIOPolicy reads GAMEFRAME_IO_POLICY. Unknown values mean lenient.
func GetIOPolicy(lookup LookupFunc) IOPolicy {
	val, _ := lookup(EnvIOPolicy)
	if strings.ToLower(strings.TrimSpace(val)) == "strict" {
		return IOStrict
	}
	return IOLenient
}

// ExecMode selects how the game is started.
type ExecMode int

const (
	ExecReplace ExecMode = iota // exec(2), the shim disappears
	ExecSpawn                   // child process, exit status passed through
)

func (m ExecMode) String() string {
	if m == ExecSpawn {
		return "spawn"
	}
	return "exec"
}

// GetExecMode reads GAMEFRAME_EXEC_MODE. Windows cannot replace a process
// image, so it always spawns.
func GetExecMode(lookup LookupFunc) ExecMode {
	return execModeFor(lookup, runtime.GOOS)
}

func execModeFor(lookup LookupFunc, goos string) ExecMode {
	if goos == "windows" {
		return ExecSpawn
	}
	val, _ := lookup(EnvExecMode)
	if strings.ToLower(val) == "spawn" {
		return ExecSpawn
	}
	return ExecReplace
}

// isEnvTrue reports whether an environment value reads as true.
// Used for launcher settings; feature toggles only accept "1".
func isEnvTrue(val string) bool {
	if val == "" {
		return false
	}

	valLower := strings.ToLower(val)
	if valLower == "on" || valLower == "yes" {
		return true
	}

	result, err := strconv.ParseBool(val)
	return err == nil && result
}

// IsCLIMode reports whether GAMEFRAME_LAUNCHER_CLI asks for the inspection CLI.
func IsCLIMode(lookup LookupFunc) bool {
	val, _ := lookup(EnvLauncherCLI)
	return isEnvTrue(val)
}
