//go:build unix

package gameframe

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

var forwardedSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}

func replaceProcess(binary string, argv []string, env []string) error {
	return unix.Exec(binary, argv, env)
}

// exitCode follows the shell convention of 128+signal for a child killed
// by a signal.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}
