//go:build !unix

package gameframe

import (
	"os"
	"os/exec"

	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
)

var forwardedSignals = []os.Signal{os.Interrupt}

func replaceProcess(string, []string, []string) error {
	return gferrors.ErrExecUnsupported
}

func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return ExitLaunchFailed
}
