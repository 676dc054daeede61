package gameframe

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/hashicorp/go-hclog"

	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
)

// Handoff starts plan.Argv with parentEnv overlaid by plan.Env.
//
// In ExecReplace mode the current process is replaced and Handoff only
// returns on failure. In ExecSpawn mode the game runs as a child and its
// exit code is returned; the error is non-nil only if it could not start.
func Handoff(plan *Plan, mode ExecMode, parentEnv []string, logger hclog.Logger) (int, error) {
	env := plan.Env.Merge(parentEnv)
	logEnvironmentTrace(plan.Env.Entries(), logger)

	if mode == ExecSpawn {
		logger.Debug("👶 Using spawn mode (child process)")
		return spawn(plan.Argv, env, logger)
	}

	logger.Debug("🔄 Using exec mode (process replacement)")
	err := execReplace(plan.Argv, env, logger)
	return ExitLaunchFailed, err
}

// execReplace looks argv[0] up in PATH the way execvp does and replaces the
// process image. It never returns on success.
func execReplace(argv []string, env []string, logger hclog.Logger) error {
	binary, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%w: failed to find command %s: %v", gferrors.ErrLaunchFailed, argv[0], err)
	}

	logger.Info("🚀 Launching", "binary", binary, "args", argv[1:])
	logger.Trace("About to exec - process will be replaced")

	err = replaceProcess(binary, argv, env)

	// If we reach here, exec failed
	logger.Error("🚨 exec failed", "error", err, "binary", binary)
	if err == nil {
		err = errors.New("exec returned without error")
	}
	return fmt.Errorf("%w: %v", gferrors.ErrLaunchFailed, err)
}

// spawn runs argv as a child with inherited stdio, forwarding termination
// signals, and returns its exit code.
func spawn(argv []string, env []string, logger hclog.Logger) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info("🚀 Launching", "path", cmd.Path, "args", argv[1:])
	if err := cmd.Start(); err != nil {
		return ExitLaunchFailed, fmt.Errorf("%w: failed to start process: %v", gferrors.ErrLaunchFailed, err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, forwardedSignals...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				logger.Debug("📡 Forwarding signal", "signal", sig)
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	signal.Stop(sigs)
	close(done)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitCode(exitErr)
			logger.Info("⏹️ Game exited", "code", code)
			return code, nil
		}
		return ExitLaunchFailed, fmt.Errorf("%w: process error: %v", gferrors.ErrLaunchFailed, err)
	}

	logger.Info("✅ Game exited cleanly")
	return 0, nil
}
