//go:build unix

package gameframe

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
)

func planFor(argv ...string) *Plan {
	return &Plan{Command: argv[0], Args: argv, Argv: argv, Env: NewEnvironment()}
}

func TestHandoff_SpawnPassesExitCode(t *testing.T) {
	code, err := Handoff(planFor("sh", "-c", "exit 7"), ExecSpawn, os.Environ(), testLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestHandoff_SpawnSignalExitCode(t *testing.T) {
	code, err := Handoff(planFor("sh", "-c", "kill -TERM $$"), ExecSpawn, os.Environ(), testLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 128+15, code)
}

func TestHandoff_SpawnSeesDerivedEnv(t *testing.T) {
	plan := planFor("sh", "-c", `test "$MANGOHUD" = 1 && test "$DISPLAY" = :99`)
	plan.Env.Set(EnvMangoHud, "1")
	plan.Env.Set(EnvDisplay, ":99")

	code, err := Handoff(plan, ExecSpawn, []string{"PATH=" + os.Getenv("PATH"), "DISPLAY=:0"}, testLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestHandoff_SpawnMissingCommand(t *testing.T) {
	code, err := Handoff(planFor("gameframe-test-no-such-binary"), ExecSpawn, os.Environ(), testLogger(t))
	assert.ErrorIs(t, err, gferrors.ErrLaunchFailed)
	assert.Equal(t, ExitLaunchFailed, code)
}

func TestHandoff_ExecMissingCommand(t *testing.T) {
	// LookPath fails before exec is attempted, so the test process survives.
	code, err := Handoff(planFor("gameframe-test-no-such-binary"), ExecReplace, os.Environ(), testLogger(t))
	assert.ErrorIs(t, err, gferrors.ErrLaunchFailed)
	assert.Equal(t, ExitLaunchFailed, code)
}
