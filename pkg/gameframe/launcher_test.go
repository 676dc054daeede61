//go:build unix

package gameframe

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/gameframe/internal/userdirs"
)

func newTestLauncher(t *testing.T, home string, env map[string]string) (*Launcher, *bytes.Buffer) {
	t.Helper()
	var stderr bytes.Buffer
	return &Launcher{
		Lookup:  envMap(env),
		Environ: os.Environ,
		Dirs:    userdirs.New(home),
		Logger:  hclog.NewNullLogger(),
		Stderr:  &stderr,
	}, &stderr
}

func TestLauncher_NoCommand(t *testing.T) {
	home := t.TempDir()
	l, stderr := newTestLauncher(t, home, map[string]string{EnvToggleVkBasalt: "1"})

	code := l.Run(nil)

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr.String(), "Usage: gameframe <command> [args...]")

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be written without a command")
}

func TestLauncher_LaunchFailure(t *testing.T) {
	home := t.TempDir()
	l, stderr := newTestLauncher(t, home, map[string]string{EnvToggleVkBasalt: "1"})

	code := l.Run([]string{"gameframe-test-no-such-game", "--level", "1"})

	assert.Equal(t, ExitLaunchFailed, code)
	assert.Contains(t, stderr.String(), "Failed to launch: gameframe-test-no-such-game")

	// Config files are not rolled back
	data, err := os.ReadFile(userdirs.New(home).VkBasaltConfig())
	require.NoError(t, err)
	assert.Equal(t, "effects = sharpen:cas\ncasSharpness = 0.5\n", string(data))
}

func TestLauncher_FailureNamesOriginalCommand(t *testing.T) {
	// Spawn mode so a locally installed proton cannot replace the test binary.
	l, stderr := newTestLauncher(t, t.TempDir(), map[string]string{EnvExecMode: "spawn"})

	code := l.Run([]string{"gameframe-test-game.exe"})

	assert.Equal(t, ExitLaunchFailed, code)
	assert.Contains(t, stderr.String(), "Failed to launch: gameframe-test-game.exe")
}

func TestLauncher_WriteFailurePolicy(t *testing.T) {
	newBlockedHome := func(t *testing.T) string {
		home := t.TempDir()
		// .config as a regular file makes every config write fail
		require.NoError(t, os.WriteFile(filepath.Join(home, ".config"), nil, 0o644))
		return home
	}

	t.Run("strict aborts before handoff", func(t *testing.T) {
		l, stderr := newTestLauncher(t, newBlockedHome(t), map[string]string{
			EnvToggleVkBasalt: "1",
			EnvIOPolicy:       "strict",
			EnvExecMode:       "spawn",
		})

		code := l.Run([]string{"true"})

		assert.Equal(t, ExitIOError, code)
		assert.Contains(t, stderr.String(), "config file write failed")
	})

	t.Run("lenient launches anyway", func(t *testing.T) {
		l, _ := newTestLauncher(t, newBlockedHome(t), map[string]string{
			EnvToggleVkBasalt: "1",
			EnvExecMode:       "spawn",
		})

		assert.Equal(t, 0, l.Run([]string{"true"}))
	})
}

func TestLauncher_SpawnExitCode(t *testing.T) {
	l, _ := newTestLauncher(t, t.TempDir(), map[string]string{EnvExecMode: "spawn"})

	assert.Equal(t, 3, l.Run([]string{"sh", "-c", "exit 3"}))
}

func TestLauncher_BadProfilesFile(t *testing.T) {
	home := t.TempDir()
	profilesPath := filepath.Join(home, "profiles.yaml")
	require.NoError(t, os.WriteFile(profilesPath, []byte("profiles: ["), 0o644))

	env := map[string]string{
		EnvToggleProfile: "1",
		EnvProfiles:      profilesPath,
		EnvExecMode:      "spawn",
	}

	t.Run("lenient falls back to builtin", func(t *testing.T) {
		l, _ := newTestLauncher(t, home, env)
		plan, err := l.Prepare([]string{"supertuxkart.exe"})
		require.NoError(t, err)
		assert.Equal(t, "supertuxkart.exe", plan.ProfileName)
	})

	t.Run("strict refuses", func(t *testing.T) {
		strict := map[string]string{EnvIOPolicy: "strict"}
		for k, v := range env {
			strict[k] = v
		}
		l, _ := newTestLauncher(t, home, strict)
		assert.Equal(t, ExitIOError, l.Run([]string{"true"}))
	})
}

func TestLauncher_BadLaunchOptionsLenient(t *testing.T) {
	home := t.TempDir()
	profilesPath := filepath.Join(home, "profiles.yaml")
	require.NoError(t, os.WriteFile(profilesPath, []byte("profiles:\n  game:\n    launch_options: \"'open\"\n    mangohud: true\n"), 0o644))

	l, _ := newTestLauncher(t, home, map[string]string{
		EnvToggleProfile: "1",
		EnvProfiles:      profilesPath,
	})

	plan, err := l.Prepare([]string{"game"})
	require.NoError(t, err)
	assert.Empty(t, plan.ProfileName)
	assert.Equal(t, []string{"game"}, plan.Argv)
	assert.False(t, plan.Env.Has(EnvMangoHud))
}
