// Package userdirs resolves the per-user locations gameframe reads and writes.
//
// Every path hangs off a single home directory so tests and sandboxes can
// relocate the whole tree with GAMEFRAME_HOME.
package userdirs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configSubdir      = ".config"
	steamCommonSubdir = ".steam/steam/steamapps/common"
)

// Dirs is a resolved set of user directories.
type Dirs struct {
	home string
}

// New returns Dirs rooted at home.
func New(home string) Dirs {
	return Dirs{home: home}
}

// Default returns Dirs rooted at the current user's home.
func Default() Dirs {
	return New(HomeDir())
}

// HomeDir returns the home directory gameframe works under.
func HomeDir() string {
	// Check environment variable first
	if home := os.Getenv("GAMEFRAME_HOME"); home != "" {
		return home
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	// Fallback to temp directory
	return filepath.Join(os.TempDir(), "gameframe")
}

// Home returns the root of all paths.
func (d Dirs) Home() string {
	return d.home
}

// ConfigRoot returns ~/.config.
func (d Dirs) ConfigRoot() string {
	return filepath.Join(d.home, configSubdir)
}

// VkBasaltConfig returns the vkBasalt config file path.
func (d Dirs) VkBasaltConfig() string {
	return filepath.Join(d.ConfigRoot(), "vkBasalt", "vkBasalt.conf")
}

// DXVKConfig returns the DXVK config file path.
func (d Dirs) DXVKConfig() string {
	return filepath.Join(d.ConfigRoot(), "dxvk.conf")
}

// ProfilesFile returns the default per-game profiles file.
func (d Dirs) ProfilesFile() string {
	return filepath.Join(d.ConfigRoot(), "gameframe", "profiles.yaml")
}

// SteamCommon returns the Steam library directory Proton builds are installed into.
func (d Dirs) SteamCommon() string {
	return filepath.Join(d.home, filepath.FromSlash(steamCommonSubdir))
}

// EnsureParent creates the directory that will hold path.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
