package userdirs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirsLayout(t *testing.T) {
	d := New("/home/player")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"config root", d.ConfigRoot(), "/home/player/.config"},
		{"vkbasalt", d.VkBasaltConfig(), "/home/player/.config/vkBasalt/vkBasalt.conf"},
		{"dxvk", d.DXVKConfig(), "/home/player/.config/dxvk.conf"},
		{"profiles", d.ProfilesFile(), "/home/player/.config/gameframe/profiles.yaml"},
		{"steam common", d.SteamCommon(), "/home/player/.steam/steam/steamapps/common"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestHomeDirOverride(t *testing.T) {
	t.Setenv("GAMEFRAME_HOME", "/srv/gameframe")
	if got := HomeDir(); got != "/srv/gameframe" {
		t.Errorf("HomeDir() = %s, want /srv/gameframe", got)
	}
	if got := Default().Home(); got != "/srv/gameframe" {
		t.Errorf("Default().Home() = %s, want /srv/gameframe", got)
	}
}

func TestEnsureParent(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a", "b", "file.conf")

	if err := EnsureParent(target); err != nil {
		t.Fatalf("EnsureParent failed: %v", err)
	}
	info, err := os.Stat(filepath.Dir(target))
	if err != nil {
		t.Fatalf("parent not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("parent is not a directory")
	}

	// Second call is a no-op
	if err := EnsureParent(target); err != nil {
		t.Errorf("EnsureParent on existing dir failed: %v", err)
	}
}
