package gameframe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
)

// Profile holds per-game toggle defaults. Nil fields leave the toggle alone.
type Profile struct {
	Name          string `yaml:"-"`
	FPSLimit      string `yaml:"fps_limit,omitempty"`
	VSync         *bool  `yaml:"vsync,omitempty"`
	VkBasalt      *bool  `yaml:"vkbasalt,omitempty"`
	MangoHud      *bool  `yaml:"mangohud,omitempty"`
	XWayland      *bool  `yaml:"xwayland,omitempty"`
	LaunchOptions string `yaml:"launch_options,omitempty"`
}

// Profiles maps an executable's base name to its profile.
type Profiles map[string]Profile

type profilesFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

func boolPtr(b bool) *bool { return &b }

// BuiltinProfiles returns the profiles shipped with gameframe.
func BuiltinProfiles() Profiles {
	return Profiles{
		"supertuxkart.exe": {
			Name:     "supertuxkart.exe",
			FPSLimit: "60",
			VSync:    boolPtr(true),
			VkBasalt: boolPtr(true),
			MangoHud: boolPtr(true),
		},
	}
}

// Lookup finds the profile for command by its base name.
func (p Profiles) Lookup(command string) (Profile, bool) {
	profile, ok := p[filepath.Base(command)]
	return profile, ok
}

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadProfiles returns the builtin profiles overlaid with the YAML file at
// path. A missing file is not an error. File entries replace builtin
// entries of the same name.
func LoadProfiles(path string) (Profiles, error) {
	profiles := BuiltinProfiles()
	if path == "" {
		return profiles, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return profiles, nil
	}
	if err != nil {
		return profiles, fmt.Errorf("%w: %s: %v", gferrors.ErrProfileLoad, path, err)
	}

	var file profilesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return profiles, fmt.Errorf("%w: %s: %v", gferrors.ErrProfileLoad, path, err)
	}

	for name, profile := range file.Profiles {
		profile.Name = name
		profiles[name] = profile
	}
	return profiles, nil
}

// ProfilesPath returns GAMEFRAME_PROFILES or the default file.
func ProfilesPath(lookup LookupFunc, defaultPath string) string {
	if p, ok := lookup(EnvProfiles); ok && p != "" {
		return p
	}
	return defaultPath
}
