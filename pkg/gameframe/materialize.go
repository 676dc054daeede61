package gameframe

import (
	"github.com/provide-io/gameframe/internal/userdirs"
)

// materializeRule turns one toggle into environment entries and config files.
type materializeRule struct {
	name    string
	enabled func(Toggles) bool
	apply   func(Toggles, userdirs.Dirs, *Environment) []ConfigFile
}

// materializeRules run in this order. Their key sets are disjoint.
var materializeRules = []materializeRule{
	{
		name:    "vkbasalt",
		enabled: func(t Toggles) bool { return t.VkBasalt },
		apply:   applyVkBasalt,
	},
	{
		name:    "mangohud",
		enabled: func(t Toggles) bool { return t.MangoHud },
		apply:   applyMangoHud,
	},
	{
		name:    "vsync",
		enabled: func(t Toggles) bool { return t.VSync },
		apply:   applyVSync,
	},
	{
		name:    "xwayland",
		enabled: func(t Toggles) bool { return t.XWayland },
		apply:   applyXWayland,
	},
}

// Materialize records the environment for every enabled toggle into env and
// returns the config files those toggles own. Nothing is written to disk.
func Materialize(t Toggles, dirs userdirs.Dirs, env *Environment) []ConfigFile {
	var files []ConfigFile
	for _, rule := range materializeRules {
		if !rule.enabled(t) {
			continue
		}
		files = append(files, rule.apply(t, dirs, env)...)
	}
	return files
}

// EnabledRules lists the names of the rules t switches on.
func EnabledRules(t Toggles) []string {
	var names []string
	for _, rule := range materializeRules {
		if rule.enabled(t) {
			names = append(names, rule.name)
		}
	}
	return names
}

func applyVkBasalt(_ Toggles, dirs userdirs.Dirs, env *Environment) []ConfigFile {
	path := dirs.VkBasaltConfig()
	env.Set(EnvEnableVkBasalt, toggleEnabled)
	env.Set(EnvVkBasaltConfigFile, path)
	return []ConfigFile{VkBasaltConfig(path)}
}

func applyMangoHud(t Toggles, _ userdirs.Dirs, env *Environment) []ConfigFile {
	env.Set(EnvMangoHud, toggleEnabled)
	env.Set(EnvMangoHudConfig, MangoHudConfig(t.FPSLimit))
	return nil
}

func applyVSync(_ Toggles, _ userdirs.Dirs, env *Environment) []ConfigFile {
	env.Set(EnvVBlankMode, VBlankModeSync)
	env.Set(EnvVKPresentMode, VKPresentModeFIFO)
	return nil
}

func applyXWayland(_ Toggles, _ userdirs.Dirs, env *Environment) []ConfigFile {
	env.Set(EnvDisplay, XWaylandDisplay)
	env.Set(EnvSessionType, XWaylandSession)
	return nil
}

// VkBasaltConfig is the contrast-adaptive sharpening config.
func VkBasaltConfig(path string) ConfigFile {
	return ConfigFile{
		Path: path,
		Lines: []string{
			"effects = sharpen:cas",
			"casSharpness = " + CASSharpness,
		},
	}
}

// MangoHudConfig builds the MANGOHUD_CONFIG value.
func MangoHudConfig(fpsLimit string) string {
	return "fps_limit=" + fpsLimit + "," + MangoHudFeatures
}

// DXVKConfig is the DXVK HUD and async config.
func DXVKConfig(path string) ConfigFile {
	return ConfigFile{
		Path: path,
		Lines: []string{
			"dxvk.hud = " + DXVKHudFields,
			"dxvk.enableAsync = true",
		},
	}
}
