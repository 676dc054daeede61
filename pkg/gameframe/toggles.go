package gameframe

import (
	"os"
)

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Toggles is the set of feature switches read once at startup.
// Only the literal "1" enables a switch; anything else is off.
type Toggles struct {
	VkBasalt bool
	MangoHud bool
	VSync    bool
	XWayland bool
	Profile  bool

	// GraphicsAPI is carried for display only. No rule depends on it.
	GraphicsAPI string

	// FPSLimit is the raw frame-rate limit, DefaultFPSLimit when unset.
	FPSLimit string

	present  map[string]bool
	fpsGiven bool
}

// ReadToggles reads every toggle through lookup.
func ReadToggles(lookup LookupFunc) Toggles {
	t := Toggles{
		FPSLimit: DefaultFPSLimit,
		present:  make(map[string]bool),
	}

	get := func(key string) string {
		v, ok := lookup(key)
		if ok {
			t.present[key] = true
		}
		return v
	}

	t.VkBasalt = get(EnvToggleVkBasalt) == toggleEnabled
	t.MangoHud = get(EnvToggleMangoHud) == toggleEnabled
	t.VSync = get(EnvToggleVSync) == toggleEnabled
	t.XWayland = get(EnvToggleXWayland) == toggleEnabled
	t.Profile = get(EnvToggleProfile) == toggleEnabled
	t.GraphicsAPI = get(EnvToggleAPI)
	if fps := get(EnvToggleFPS); fps != "" {
		t.FPSLimit = fps
		t.fpsGiven = true
	}

	return t
}

// ReadTogglesFromEnv reads toggles from the process environment.
func ReadTogglesFromEnv() Toggles {
	return ReadToggles(os.LookupEnv)
}

// IsSet reports whether key was present in the environment, whatever its value.
func (t Toggles) IsSet(key string) bool {
	return t.present[key]
}

// WithProfile returns a copy where every toggle the environment left unset
// takes the profile's value.
func (t Toggles) WithProfile(p Profile) Toggles {
	out := t
	if !t.IsSet(EnvToggleVkBasalt) && p.VkBasalt != nil {
		out.VkBasalt = *p.VkBasalt
	}
	if !t.IsSet(EnvToggleMangoHud) && p.MangoHud != nil {
		out.MangoHud = *p.MangoHud
	}
	if !t.IsSet(EnvToggleVSync) && p.VSync != nil {
		out.VSync = *p.VSync
	}
	if !t.IsSet(EnvToggleXWayland) && p.XWayland != nil {
		out.XWayland = *p.XWayland
	}
	// An empty GAMEFRAME_FPS counts as unset here too.
	if !t.fpsGiven && p.FPSLimit != "" {
		out.FPSLimit = p.FPSLimit
	}
	return out
}
