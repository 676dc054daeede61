package gameframe

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Environment is the set of variables gameframe derives for the game.
// Keys are write-once and kept in insertion order. Nothing is exported to
// the process environment until Merge builds the child's env at handoff.
type Environment struct {
	keys   []string
	values map[string]string
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]string)}
}

// Set records key=value. A key that is already set keeps its first value
// and Set reports false.
func (e *Environment) Set(key, value string) bool {
	if _, exists := e.values[key]; exists {
		return false
	}
	e.keys = append(e.keys, key)
	e.values[key] = value
	return true
}

// Get returns the value recorded for key.
func (e *Environment) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Has reports whether key has been set.
func (e *Environment) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// Len returns the number of keys.
func (e *Environment) Len() int {
	return len(e.keys)
}

// Entries returns KEY=value pairs in insertion order.
func (e *Environment) Entries() []string {
	out := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, k+"="+e.values[k])
	}
	return out
}

// Merge overlays the derived variables on parent (os.Environ format).
// Parent entries for derived keys are dropped; derived entries follow the
// surviving parent entries in insertion order.
func (e *Environment) Merge(parent []string) []string {
	out := make([]string, 0, len(parent)+len(e.keys))
	for _, kv := range parent {
		key, _, _ := strings.Cut(kv, "=")
		if e.Has(key) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, e.Entries()...)
}

// logEnvironmentTrace logs environment variables at trace level, redacting sensitive values.
func logEnvironmentTrace(env []string, logger hclog.Logger) {
	if !logger.IsTrace() {
		return
	}

	logger.Trace("🌍 Environment passed to the game:")
	for _, kv := range env {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if isSensitiveKey(key) {
			value = "***"
		}
		logger.Trace("  →", "key", key, "value", value)
	}
}

// isSensitiveKey checks if an environment variable key is sensitive and should be redacted in logs.
func isSensitiveKey(key string) bool {
	sensitiveKeys := map[string]bool{
		"SSH_AUTH_SOCK":     true,
		"STEAM_WEB_API_KEY": true,
		"GITHUB_TOKEN":      true,
		"PASSWORD":          true,
	}
	if sensitiveKeys[key] {
		return true
	}
	upper := strings.ToUpper(key)
	return strings.HasSuffix(upper, "_TOKEN") || strings.HasSuffix(upper, "_SECRET")
}
