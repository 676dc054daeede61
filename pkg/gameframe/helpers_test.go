package gameframe

import (
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/gameframe/internal/userdirs"
)

// envMap adapts a map to LookupFunc.
func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func testLogger(t *testing.T) hclog.Logger {
	t.Helper()
	return hclog.New(&hclog.LoggerOptions{
		Name:   t.Name(),
		Level:  hclog.Trace,
		Output: hclog.DefaultOutput,
	})
}

func testDirs(t *testing.T) userdirs.Dirs {
	t.Helper()
	return userdirs.New(t.TempDir())
}
