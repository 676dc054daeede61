package gameframe

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/gameframe/internal/userdirs"
	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
)

// ConfigFile is a small text file that is rewritten in full on every launch.
type ConfigFile struct {
	Path  string
	Lines []string
}

// Content renders the file: one line per entry, newline terminated.
func (f ConfigFile) Content() []byte {
	if len(f.Lines) == 0 {
		return nil
	}
	return []byte(strings.Join(f.Lines, "\n") + "\n")
}

// Write truncates and rewrites the file, creating its directory if needed.
func (f ConfigFile) Write() error {
	if err := userdirs.EnsureParent(f.Path); err != nil {
		return fmt.Errorf("%w: %s: %v", gferrors.ErrConfigWrite, f.Path, err)
	}
	if err := os.WriteFile(f.Path, f.Content(), ConfigFilePerms); err != nil {
		return fmt.Errorf("%w: %s: %v", gferrors.ErrConfigWrite, f.Path, err)
	}
	return nil
}

// WriteConfigFiles writes files in order. Under IOLenient a failure is
// logged and the remaining files are still written; under IOStrict the
// first failure is returned.
func WriteConfigFiles(files []ConfigFile, policy IOPolicy, logger hclog.Logger) error {
	for _, f := range files {
		if err := f.Write(); err != nil {
			if policy == IOStrict {
				logger.Error("❌ Failed to write config file", "path", f.Path, "error", err)
				return err
			}
			logger.Warn("⚠️ Failed to write config file, continuing", "path", f.Path, "error", err)
			continue
		}
		logger.Debug("📝 Wrote config file", "path", f.Path, "lines", len(f.Lines))
	}
	return nil
}
