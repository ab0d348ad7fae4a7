package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/jhayduk/arcade-tools/internal/paths"
)

var logger = log.New(io.Discard)

// SetLogger routes the package's debug logging to l. The default logger
// discards everything.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Load reads the configuration called name into out.
// Search order: customPath -> ~/.arcade-tools/configs/<name>.yaml ->
// ./configs/<name>.yaml -> the defaults bytes. Games usually carry their
// defaults in the binary with go:embed and pass them here; out may also be
// pre-filled, since empty defaults leave it untouched.
//
// A customPath that cannot be read or parsed is an error. Unreadable or
// invalid files on the other search paths are skipped silently, so one bad
// override never bricks a game.
func Load(name, customPath string, defaults []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		logger.Debug("config loaded", "name", name, "source", customPath)
		return nil
	}

	// Try user config directory
	if userPath := UserConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				logger.Debug("config loaded", "name", name, "source", userPath)
				return nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", name+".yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			logger.Debug("config loaded", "name", name, "source", localPath)
			return nil
		}
	}

	// Fall back to the caller's defaults
	if err := yaml.Unmarshal(defaults, out); err != nil {
		return fmt.Errorf("config: cannot parse defaults for %s: %w", name, err)
	}
	logger.Debug("config loaded", "name", name, "source", "defaults")
	return nil
}

// UserConfigPath returns where Load looks for the user's override of the
// named configuration, or empty when no home directory is available. Games
// print this so players know where to put their tweaks.
func UserConfigPath(name string) string {
	dir, err := paths.UserDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "configs", name+".yaml")
}
