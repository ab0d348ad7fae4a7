package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// gameConfig mimics how a consuming game embeds the difficulty block in its
// own settings struct.
type gameConfig struct {
	Speed      float64          `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

var testDefaults = []byte(`
speed: 4
difficulty:
  enabled: true
  initial_level: 0.3
  progression:
    type: score
    max_at: 50
  scaling:
    speed_multiplier: 1.5
    gap_reduction: 6
    spacing_reduction: 20
`)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

// isolate points HOME and the working directory at fresh temp dirs so the
// search order can be staged file by file.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

func TestLoadSearchOrder(t *testing.T) {
	t.Run("custom path wins", func(t *testing.T) {
		home, cwd := isolate(t)
		custom := filepath.Join(t.TempDir(), "custom.yaml")
		writeFile(t, custom, "speed: 1")
		writeFile(t, filepath.Join(home, ".arcade-tools", "configs", "snake.yaml"), "speed: 2")
		writeFile(t, filepath.Join(cwd, "configs", "snake.yaml"), "speed: 3")

		var cfg gameConfig
		if err := Load("snake", custom, testDefaults, &cfg); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Speed != 1 {
			t.Errorf("Speed = %v, expected 1 (custom path)", cfg.Speed)
		}
	})

	t.Run("user config wins without custom", func(t *testing.T) {
		home, cwd := isolate(t)
		writeFile(t, filepath.Join(home, ".arcade-tools", "configs", "snake.yaml"), "speed: 2")
		writeFile(t, filepath.Join(cwd, "configs", "snake.yaml"), "speed: 3")

		var cfg gameConfig
		if err := Load("snake", "", testDefaults, &cfg); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Speed != 2 {
			t.Errorf("Speed = %v, expected 2 (user config)", cfg.Speed)
		}
	})

	t.Run("local configs dir wins without user file", func(t *testing.T) {
		_, cwd := isolate(t)
		writeFile(t, filepath.Join(cwd, "configs", "snake.yaml"), "speed: 3")

		var cfg gameConfig
		if err := Load("snake", "", testDefaults, &cfg); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Speed != 3 {
			t.Errorf("Speed = %v, expected 3 (local configs)", cfg.Speed)
		}
	})

	t.Run("defaults when nothing on disk", func(t *testing.T) {
		isolate(t)

		var cfg gameConfig
		if err := Load("snake", "", testDefaults, &cfg); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Speed != 4 {
			t.Errorf("Speed = %v, expected 4 (defaults)", cfg.Speed)
		}
		if !cfg.Difficulty.Enabled || cfg.Difficulty.Progression.MaxAt != 50 {
			t.Errorf("Difficulty block not parsed from defaults: %+v", cfg.Difficulty)
		}
	})

	t.Run("broken user file falls through", func(t *testing.T) {
		home, cwd := isolate(t)
		writeFile(t, filepath.Join(home, ".arcade-tools", "configs", "snake.yaml"), "speed: [unclosed")
		writeFile(t, filepath.Join(cwd, "configs", "snake.yaml"), "speed: 3")

		var cfg gameConfig
		if err := Load("snake", "", testDefaults, &cfg); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Speed != 3 {
			t.Errorf("Speed = %v, expected 3 (fall through broken user file)", cfg.Speed)
		}
	})
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	var cfg gameConfig
	if err := Load("snake", filepath.Join(t.TempDir(), "missing.yaml"), testDefaults, &cfg); err == nil {
		t.Error("Load() should fail on a missing custom path")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "speed: [unclosed")
	if err := Load("snake", bad, testDefaults, &cfg); err == nil {
		t.Error("Load() should fail on an unparseable custom path")
	}
}

func TestLoadKeepsPrefilledValues(t *testing.T) {
	isolate(t)

	cfg := gameConfig{Speed: 7}
	if err := Load("snake", "", nil, &cfg); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed != 7 {
		t.Errorf("Speed = %v, expected pre-filled 7 with empty defaults", cfg.Speed)
	}
}

func TestUserConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := UserConfigPath("snake")
	if p == "" {
		t.Fatal("UserConfigPath() returned empty")
	}

	want := filepath.Join(".arcade-tools", "configs", "snake.yaml")
	if !strings.HasSuffix(p, want) {
		t.Errorf("UserConfigPath() = %q, expected suffix %q", p, want)
	}
}
