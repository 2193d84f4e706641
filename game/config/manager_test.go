package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/blockfall/blockfall/game/engine"
)

func createValidConfig() *engine.GameConfig {
	config := engine.DefaultConfig()
	config.Name = "Test Config"
	config.Description = "Test configuration"
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "classic", createValidConfig())

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := NewManager("/non/existent/path")
		if err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("missing classic falls back to built-in default", func(t *testing.T) {
		dir := t.TempDir()
		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("NewManager should succeed without config files, got: %v", err)
		}
		def := manager.GetDefault()
		if def == nil {
			t.Fatal("Expected a built-in default config")
		}
		if def.Rows != 20 || def.Cols != 10 {
			t.Errorf("Built-in default is %dx%d, want 20x10", def.Cols, def.Rows)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "zen", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("existing config", func(t *testing.T) {
		config, err := manager.LoadConfig("zen")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "Test Config" {
			t.Errorf("Loaded config name %q, want 'Test Config'", config.Name)
		}
	})

	t.Run("cached on second load", func(t *testing.T) {
		first, _ := manager.LoadConfig("zen")
		second, _ := manager.LoadConfig("zen")
		if first != second {
			t.Error("Expected cached config instance on second load")
		}
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := manager.LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := createValidConfig()
		bad.Rows = 1
		writeConfigFile(t, dir, "broken", bad)

		_, err := manager.LoadConfig("broken")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "garbage.json"), []byte("{nope"), 0644); err != nil {
			t.Fatalf("Failed to write garbage file: %v", err)
		}
		if _, err := manager.LoadConfig("garbage"); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()

	classic := createValidConfig()
	classic.Name = "Classic"
	writeConfigFile(t, dir, "classic", classic)

	zen := createValidConfig()
	zen.Name = "Zen"
	zen.Rows = 22
	zen.Cols = 12
	writeConfigFile(t, dir, "zen", zen)

	// Invalid files are skipped, not reported
	bad := createValidConfig()
	bad.PreviewCount = 99
	writeConfigFile(t, dir, "bad", bad)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(configs))
	}

	byID := make(map[string]bool)
	for _, info := range configs {
		byID[info.ConfigID] = true
		if info.Filename != info.ConfigID+".json" {
			t.Errorf("Filename %q does not match config ID %q", info.Filename, info.ConfigID)
		}
	}
	if !byID["classic"] || !byID["zen"] {
		t.Errorf("Expected classic and zen, got %v", byID)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("valid config round-trips", func(t *testing.T) {
		config := createValidConfig()
		config.Name = "Custom"
		if err := manager.SaveConfig("custom", config); err != nil {
			t.Fatalf("Failed to save config: %v", err)
		}

		loaded, err := manager.LoadConfig("custom")
		if err != nil {
			t.Fatalf("Failed to reload saved config: %v", err)
		}
		if loaded.Name != "Custom" {
			t.Errorf("Reloaded config name %q, want 'Custom'", loaded.Name)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		bad := createValidConfig()
		bad.Gravity.BaseInterval = 0
		if err := manager.SaveConfig("bad", bad); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(dir, "bad.json")); statErr == nil {
			t.Error("Invalid config was written to disk")
		}
	})
}

func TestManager_SetDefault(t *testing.T) {
	dir := t.TempDir()
	zen := createValidConfig()
	zen.Name = "Zen"
	writeConfigFile(t, dir, "zen", zen)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SetDefault("zen"); err != nil {
		t.Fatalf("Failed to set default: %v", err)
	}
	if manager.GetDefault().Name != "Zen" {
		t.Errorf("Default is %q, want Zen", manager.GetDefault().Name)
	}

	if err := manager.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}
