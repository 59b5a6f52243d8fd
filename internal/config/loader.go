package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default -> fallback
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	var cfg T

	// A custom path is explicit, so its errors are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var user T
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	var embedded T
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &embedded); err != nil {
		return fallback(), nil
	}
	return embedded, nil
}

// LoadMirror loads the mirror puzzle configuration.
func LoadMirror(customPath string) (MirrorConfig, error) {
	return load("mirror", customPath, DefaultMirrorConfig)
}

// LoadCatch loads the catch game configuration.
func LoadCatch(customPath string) (CatchConfig, error) {
	return load("catch", customPath, DefaultCatchConfig)
}

// LoadGallery loads the shooting gallery configuration.
func LoadGallery(customPath string) (GalleryConfig, error) {
	return load("gallery", customPath, DefaultGalleryConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
