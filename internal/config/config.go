package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig holds optional settings from a codesweep YAML file. Pointer
// fields distinguish "unset" from a zero value so precedence can be applied
// as CLI > local > global.
type FileConfig struct {
	MaxBytes *int64  `yaml:"max_bytes"`
	Debug    *bool   `yaml:"debug"`
	Baseline *string `yaml:"baseline"`
}

var ErrNotFound = errors.New("no config file found")

func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal looks for a config in the scanned root, preferring the dotfile.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range []string{".codesweep.yaml", "codesweep.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNotFound
}

// LoadGlobal looks in $XDG_CONFIG_HOME/codesweep, then ~/.config/codesweep.
func LoadGlobal() (FileConfig, error) {
	var dirs []string
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		dirs = append(dirs, filepath.Join(x, "codesweep"))
	}
	if h := os.Getenv("HOME"); h != "" {
		dirs = append(dirs, filepath.Join(h, ".config", "codesweep"))
	}
	for _, d := range dirs {
		for _, name := range []string{"config.yml", "config.yaml"} {
			p := filepath.Join(d, name)
			if _, err := os.Stat(p); err == nil {
				return LoadFile(p)
			}
		}
	}
	return FileConfig{}, ErrNotFound
}
