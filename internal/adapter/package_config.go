package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

const packageConfigType = "yaml"

// LoadPackageConfig reads one package configuration file. Unknown keys and
// missing required fields are configuration errors.
func LoadPackageConfig(path string) (m.PackageConfig, error) {
	viperCfg := viper.New()
	viperCfg.SetConfigType(packageConfigType)
	viperCfg.SetConfigFile(path)

	if err := viperCfg.ReadInConfig(); err != nil {
		return m.PackageConfig{}, fmt.Errorf("%w: read %s: %w", m.ErrConfiguration, path, err)
	}

	var cfg m.PackageConfig
	if err := viperCfg.UnmarshalExact(&cfg); err != nil {
		return m.PackageConfig{}, fmt.Errorf("%w: unmarshal %s: %w", m.ErrConfiguration, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return m.PackageConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadPackageConfigs reads every YAML file of dir in name order. When names
// is not empty only configurations whose name or file stem is listed are
// kept; a listed name that matches nothing is an error.
func LoadPackageConfigs(dir string, names []string) ([]m.PackageConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read config dir: %w", m.ErrConfiguration, err)
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = false
	}

	var configs []m.PackageConfig

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), ext)
		cfg, err := LoadPackageConfig(filepath.Join(dir, entry.Name()))

		selected := len(names) == 0 || slices.Contains(names, stem) || (err == nil && slices.Contains(names, cfg.Name))
		if !selected {
			continue
		}

		if err != nil {
			return nil, err
		}

		for _, key := range []string{stem, cfg.Name} {
			if _, ok := wanted[key]; ok {
				wanted[key] = true
			}
		}

		configs = append(configs, cfg)
	}

	for _, name := range names {
		if !wanted[name] {
			return nil, fmt.Errorf("%w: no package config named %q in %s", m.ErrConfiguration, name, dir)
		}
	}

	slog.Debug("loaded package configs", "dir", dir, "count", len(configs))

	return configs, nil
}

// SavePackageConfig writes cfg as YAML to path.
func SavePackageConfig(path m.Path, cfg m.PackageConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode package config: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write package config: %w", err)
	}

	return nil
}
