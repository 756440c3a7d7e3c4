package model

import (
	"fmt"
	"slices"
	"strings"
)

// PackageConfig describes one package set: the image it is built into and
// where its result files live.
type PackageConfig struct {
	Name        string            `mapstructure:"name" yaml:"name"`
	Output      string            `mapstructure:"output" yaml:"output"`
	Tag         string            `mapstructure:"tag" yaml:"tag"`
	Packages    []string          `mapstructure:"packages" yaml:"packages"`
	BaseImage   string            `mapstructure:"base_image" yaml:"base_image"`
	OpamEnvPath string            `mapstructure:"opam_env_path" yaml:"opam_env_path"`
	User        string            `mapstructure:"user" yaml:"user"`
	InfoPath    map[string]string `mapstructure:"info_path" yaml:"info_path"`
}

// Image returns the reference of the image holding the installed packages.
func (c PackageConfig) Image() string {
	return c.Name + ":" + c.Tag
}

// ResultPath returns the append-only result file of stage.
func (c PackageConfig) ResultPath(stage Stage) Path {
	return Path(c.Output + "_" + string(stage) + ".jsonl")
}

// SnapshotPath returns where the resolved configuration is written.
func (c PackageConfig) SnapshotPath() Path {
	return Path(c.Output + "_config.yaml")
}

// SessionLabel is the value used to tag every sandbox started for c.
func (c PackageConfig) SessionLabel() string {
	return c.Name
}

// Validate checks that every required field is set.
func (c PackageConfig) Validate() error {
	var missing []string

	for key, value := range map[string]string{
		"name":          c.Name,
		"output":        c.Output,
		"tag":           c.Tag,
		"base_image":    c.BaseImage,
		"opam_env_path": c.OpamEnvPath,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	if len(c.Packages) == 0 {
		missing = append(missing, "packages")
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: package config %q is missing %s", ErrConfiguration, c.Name, strings.Join(missing, ", "))
	}

	return nil
}
