// Package config provides configuration management for relbump using koanf.
// Values are loaded with priority: environment variables (RELBUMP_*) >
// project config (.relbump.yml) > defaults. The config file is optional;
// every key has a working default.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ProjectConfigFile is the default project-level config path, resolved
// relative to the working directory.
const ProjectConfigFile = ".relbump.yml"

// envPrefix namespaces relbump environment variables.
const envPrefix = "RELBUMP_"

// Configuration holds the relbump settings.
type Configuration struct {
	// VersionMarker is the token identifying the version-assignment line
	// in the version file. Can be set via RELBUMP_VERSION_MARKER.
	VersionMarker string `koanf:"version_marker" yaml:"version_marker"`

	// ChangelogTemplate is the path to the template prepended to the
	// changelog on post-release bumps.
	ChangelogTemplate string `koanf:"changelog_template" yaml:"changelog_template"`

	// GitCheck enables the clean-worktree preflight before bumping.
	GitCheck bool `koanf:"git_check" yaml:"git_check"`

	// UpstreamCommand is the shell command that prints the upstream
	// framework's current version.
	UpstreamCommand string `koanf:"upstream_command" yaml:"upstream_command"`

	// UpstreamTimeoutSeconds bounds the upstream command's runtime.
	UpstreamTimeoutSeconds int `koanf:"upstream_timeout_seconds" yaml:"upstream_timeout_seconds"`

	// UpstreamVersion pins the upstream version, skipping the command.
	// Usually set via RELBUMP_UPSTREAM_VERSION in CI rather than in the
	// config file.
	UpstreamVersion string `koanf:"upstream_version" yaml:"upstream_version,omitempty"`
}

// UpstreamTimeout returns the upstream command timeout as a duration.
func (c *Configuration) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

// Load loads configuration from defaults, the project config file, and
// environment variables. projectConfigPath overrides the default
// .relbump.yml location; pass "" for the default.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project config file when it exists. A custom
// path that does not exist is an error; the default path is optional.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigFile
	required := false
	if customPath != "" {
		path = customPath
		required = true
	}

	if _, err := os.Stat(path); err != nil {
		if required {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads RELBUMP_* environment overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// (e.g., RELBUMP_VERSION_MARKER -> version_marker).
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// validate rejects configurations the bump flow cannot work with.
func validate(cfg *Configuration) error {
	if cfg.VersionMarker == "" {
		return fmt.Errorf("config validation failed: version_marker must not be empty")
	}
	if cfg.UpstreamTimeoutSeconds < 0 {
		return fmt.Errorf("config validation failed: upstream_timeout_seconds must be >= 0, got %d", cfg.UpstreamTimeoutSeconds)
	}
	return nil
}
