package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Common errors for project loading.
var (
	ErrFileNotFound     = errors.New("project file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidJSON      = errors.New("invalid JSON syntax")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("project file is empty")
	ErrNoAppSync        = errors.New("project does not declare custom.appSync")
)

// DiscoveryOrder lists the file names tried, in order, when no path is given.
var DiscoveryOrder = []string{"serverless.yml", "serverless.yaml", "serverless.json"}

// envRefPattern matches ${env:NAME} and ${env:NAME, default}.
var envRefPattern = regexp.MustCompile(`\$\{env:([A-Za-z_][A-Za-z0-9_]*)(?:\s*,\s*([^}]*))?\}`)

// ExpandEnvRefs replaces ${env:NAME} references with the environment value,
// or with the default when the variable is unset or empty.
func ExpandEnvRefs(input string) string {
	return envRefPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatch := envRefPattern.FindStringSubmatch(match)
		if val := os.Getenv(submatch[1]); val != "" {
			return val
		}
		return strings.Trim(strings.TrimSpace(submatch[2]), `"'`)
	})
}

// LoadEnvFile loads a dotenv file into the process environment without
// overriding variables that are already set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Discover finds a project file in dir.
func Discover(dir string) (string, error) {
	for _, name := range DiscoveryOrder {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (tried %s)", ErrFileNotFound, dir, strings.Join(DiscoveryOrder, ", "))
}

// LoadFromFile reads and parses a project file, applying environment
// references, defaults and environment overrides.
func LoadFromFile(path string) (*ProjectConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	var cfg *ProjectConfig
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		cfg, err = ParseJSON(data)
	} else {
		cfg, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	cfg.Path = abs
	return cfg, nil
}

// ParseYAML parses a YAML project file.
func ParseYAML(data []byte) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal([]byte(ExpandEnvRefs(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return finish(&cfg)
}

// ParseJSON parses a JSON project file.
func ParseJSON(data []byte) (*ProjectConfig, error) {
	expanded := []byte(ExpandEnvRefs(string(data)))
	if !json.Valid(expanded) {
		return nil, ErrInvalidJSON
	}
	var cfg ProjectConfig
	if err := json.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *ProjectConfig) (*ProjectConfig, error) {
	if cfg.Custom.AppSync == nil {
		return nil, ErrNoAppSync
	}
	cfg.Custom.Simulator.ApplyDefaults()
	ApplyEnvOverrides(&cfg.Custom.Simulator)
	return cfg, nil
}

// ServicePath is the directory holding the project file, or the working
// directory when the config was not loaded from a file.
func (c *ProjectConfig) ServicePath() string {
	if c.Path != "" {
		return filepath.Dir(c.Path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
