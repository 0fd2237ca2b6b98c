package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	semver "github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/monkey-lang/monkey/internal/parser"
)

// Config represents common configuration for CLI tools
type Config struct {
	Verbose            bool   `json:"verbose" toml:"verbose" yaml:"verbose"`
	Debug              bool   `json:"debug" toml:"debug" yaml:"debug"`
	LenientTerminators bool   `json:"lenient_terminators" toml:"lenient_terminators" yaml:"lenient_terminators"`
	MaxDepth           int    `json:"max_depth" toml:"max_depth" yaml:"max_depth"`
	Jobs               int    `json:"jobs" toml:"jobs" yaml:"jobs"`
	HistoryFile        string `json:"history_file" toml:"history_file" yaml:"history_file"`
	Prompt             string `json:"prompt" toml:"prompt" yaml:"prompt"`

	// Requires is a semver constraint the running tool must satisfy,
	// e.g. ">= 0.1.0, < 1.0.0".
	Requires string `json:"requires" toml:"requires" yaml:"requires"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Jobs:        runtime.NumCPU(),
		HistoryFile: ".monkey_history",
		Prompt:      ">> ",
	}
}

// LoadConfig loads configuration from file. The format follows the file
// extension: .toml, .yaml/.yml, anything else is read as JSON.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Default config if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		err = toml.Unmarshal(data, config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.CheckVersion(); err != nil {
		return nil, err
	}
	if config.Jobs < 1 {
		config.Jobs = 1
	}

	return config, nil
}

// CheckVersion validates Requires against the running tool version
func (c *Config) CheckVersion() error {
	if strings.TrimSpace(c.Requires) == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", c.Requires, err)
	}

	current, err := SemVer()
	if err != nil {
		return err
	}

	if ok, reasons := constraint.Validate(current); !ok {
		msgs := make([]string, 0, len(reasons))
		for _, r := range reasons {
			msgs = append(msgs, r.Error())
		}
		return fmt.Errorf("monkey %s does not satisfy %q: %s", current, c.Requires, strings.Join(msgs, "; "))
	}
	return nil
}

// ParserOptions maps the configuration to parser options
func (c *Config) ParserOptions() []parser.Option {
	var opts []parser.Option
	if c.LenientTerminators {
		opts = append(opts, parser.WithLenientTerminators())
	}
	if c.MaxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(c.MaxDepth))
	}
	return opts
}

// Logger builds a logger from the configured verbosity
func (c *Config) Logger() *Logger {
	return NewLogger(c.Verbose, c.Debug)
}
