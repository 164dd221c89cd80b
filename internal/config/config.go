package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Well-known configuration file names looked up at the scan root.
// The shared file carries team-wide settings; the local file overrides
// them per checkout and is typically ignored by version control.
const (
	SharedConfigName = "todoscan.yaml"
	LocalConfigName  = "todoscan.local.yaml"
)

// PatternConfig controls how candidate lines are detected.
type PatternConfig struct {
	// Regex is the search pattern applied to each line (substring search,
	// not a full-line match)
	Regex string `yaml:"regex"`

	// Limit is the maximum line length (in characters) eligible for
	// matching; longer lines are skipped regardless of content
	Limit int `yaml:"limit"`

	// CaseSensitive matches the line as-is; when false the line is
	// lower-cased before the pattern is applied
	CaseSensitive bool `yaml:"case_sensitive"`
}

// Config represents todoscan configuration options
type Config struct {
	// Pattern controls candidate line detection
	Pattern PatternConfig `yaml:"pattern"`

	// Encoding is the IANA charset name used to decode file bytes
	Encoding string `yaml:"encoding"`

	// DirectoryExceptions lists directory base names skipped entirely at
	// any depth (e.g. ".git", "node_modules")
	DirectoryExceptions []string `yaml:"directory_exceptions"`

	// FileExceptions lists file names skipped during scanning
	FileExceptions []string `yaml:"file_exceptions"`

	// TimeWarning is the elapsed-seconds threshold above which the scan
	// reports a slow-scan warning (presentation only, never an abort)
	TimeWarning int `yaml:"time_warning"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written (empty disables)
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Pattern: PatternConfig{
			Regex:         "todo",
			Limit:         120,
			CaseSensitive: false,
		},
		Encoding:            "utf-8",
		DirectoryExceptions: []string{".git", ".hg", ".svn", "node_modules", "vendor"},
		FileExceptions:      []string{},
		TimeWarning:         5,
		LogLevel:            "info",
		LogDir:              "",
	}
}

// LoadConfig loads configuration from the specified file path, merged
// over the provided base. If the file doesn't exist the base is returned
// unchanged without error; if it exists but is malformed, an error is
// returned.
func LoadConfig(path string, base *Config) (*Config, error) {
	cfg := *base

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, keep the base (not an error)
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file over the base
	if fileCfg.Encoding != "" {
		cfg.Encoding = fileCfg.Encoding
	}
	if fileCfg.DirectoryExceptions != nil {
		cfg.DirectoryExceptions = fileCfg.DirectoryExceptions
	}
	if fileCfg.FileExceptions != nil {
		cfg.FileExceptions = fileCfg.FileExceptions
	}
	if fileCfg.TimeWarning != 0 {
		cfg.TimeWarning = fileCfg.TimeWarning
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}

	// Merge the pattern section field by field. A second raw unmarshal
	// detects which keys were actually present, so an explicit
	// case_sensitive: false in the file still overrides a true base.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if patternSection, exists := rawMap["pattern"]; exists && patternSection != nil {
			patternMap, _ := patternSection.(map[string]interface{})

			if _, exists := patternMap["regex"]; exists {
				cfg.Pattern.Regex = fileCfg.Pattern.Regex
			}
			if _, exists := patternMap["limit"]; exists {
				cfg.Pattern.Limit = fileCfg.Pattern.Limit
			}
			if _, exists := patternMap["case_sensitive"]; exists {
				cfg.Pattern.CaseSensitive = fileCfg.Pattern.CaseSensitive
			}
		}
	}

	return &cfg, nil
}

// LoadFromDir loads the two-tier configuration for a scan root: defaults,
// then the shared file, then the local override. Absence of either file
// is not an error.
func LoadFromDir(dir string) (*Config, error) {
	cfg, err := LoadConfig(filepath.Join(dir, SharedConfigName), DefaultConfig())
	if err != nil {
		return nil, err
	}
	return LoadConfig(filepath.Join(dir, LocalConfigName), cfg)
}

// IsDirectoryExcepted reports whether a directory base name is excluded
// from traversal.
func (c *Config) IsDirectoryExcepted(name string) bool {
	for _, exc := range c.DirectoryExceptions {
		if exc == name {
			return true
		}
	}
	return false
}

// IsFileExcepted reports whether a file name (or path) is excluded from
// scanning.
func (c *Config) IsFileExcepted(name string) bool {
	for _, exc := range c.FileExceptions {
		if exc == name {
			return true
		}
	}
	return false
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Pattern.Regex == "" {
		return fmt.Errorf("pattern.regex cannot be empty")
	}
	if _, err := regexp.Compile(c.Pattern.Regex); err != nil {
		return fmt.Errorf("invalid pattern.regex: %w", err)
	}
	if c.Pattern.Limit <= 0 {
		return fmt.Errorf("pattern.limit must be > 0, got %d", c.Pattern.Limit)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.TimeWarning < 0 {
		return fmt.Errorf("time_warning must be >= 0, got %d", c.TimeWarning)
	}

	return nil
}
