package config

import (
	"strings"

	"shapegen/internal/logging"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, console
	Directory  string          `yaml:"directory" json:"directory,omitempty"`   // empty = stderr
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Master toggle - false = no categorized logging
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false (production mode).
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// Options converts the config into logging.Initialize options.
func (c *LoggingConfig) Options() logging.Options {
	format := strings.ToLower(c.Format)
	if format == "text" {
		format = "console"
	}
	return logging.Options{
		Directory:  c.Directory,
		Level:      c.Level,
		Format:     format,
		DebugMode:  c.DebugMode,
		Categories: c.Categories,
	}
}
