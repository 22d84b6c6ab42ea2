// Package tacboard is a terminal workbench for authoring tactical
// metric queries over match data: a predefined metric checklist, a
// visual builder that composes a metric definition document, and a
// community library of shared definitions.
package tacboard

import (
	"time"

	"tacboard/util"
)

// Config is the app configuration, loaded from yaml.
type Config struct {
	LogPath        string `yaml:"log_path"`
	CatalogPath    string `yaml:"catalog_path,omitempty"`
	LibraryPath    string `yaml:"library_path,omitempty"`
	SuggestDelayMs int    `yaml:"suggest_delay_ms,omitempty"`
	AnalyzeDelayMs int    `yaml:"analyze_delay_ms,omitempty"`
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() Config {
	return Config{
		LogPath: "tacboard.log",
	}
}

// LoadConfig reads a config file, falling back to defaults when the
// file is absent.
func LoadConfig(path string) (cfg Config, err error) {

	cfg = DefaultConfig()
	if path == "" {
		return
	}

	err = util.LoadConfig(&cfg, path)
	return
}

// SaveSample writes a default config file to path unless one is
// already there.
func SaveSample(path string) (err error) {

	err = util.SampleConfig(DefaultConfig(), path, 0644)
	return
}

// SuggestDelay returns the configured suggestion delay, zero meaning
// engine default.
func (cfg Config) SuggestDelay() time.Duration {
	return time.Duration(cfg.SuggestDelayMs) * time.Millisecond
}

// AnalyzeDelay returns the configured analysis delay, zero meaning
// engine default.
func (cfg Config) AnalyzeDelay() time.Duration {
	return time.Duration(cfg.AnalyzeDelayMs) * time.Millisecond
}
