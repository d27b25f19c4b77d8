// Package config loads generator settings from defaults, a config file,
// SCAFFOLD_* environment variables and command-line flags.
package config

import "strings"

// CollisionPolicy decides what happens when two classes in one run produce
// the same output file name
type CollisionPolicy string

const (
	// CollisionOverwrite keeps the file written last
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionError fails the run on the second write
	CollisionError CollisionPolicy = "error"
)

// Parallelism holds the worker limit of each pipeline stage
type Parallelism struct {
	Read     int `mapstructure:"read"`
	Generate int `mapstructure:"generate"`
	Write    int `mapstructure:"write"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Config is the immutable run configuration
type Config struct {
	Parallelism Parallelism     `mapstructure:"parallelism"`
	Inputs      []string        `mapstructure:"inputs"`
	OutputDir   string          `mapstructure:"output"`
	OnCollision CollisionPolicy `mapstructure:"on_collision"`
	Extension   string          `mapstructure:"extension"`
	Watch       WatchConfig     `mapstructure:"watch"`

	// Source is the config file that was read, empty when none was found
	Source string `mapstructure:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Parallelism: Parallelism{
			Read:     DefaultReadParallelism,
			Generate: DefaultGenerateParallelism,
			Write:    DefaultWriteParallelism,
		},
		Inputs:      []string{},
		OutputDir:   DefaultOutputDir,
		OnCollision: CollisionOverwrite,
		Extension:   DefaultExtension,
		Watch:       WatchConfig{DebounceMS: DefaultDebounceMS},
	}
}

// WithInputs returns a copy of c reading the given input paths
func (c *Config) WithInputs(inputs []string) *Config {
	clone := *c
	clone.Inputs = append([]string(nil), inputs...)
	return &clone
}

// OutputFileName returns the output file name for a generated class
func (c *Config) OutputFileName(className string) string {
	return className + "." + c.Extension
}

func (c *Config) normalize() {
	c.Extension = strings.TrimPrefix(strings.TrimSpace(c.Extension), ".")
	c.OnCollision = CollisionPolicy(strings.ToLower(strings.TrimSpace(string(c.OnCollision))))
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.Inputs == nil {
		c.Inputs = []string{}
	}
}
