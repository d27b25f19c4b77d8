package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/toyz/scaffold/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. SCAFFOLD_PARALLELISM_READ
const EnvPrefix = "SCAFFOLD"

// configNames are the project config files searched for, in order
var configNames = []string{"scaffold.yaml", "scaffold.yml", "scaffold.toml", "scaffold.json"}

// NewViper creates a viper instance with defaults, environment binding and
// the config file. An explicit configFile must exist; otherwise the nearest
// scaffold.* file at or above workDir is used when present.
func NewViper(configFile, workDir string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	path := configFile
	if path == "" {
		path = FindProjectConfig(workDir)
	}
	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapConfigurationError(path, "read", err)
	}
	return v, nil
}

// FromViper unmarshals, normalizes and validates the configuration in v
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapConfigurationError(v.ConfigFileUsed(), "unmarshal", err)
	}
	cfg.Source = v.ConfigFileUsed()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the configuration without command-line overrides
func Load(configFile, workDir string) (*Config, error) {
	v, err := NewViper(configFile, workDir)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FindProjectConfig searches for a scaffold config file by walking up the
// directory tree from dir. It returns "" when none is found.
func FindProjectConfig(dir string) string {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
