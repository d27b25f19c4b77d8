package config

import "github.com/toyz/scaffold/internal/errors"

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	limits := []struct {
		key   string
		value int
	}{
		{KeyReadParallelism, c.Parallelism.Read},
		{KeyGenerateParallelism, c.Parallelism.Generate},
		{KeyWriteParallelism, c.Parallelism.Write},
	}
	for _, l := range limits {
		if l.value <= 0 {
			return errors.NewConfigurationError(l.key, l.value, "must be a positive integer")
		}
	}

	if c.OutputDir == "" {
		return errors.NewConfigurationError(KeyOutput, c.OutputDir, "output directory cannot be empty")
	}

	switch c.OnCollision {
	case CollisionOverwrite, CollisionError:
	default:
		return errors.NewConfigurationError(KeyOnCollision, c.OnCollision, "must be 'overwrite' or 'error'")
	}

	if c.Extension == "" {
		return errors.NewConfigurationError(KeyExtension, c.Extension, "extension cannot be empty")
	}

	if c.Watch.DebounceMS < 0 {
		return errors.NewConfigurationError(KeyWatchDebounce, c.Watch.DebounceMS, "must be >= 0")
	}

	return nil
}
