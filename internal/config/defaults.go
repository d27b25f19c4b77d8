package config

import "github.com/spf13/viper"

// Default values
const (
	DefaultReadParallelism     = 3
	DefaultGenerateParallelism = 3
	DefaultWriteParallelism    = 6
	DefaultOutputDir           = "./tests"
	DefaultExtension           = "cs"
	DefaultDebounceMS          = 200
)

// Configuration keys
const (
	KeyReadParallelism     = "parallelism.read"
	KeyGenerateParallelism = "parallelism.generate"
	KeyWriteParallelism    = "parallelism.write"
	KeyInputs              = "inputs"
	KeyOutput              = "output"
	KeyOnCollision         = "on_collision"
	KeyExtension           = "extension"
	KeyWatchDebounce       = "watch.debounce_ms"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyReadParallelism, DefaultReadParallelism)
	v.SetDefault(KeyGenerateParallelism, DefaultGenerateParallelism)
	v.SetDefault(KeyWriteParallelism, DefaultWriteParallelism)
	v.SetDefault(KeyInputs, []string{})
	v.SetDefault(KeyOutput, DefaultOutputDir)
	v.SetDefault(KeyOnCollision, string(CollisionOverwrite))
	v.SetDefault(KeyExtension, DefaultExtension)
	v.SetDefault(KeyWatchDebounce, DefaultDebounceMS)
}
