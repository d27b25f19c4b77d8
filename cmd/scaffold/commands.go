package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/toyz/scaffold/internal/cli"
	"github.com/toyz/scaffold/internal/config"
	"github.com/toyz/scaffold/internal/logger"
	"github.com/toyz/scaffold/internal/utils"
)

// Set with -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = "none"
)

// app holds what every subcommand needs once flags are parsed
type app struct {
	configFile string
	verbose    bool
	quiet      bool
	jsonLogs   bool

	cfg       *config.Config
	generator *cli.Generator
}

// flagKeys maps command-line flags to configuration keys
var flagKeys = map[string]string{
	"output":       config.KeyOutput,
	"read":         config.KeyReadParallelism,
	"generate":     config.KeyGenerateParallelism,
	"write":        config.KeyWriteParallelism,
	"on-collision": config.KeyOnCollision,
	"extension":    config.KeyExtension,
	"debounce":     config.KeyWatchDebounce,
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate xUnit test scaffolds for C# classes",
		Long: `scaffold reads C# source files and writes one xUnit test class per
declared class, with Moq mocks for interface dependencies and an
arrange/act/assert skeleton for every public method.

Path arguments:
  src/Cart.cs     a single source file
  src             the .cs files directly inside src
  src/...         src and all its subdirectories (bin, obj and hidden directories are skipped)

Examples:
  scaffold generate src/...                  # write tests to ./tests
  scaffold generate -o test/Unit src/Cart.cs # choose the output directory
  scaffold generate --write 1 src/...        # single writer
  scaffold watch src/...                     # regenerate on every save`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: nearest scaffold.yaml, .toml or .json)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")
	flags.BoolVar(&a.jsonLogs, "json-logs", false, "write structured JSON logs to stderr")
	flags.StringP("output", "o", config.DefaultOutputDir, "directory for generated test files")
	flags.Int("read", config.DefaultReadParallelism, "maximum concurrent file reads")
	flags.Int("generate", config.DefaultGenerateParallelism, "maximum concurrent generations")
	flags.Int("write", config.DefaultWriteParallelism, "maximum concurrent file writes")
	flags.String("on-collision", string(config.CollisionOverwrite), "when two classes produce the same file: overwrite or error")
	flags.String("extension", config.DefaultExtension, "source and output file extension")
	flags.Int("debounce", config.DefaultDebounceMS, "watch mode quiet period in milliseconds")

	root.AddCommand(newGenerateCmd(a), newWatchCmd(a), newVersionCmd())
	return root
}

// setup initializes logging, loads configuration and builds the generator
func (a *app) setup(cmd *cobra.Command) error {
	if err := logger.Initialize(logger.Options{JSON: a.jsonLogs, Verbose: a.verbose, Quiet: a.quiet}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	diagnostics := a.newDiagnostics()
	reporter := cli.NewDiagnosticReporter(a.verbose)
	if cmd.OutOrStdout() != os.Stdout {
		diagnostics.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		reporter.SetOutput(cmd.ErrOrStderr())
	}

	cfg, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		reporter.ReportError(err)
		return err
	}

	a.cfg = cfg
	a.generator = cli.NewGenerator(afero.NewOsFs(), diagnostics, reporter)
	return nil
}

func (a *app) newDiagnostics() *utils.DiagnosticSystem {
	switch {
	case a.quiet:
		return utils.NewQuietDiagnostics()
	case a.verbose:
		return utils.NewVerboseDiagnostics()
	default:
		return utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
}

// loadConfig layers flags over environment, config file and defaults
func loadConfig(configFile string, flags *pflag.FlagSet) (*config.Config, error) {
	v, err := config.NewViper(configFile, "")
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}
	return config.FromViper(v)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate test classes once",
		Long:  "Generate one test class per C# class found in paths, or in the configured inputs when no path is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.generator.Generate(cmd.Context(), a.cfg, args)
			return err
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Generate, then regenerate whenever a source file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generator.Watch(cmd.Context(), a.cfg, args)
		},
	}
}

// versionInfo is printed by the version command
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   version,
				Commit:    commit,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format version info: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(output))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "scaffold %s (%s)\n", info.Version, info.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)
			fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolP("json", "j", false, "output version info as JSON")
	return cmd
}
