package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"shapegen/internal/config"
	"shapegen/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded by PersistentPreRunE
	cfg *config.Config

	// Logger
	logger      *zap.Logger
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("failure already reported")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shapegen",
	Short: "shapegen - turn plain-English drawing commands into shape coordinates",
	Long: `shapegen reads commands such as

  Draw a circle with a radius of 100
  Draw a rectangle with a width of 250 and a height of 400

and produces the shape's type, measurements and either its centre or its
vertex coordinates.

Run without arguments to start the interactive session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		if err := initLogger(c); err != nil {
			return err
		}
		if err := logging.Initialize(c.Logging.Options()); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		if err := logging.InitAudit(); err != nil {
			return fmt.Errorf("failed to initialize audit log: %w", err)
		}
		logging.Boot("shapegen %s: %s", version, cmd.CommandPath())
		if _, err := os.Stat(resolvedConfigPath()); err != nil {
			if configPath != "" {
				logging.BootWarn("config file %s not readable, using defaults: %v", configPath, err)
			}
		} else {
			logging.BootDebug("config loaded from %s", resolvedConfigPath())
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAudit()
		logging.CloseAll()
	},
	RunE: runInteractive,
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shapegen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shapegen %s\n", version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./"+config.DefaultPath+")")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath
}

// loadConfig reads and validates the config file. A missing file is fine.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", resolvedConfigPath(), err)
	}
	return c, nil
}

// currentConfig returns the loaded config, or the defaults when a command
// runs without PersistentPreRunE (as in tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func initLogger(c *config.Config) error {
	atomicLevel.SetLevel(zapLevel(c.Logging.Level))
	if verbose {
		atomicLevel.SetLevel(zapcore.DebugLevel)
	}

	zc := zap.NewProductionConfig()
	zc.Level = atomicLevel
	var err error
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// zapLevel maps a config level name onto zap, defaulting to info.
func zapLevel(name string) zapcore.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// applyLogLevel pushes a reloaded level into both loggers. --verbose pins
// the CLI logger at debug.
func applyLogLevel(c *config.Config) {
	if err := logging.SetLevel(c.Logging.Level); err != nil {
		logging.ConfigWarn("ignoring log level %q: %v", c.Logging.Level, err)
	}
	if !verbose {
		atomicLevel.SetLevel(zapLevel(c.Logging.Level))
	}
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
