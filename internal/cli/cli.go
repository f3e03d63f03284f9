// Package cli implements the bricklayer command-line interface.
//
// This package provides commands for planning bond layouts, running the
// build simulation to completion, stepping through it interactively,
// exporting the support graph, and serving the simulation over HTTP. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - plan: Generate a bond layout and print the wall
//   - build: Run the robot simulation to completion
//   - watch: Step through the build interactively in the terminal
//   - export: Write the support graph as DOT or SVG
//   - serve: Expose the simulation as an HTTP API
//   - runs: List recorded build runs
//
// # Example
//
//	import "github.com/matzehuels/bricklayer/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/buildinfo"
	"github.com/matzehuels/bricklayer/pkg/config"
	"github.com/matzehuels/bricklayer/pkg/runstore"
)

// appName is the application name used for directories and display.
const appName = "bricklayer"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bricklayer",
		Short:        "Bricklayer plans masonry bonds and simulates a robot building them",
		Long:         `Bricklayer is a CLI tool that generates brick bond layouts (stretcher, flemish, english-cross, wild), derives the support graph between courses, and simulates a bricklaying robot placing bricks within a limited reach envelope.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.planCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.runsCommand())

	return root
}

// wallFlags are the flags shared by every command that generates a wall.
type wallFlags struct {
	configPath string
	width      int
	height     int
	courses    int
	variant    string
	seed       uint64
}

func (f *wallFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "wall width in mm (overrides config)")
	cmd.Flags().IntVar(&f.height, "height", 0, "wall height in mm (overrides config)")
	cmd.Flags().IntVar(&f.courses, "courses", 0, "number of courses (overrides height)")
	cmd.Flags().StringVarP(&f.variant, "bond", "b", "", "bond variant: stretcher, flemish, english-cross, wild")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "wild bond solver seed")
}

// resolve loads the config file (or defaults) and applies flag overrides.
func (f *wallFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		cfg, err = config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
	}
	if f.width > 0 {
		cfg.Wall.Width = f.width
	}
	if f.height > 0 {
		cfg.Wall.Height = f.height
	}
	if f.variant != "" {
		cfg.Bond.Variant = f.variant
	}
	if cmd.Flags().Changed("seed") {
		cfg.Bond.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

// newStore opens the run store: Redis when an address is given, otherwise
// the JSON file history under ~/.config/bricklayer/runs.
func (c *CLI) newStore(cmd *cobra.Command, redisAddr string) (runstore.Store, error) {
	if redisAddr != "" {
		return newRedisStore(cmd.Context(), redisAddr)
	}
	return runstore.NewFileStore("")
}
