package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/build"
	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/runstore"
)

// buildCommand creates the build command for running the simulation.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		flags     wallFlags
		envWidth  int
		envHeight int
		save      bool
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the robot build simulation to completion",
		Long: `Run the robot build simulation to completion.

The build command generates the bond layout, then steps a simulated robot
through it: bricks are placed bottom-up and left to right, and whenever no
reachable brick has all its supports placed, the reach envelope is moved.
The run ends when the wall is complete or the build is stuck.

Pass --save to record the run in the local history (see 'bricklayer runs'),
or --redis to record it in Redis instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if envWidth > 0 {
				cfg.Envelope.Width = envWidth
			}
			if envHeight > 0 {
				cfg.Envelope.Height = envHeight
			}

			w, err := c.generate(cfg, flags.courses, false)
			if err != nil {
				return err
			}
			builder, err := build.New(w, cfg.Envelope.Width, cfg.Envelope.Height)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			stats, buildErr := builder.Run(cmd.Context())
			if buildErr != nil {
				printError("build stuck: %s", errors.UserMessage(buildErr))
			} else {
				p.done(fmt.Sprintf("Placed %d bricks", stats.BricksPlaced))
			}

			fmt.Println(renderWall(w, nil))
			printBuildStats(stats)

			if save || redisAddr != "" {
				store, err := c.newStore(cmd, redisAddr)
				if err != nil {
					return err
				}
				defer store.Close()
				run := runstore.New(cfg.Bond.Variant, w.Width, w.Height, len(w.Courses), cfg.Bond.Seed, stats, buildErr)
				if err := store.Save(cmd.Context(), run); err != nil {
					return err
				}
				printDetail("recorded run %s", run.ID)
			}
			return buildErr
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&envWidth, "env-width", 0, "envelope width in mm (overrides config)")
	cmd.Flags().IntVar(&envHeight, "env-height", 0, "envelope height in mm (overrides config)")
	cmd.Flags().BoolVar(&save, "save", false, "record the run in the local history")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "record the run in Redis at this address")

	return cmd
}

func printBuildStats(stats build.Stats) {
	printKeyValue("placed", fmt.Sprintf("%d bricks", stats.BricksPlaced))
	printKeyValue("repositions", fmt.Sprintf("%d", stats.Repositions))
	printKeyValue("idle steps", fmt.Sprintf("%d", stats.IdleSteps))
	printKeyValue("brick length", fmt.Sprintf("%d mm", stats.TotalBrickLength))
}
