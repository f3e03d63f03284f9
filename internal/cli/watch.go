package cli

import (
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/bricklayer/pkg/build"
)

// watchCommand creates the watch command for stepping through a build.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		flags     wallFlags
		envWidth  int
		envHeight int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Step through the build interactively in the terminal",
		Long: `Step through the build interactively in the terminal.

Each keypress advances the simulation by one action: a brick placement or
an envelope move. Autoplay steps continuously until the build finishes.

Keys: space/enter step, a autoplay, q quit.`,
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

			model := newBuildModel(builder)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&envWidth, "env-width", 0, "envelope width in mm (overrides config)")
	cmd.Flags().IntVar(&envHeight, "env-height", 0, "envelope height in mm (overrides config)")

	return cmd
}
