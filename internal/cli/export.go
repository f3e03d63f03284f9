package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/export"
)

// exportCommand creates the export command for writing the support graph.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		flags    wallFlags
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the wall's support graph as DOT or SVG",
		Long: `Write the wall's support graph as DOT or SVG.

Bricks become nodes labeled by position (R0B0 is the bottom-left brick) and
edges run from each supporting brick to the brick it carries. The DOT output
can be piped to any Graphviz tool; SVG is rendered directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			w, err := c.generate(cfg, flags.courses, false)
			if err != nil {
				return err
			}

			dot := export.ToDOT(w, export.Options{Detailed: detailed})
			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = export.RenderSVG(dot)
				if err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want dot or svg)", format)
			}

			if output == "" {
				output = fmt.Sprintf("wall-%s.%s", cfg.Bond.Variant, format)
			}
			if output == "-" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			printSuccess("exported support graph (%d bricks)", w.BrickCount())
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file ('-' for stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include size class and mm span in labels")

	// Normalize the format early so RunE sees lowercase.
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		format = strings.ToLower(format)
	}

	return cmd
}
