package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/bond"
	"github.com/matzehuels/bricklayer/pkg/config"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// planCommand creates the plan command for generating a bond layout.
func (c *CLI) planCommand() *cobra.Command {
	var (
		flags  wallFlags
		output string
		strict bool
		doInit bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a bond layout and print the wall",
		Long: `Generate a bond layout and print the wall.

The plan command lays out every course for the chosen bond variant, derives
the support graph, and prints a terminal preview together with the layout
statistics. Requested widths are snapped to the nearest width the bond can
tile exactly; pass --strict to fail instead of snapping.

Use --output to write the full layout as JSON for later inspection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if doInit {
				return writeExampleConfig()
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			w, err := c.generate(cfg, flags.courses, strict)
			if err != nil {
				return err
			}

			c.debugSupports(w)

			fmt.Println(renderWall(w, nil))
			fmt.Println(courseTable(w))
			printKeyValue("bond", cfg.Bond.Variant)
			printKeyValue("width", fmt.Sprintf("%d mm", w.Width))
			printKeyValue("height", fmt.Sprintf("%d mm", w.Height))
			printKeyValue("courses", fmt.Sprintf("%d", len(w.Courses)))
			printKeyValue("bricks", fmt.Sprintf("%d", w.BrickCount()))

			if output != "" {
				if err := writeSnapshot(w, output); err != nil {
					return err
				}
				printFile(output)
			}
			printNextStep("Simulate the build", "bricklayer build")
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the layout as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on untileable widths instead of snapping")
	cmd.Flags().BoolVar(&doInit, "init", false, "write a commented bricklayer.toml and exit")

	return cmd
}

// generate resolves courses and width, then runs the bond generator. Unless
// strict is set, the width is snapped to the nearest legal width first.
func (c *CLI) generate(cfg config.Config, coursesFlag int, strict bool) (*wall.Wall, error) {
	variant := cfg.Variant()
	spec := cfg.Spec()

	width := cfg.Wall.Width
	if !strict {
		if snapped := bond.NearestWidth(variant, width, spec); snapped != width {
			printWarning("width %d mm not tileable by %s bond, using %d mm", width, variant, snapped)
			width = snapped
		}
	}
	courses := coursesFlag
	if courses == 0 {
		courses = bond.CoursesForHeight(cfg.Wall.Height, spec)
	}

	p := newProgress(c.Logger)
	w, err := bond.Generate(variant, width, courses, cfg.Params())
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Laid out %d bricks in %d courses", w.BrickCount(), courses))
	return w, nil
}

// debugSupports dumps the support relation brick by brick at debug level.
func (c *CLI) debugSupports(w *wall.Wall) {
	for _, course := range w.Courses {
		for _, b := range course.Bricks {
			supports := w.Supports(b.Ref())
			labels := make([]string, len(supports))
			for i, s := range supports {
				labels[i] = s.String()
			}
			c.Logger.Debug("support", "brick", b.Label(), "class", b.Class.String(), "on", labels)
		}
	}
}

// courseTable lists every course, top first, with its composition. Size
// classes are abbreviated: F full, 3Q three-quarter, H half, Q quarter.
func courseTable(w *wall.Wall) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	abbrev := map[wall.SizeClass]string{
		wall.Full:         "F",
		wall.ThreeQuarter: "3Q",
		wall.Half:         "H",
		wall.Quarter:      "Q",
	}
	rows := make([][]string, 0, len(w.Courses))
	for i := len(w.Courses) - 1; i >= 0; i-- {
		c := w.Courses[i]
		pattern := make([]string, len(c.Bricks))
		for j, b := range c.Bricks {
			pattern[j] = abbrev[b.Class]
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Ordinate),
			fmt.Sprintf("%d", w.CourseY(c.Ordinate)),
			fmt.Sprintf("%d", len(c.Bricks)),
			strings.Join(pattern, " "),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Course", "Y (mm)", "Bricks", "Pattern").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func writeSnapshot(w *wall.Wall, path string) error {
	data, err := json.MarshalIndent(w.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeExampleConfig() error {
	const path = "bricklayer.toml"
	if _, err := os.Stat(path); err == nil {
		printError("%s already exists", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(config.Example), 0644); err != nil {
		return err
	}
	printSuccess("wrote %s", path)
	return nil
}
