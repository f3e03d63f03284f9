package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/runstore"
)

// runsCommand creates the runs command for listing recorded builds.
func (c *CLI) runsCommand() *cobra.Command {
	var redisAddr string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded build runs",
		Long: `List recorded build runs.

Runs recorded with 'bricklayer build --save' are read from the local
history under ~/.config/bricklayer/runs; pass --redis to read the shared
history from Redis instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newStore(cmd, redisAddr)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printInfo("no recorded runs")
				printNextStep("Record one", "bricklayer build --save")
				return nil
			}
			fmt.Println(runsTable(runs))
			return nil
		},
	}

	cmd.Flags().StringVar(&redisAddr, "redis", "", "read runs from Redis at this address")
	return cmd
}

func runsTable(runs []runstore.Run) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(runs))
	for i, r := range runs {
		status := StyleSuccess.Render(iconSuccess)
		if !r.Succeeded() {
			status = StyleWarning.Render(r.ErrorCode)
		}
		rows[i] = []string{
			r.CreatedAt.Local().Format("Jan 2 15:04"),
			r.Variant,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d", r.Stats.BricksPlaced),
			fmt.Sprintf("%d", r.Stats.Repositions),
			status,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("When", "Bond", "Size (mm)", "Placed", "Moves", "Result").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// newRedisStore opens a Redis-backed run store at the given address.
func newRedisStore(ctx context.Context, addr string) (runstore.Store, error) {
	return runstore.NewRedisStore(ctx, &redis.Options{Addr: addr})
}
