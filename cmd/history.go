package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wythers/tron-energy/store"
)

func NewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past comparison runs from the history file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if historyPath == "" {
				return errors.New("no history file configured, pass --history")
			}

			st, err := store.Open(historyPath)
			if err != nil {
				return fmt.Errorf("open history %s: %w", historyPath, err)
			}

			runs, err := st.Runs(limit)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"When", "From", "Amount", "Held Energy", "Fresh Energy", "Diff", "Ratio"})
			for _, r := range runs {
				table.Append([]string{
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.From,
					r.Amount,
					fmt.Sprintf("%d", r.HeldEnergy),
					fmt.Sprintf("%d", r.FreshEnergy),
					fmt.Sprintf("%d", r.EnergyDiff),
					r.Ratio,
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")

	return cmd
}
