package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	model "github.com/wythers/tron-energy/model/tron"
	"github.com/wythers/tron-energy/store"
)

func NewCompareCmd() *cobra.Command {
	var (
		from      string
		amountStr string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "compare <recipient-with-token> <recipient-without-token>",
		Short: "Compare transfer energy between a holding and a fresh recipient",
		Long: `Runs two transfer simulations from the same sender: one to a recipient
that already holds the token and one to a recipient that does not. Reports
per-recipient energy, the absolute difference, the ratio, and the TRX fee
at the configured energy price.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			log := newLogger()
			est := newEstimator(cmd, log)

			cmp, err := est.Compare(from, args[0], args[1], amount)
			if err != nil {
				return err
			}

			if historyPath != "" {
				st, err := store.Open(historyPath)
				if err != nil {
					return fmt.Errorf("open history %s: %w", historyPath, err)
				}
				if err := st.SaveComparison(nodeURL, cmp); err != nil {
					return fmt.Errorf("save comparison: %w", err)
				}
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(cmp)
			}

			renderComparison(cmp)

			// Staked energy is informational only, skip it on errors.
			if res, err := est.Client.GetAccountResource(from); err != nil {
				log.Warn().Err(err).Str("address", from).Msg("account resource lookup failed")
			} else {
				fmt.Printf("Sender staked energy available: %d\n", res.Available())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "sender address")
	cmd.Flags().StringVar(&amountStr, "amount", "0.001", "token amount to simulate")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the comparison as JSON")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func renderComparison(cmp *model.Comparison) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Recipient", "Holds Token", "Energy", "Fee (TRX)"})
	table.AppendBulk([][]string{
		{cmp.Held.Recipient, holdsLabel(cmp.Held.HoldsToken), fmt.Sprintf("%d", cmp.Held.EnergyUsed), cmp.Held.FeeTRX.StringFixed(6)},
		{cmp.Fresh.Recipient, holdsLabel(cmp.Fresh.HoldsToken), fmt.Sprintf("%d", cmp.Fresh.EnergyUsed), cmp.Fresh.FeeTRX.StringFixed(6)},
	})
	table.Render()

	fmt.Printf("Sender: %s\n", cmp.From)
	fmt.Printf("Amount: %s\n", cmp.Amount.String())
	fmt.Printf("Energy price: %d SUN\n", cmp.PriceSun)
	fmt.Printf("Difference: %d energy\n", cmp.EnergyDiff)
	if !cmp.Ratio.IsZero() {
		fmt.Printf("Ratio: %sx\n", cmp.Ratio.StringFixed(2))
	}
}

func holdsLabel(holds *bool) string {
	switch {
	case holds == nil:
		return "unknown"
	case *holds:
		return "yes"
	default:
		return "no"
	}
}
