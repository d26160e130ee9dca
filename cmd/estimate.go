package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func NewEstimateCmd() *cobra.Command {
	var (
		from      string
		amountStr string
	)

	cmd := &cobra.Command{
		Use:   "estimate <recipient>",
		Short: "Estimate the energy one transfer would consume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			est := newEstimator(cmd, newLogger())
			e, err := est.Estimate(from, args[0], amount)
			if err != nil {
				return err
			}

			fmt.Printf("Recipient: %s\n", e.Recipient)
			fmt.Printf("Holds token: %s\n", holdsLabel(e.HoldsToken))
			fmt.Printf("Energy: %d\n", e.EnergyUsed)
			fmt.Printf("Fee: %s TRX (at %d SUN per energy)\n", e.FeeTRX.StringFixed(6), priceSun)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "sender address")
	cmd.Flags().StringVar(&amountStr, "amount", "0.001", "token amount to simulate")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
