package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	client "github.com/wythers/tron-energy/client/tron"
)

func NewBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <address>",
		Short: "Read a TRC20 balance via contract simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.NewClient(cmd.Context(), nodeURL)
			c.Log = newLogger()

			balance, err := c.GetTRC20Balance(args[0], contractAddr, decimals)
			if err != nil {
				return err
			}

			holds := "no"
			if balance.IsPositive() {
				holds = "yes"
			}
			fmt.Printf("Address: %s\n", args[0])
			fmt.Printf("Balance: %s\n", balance.String())
			fmt.Printf("Holds token: %s\n", holds)
			return nil
		},
	}

	return cmd
}
