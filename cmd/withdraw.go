package cmd

import (
	"github.com/spf13/cobra"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <amount-eth>",
	Short: "Withdraw ETH from your vault balance",
	Long: `Withdraw ETH from the connected merchant's vault balance. The protocol
fee is taken on-chain; the Withdrawal event reports the net amount and fee.

Example:
  vaultctl withdraw 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.Withdraw(args[0])
		return err
	},
}
