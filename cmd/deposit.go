package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var depositQR bool

var depositCmd = &cobra.Command{
	Use:   "deposit <amount-eth>",
	Short: "Deposit ETH into the vault",
	Long: `Deposit ETH into the vault. The amount must meet the contract's live
minimum deposit; deposits are unavailable while the contract is paused or
while the minimum cannot be read.

With --uri, no transaction is sent: the EIP-681 payment request URI is
printed instead, for any external wallet to pay.

Examples:
  vaultctl deposit 0.05
  vaultctl deposit 0.05 --uri`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if depositQR {
			wei, err := vault.ParseETH(args[0])
			if err != nil {
				return err
			}
			fmt.Println(ui.Meta("Payment request:"))
			fmt.Println("  " + ui.Val(vault.PaymentURI(wei)))
			return nil
		}

		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.Deposit(args[0])
		return err
	},
}

func init() {
	depositCmd.Flags().BoolVar(&depositQR, "uri", false, "print an EIP-681 payment URI instead of sending")
}
