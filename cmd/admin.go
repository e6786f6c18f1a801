package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var emergencyWithdrawCmd = &cobra.Command{
	Use:   "emergency-withdraw <to-address> <amount-eth>",
	Short: "Drain vault funds to an address (owner only)",
	Long: `Bypass the normal withdrawal flow and send vault funds directly to an
address. Use only in emergencies.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, amount := args[0], args[1]
		prompt := fmt.Sprintf("Emergency-withdraw %s ETH to %s? This bypasses the normal withdrawal flow.",
			amount, vault.ShortAddr(to))
		if !ui.ConfirmDanger(prompt) {
			fmt.Println(ui.Meta("aborted"))
			return nil
		}
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.EmergencyWithdraw(to, amount)
		return err
	},
}

var transferOwnershipCmd = &cobra.Command{
	Use:   "transfer-ownership <new-owner-address>",
	Short: "Transfer contract ownership (owner only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newOwner := args[0]
		prompt := fmt.Sprintf("Transfer ownership to %s? You will lose all admin privileges. This cannot be undone.",
			vault.ShortAddr(newOwner))
		if !ui.ConfirmDanger(prompt) {
			fmt.Println(ui.Meta("aborted"))
			return nil
		}
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.TransferOwnership(newOwner)
		return err
	},
}

var renounceOwnershipCmd = &cobra.Command{
	Use:   "renounce-ownership",
	Short: "Permanently renounce contract ownership (owner only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ConfirmDanger("Renounce ownership? The contract will have NO owner, forever.") {
			fmt.Println(ui.Meta("aborted"))
			return nil
		}
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.RenounceOwnership()
		return err
	},
}
