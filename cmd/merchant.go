package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var merchantCmd = &cobra.Command{
	Use:   "merchant",
	Short: "Manage vault merchants",
}

var merchantAddCmd = &cobra.Command{
	Use:   "add <address>",
	Short: "Register a merchant (owner only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.AddMerchant(args[0])
		return err
	},
}

var merchantRemoveCmd = &cobra.Command{
	Use:   "remove <address>",
	Short: "Deregister a merchant (owner only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.RemoveMerchant(args[0])
		return err
	},
}

var merchantCheckCmd = &cobra.Command{
	Use:   "check <address>",
	Short: "Check whether an address is a registered merchant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := args[0]
		if !vault.IsValidAddress(addr) {
			return fmt.Errorf("invalid address: %q", addr)
		}
		reader := newReader(newClient())
		isMerchant, err := reader.IsMerchant(addr)
		if err != nil {
			return err
		}
		if isMerchant {
			fmt.Println(ui.Success(vault.ShortAddr(addr) + " is a registered merchant"))
		} else {
			fmt.Println(ui.Meta(vault.ShortAddr(addr) + " is not a merchant"))
		}
		return nil
	},
}

func init() {
	merchantCmd.AddCommand(merchantAddCmd, merchantRemoveCmd, merchantCheckCmd)
}
