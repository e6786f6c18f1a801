package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the vault (owner only)",
	Long:  `Pause all vault operations. Deposits and withdrawals fail until unpaused.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ConfirmDanger("Pause the vault? All operations will be suspended.") {
			fmt.Println(ui.Meta("aborted"))
			return nil
		}
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.Pause()
		return err
	},
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "Resume the vault (owner only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}
		_, err = actions.Unpause()
		return err
	},
}
