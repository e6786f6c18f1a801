package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Meta("config dir      ") + cfg.Dir())
		fmt.Println(ui.Meta("rpc url         ") + rpcURL())
		fmt.Println(ui.Meta("chain           ") + fmt.Sprintf("%s (%d)", vault.ChainName, vault.ChainID))
		fmt.Println(ui.Meta("contract        ") + vault.ContractAddress)
		fmt.Println(ui.Meta("default wallet  ") + orNone(cfg.DefaultWallet))
		fmt.Println(ui.Meta("watch interval  ") + fmt.Sprintf("%ds", cfg.WatchInterval))
		if cfg.HasPlaceholderProjectID() {
			fmt.Println(ui.Meta("project id      ") + ui.Warn("placeholder — set "+"VAULT_PROJECT_ID"))
		} else {
			fmt.Println(ui.Meta("project id      ") + "set")
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a persisted configuration value.

Keys:
  rpc-url          RPC endpoint override ("" to reset to the chain default)
  watch-interval   seconds between event polls (>= 1)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "rpc-url":
			cfg.RPCURL = value
		case "watch-interval":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return fmt.Errorf("watch-interval must be a positive integer, got %q", value)
			}
			cfg.WatchInterval = n
		default:
			return fmt.Errorf("unknown key %q", key)
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(key + " updated"))
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return ui.Meta("(none)")
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
