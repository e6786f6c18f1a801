package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
	"github.com/basepos/vaultctl/internal/wallet"
)

var walletKey string

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage wallets",
	Long: `Manage the wallets vaultctl can act as. A signing wallet (added with
--key) is the equivalent of a connected browser wallet; watch-only wallets
can read state and resolve a role but cannot transact.`,
}

var walletAddCmd = &cobra.Command{
	Use:   "add <name> [address]",
	Short: "Add a wallet (watch-only, or signing with --key)",
	Long: `Add a wallet. With --key the address is derived from the private key and
the key is stored in the OS keychain — never on disk. Without --key an
address argument is required and the wallet is watch-only.

Examples:
  vaultctl wallet add main --key 0xabc123...
  vaultctl wallet add cold 0xF00d...`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := walletManager()
		name := args[0]

		if walletKey != "" {
			if err := mgr.AddWithKey(name, walletKey); err != nil {
				return err
			}
			w, _ := mgr.Get(name)
			fmt.Println(ui.Success("added signing wallet " + name))
			fmt.Println("  " + ui.Addr(w.Address))
			return nil
		}

		if len(args) != 2 {
			return fmt.Errorf("watch-only wallets need an address argument (or pass --key)")
		}
		addr := args[1]
		if !vault.IsValidAddress(addr) {
			return fmt.Errorf("invalid address: %q", addr)
		}
		if err := mgr.AddWatchOnly(name, addr); err != nil {
			return err
		}
		fmt.Println(ui.Success("added watch-only wallet " + name))
		return nil
	},
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := walletManager()
		wallets := mgr.List()
		if len(wallets) == 0 {
			fmt.Println(ui.Meta("no wallets — add one with `vaultctl wallet add`"))
			return nil
		}
		sort.Slice(wallets, func(i, j int) bool { return wallets[i].Name < wallets[j].Name })
		for _, w := range wallets {
			marker := "  "
			if w.IsDefault {
				marker = ui.StyleSuccess.Render("* ")
			}
			kind := ui.Meta(w.Type)
			if w.Type == wallet.TypeSigning {
				kind = ui.StyleAccent.Render(w.Type)
			}
			fmt.Printf("%s%-12s %s  %s\n", marker, w.Name, ui.Addr(vault.SidebarAddr(w.Address)), kind)
		}
		return nil
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a wallet and its stored key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.Confirm("Remove wallet " + args[0] + "?") {
			fmt.Println(ui.Meta("aborted"))
			return nil
		}
		mgr := walletManager()
		if err := mgr.Remove(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success("removed " + args[0]))
		return nil
	},
}

var walletUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the connected wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := walletManager()
		if err := mgr.SetDefault(args[0]); err != nil {
			return err
		}
		cfg.DefaultWallet = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("connected wallet: " + args[0]))
		return nil
	},
}

func init() {
	walletAddCmd.Flags().StringVar(&walletKey, "key", "", "hex private key (stored in OS keychain)")
	walletCmd.AddCommand(walletAddCmd, walletListCmd, walletRemoveCmd, walletUseCmd)
}
