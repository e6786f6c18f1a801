package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vault state and your role",
	Long: `Read the live POSVault state: balance, minimum deposit, withdrawal fee,
pause state, owner and treasury — plus the connected wallet's role.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		reader := newReader(client)

		spin := ui.NewSpinner("Reading vault state...")
		spin.Start()

		pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		latency, _, pingErr := client.Ping(pingCtx)
		chainID, chainErr := client.ChainID()

		balance, balErr := reader.Balance()
		min, minErr := reader.MinDeposit()
		feeBps, feeErr := reader.ProtocolFeeBps()
		paused, pausedErr := reader.Paused()
		owner, ownerErr := reader.Owner()
		treasury, treErr := reader.Treasury()
		block, _ := client.GetBlockNumber()

		spin.Stop()

		fmt.Println(ui.StyleTitle.Render("POSVault · " + vault.ChainName))
		fmt.Println("  " + ui.Meta("contract") + "  " + ui.Addr(vault.ContractAddress))
		if verbose {
			fmt.Println("  " + ui.Meta(newExplorer().AddressURL(vault.ContractAddress)))
		}
		if pingErr != nil {
			fmt.Println("  " + ui.Err("RPC unreachable: "+rpcURL()))
		} else {
			fmt.Println("  " + ui.Meta(fmt.Sprintf("rpc %s · %dms", rpcURL(), latency.Milliseconds())))
		}
		if chainErr == nil && chainID != vault.ChainID {
			fmt.Println("  " + ui.Warn(fmt.Sprintf("RPC reports chain id %d, expected %d", chainID, vault.ChainID)))
		}
		fmt.Println()

		printStat("Vault Balance", balErr, func() string { return ui.Val(vault.FormatWei(balance)) + " ETH" })
		printStat("Min Deposit", minErr, func() string { return ui.Val(vault.FormatWei(min)) + " ETH" })
		printStat("Withdrawal Fee", feeErr, func() string { return ui.Val(fmt.Sprintf("%.2f%%", float64(feeBps)/100)) })
		printStat("Owner", ownerErr, func() string { return ui.Addr(owner) })
		printStat("Treasury", treErr, func() string { return ui.Addr(treasury) })
		if pausedErr != nil {
			printStat("State", pausedErr, nil)
		} else if paused {
			fmt.Println(statRow("State", ui.Badge("PAUSED", ui.StyleError)))
		} else {
			fmt.Println(statRow("State", ui.Badge("LIVE", ui.StyleSuccess)))
		}
		if block > 0 {
			fmt.Println(statRow("Block", ui.Meta(fmt.Sprintf("#%d", block))))
		}

		// Role of the acting wallet. Read failures resolve to user.
		mgr := walletManager()
		w, err := connectedWallet(mgr)
		if err != nil {
			return err
		}
		info := resolveRole(reader, w)
		fmt.Println()
		if !info.Connected {
			fmt.Println("  " + ui.Meta("no wallet connected — role: user"))
			return nil
		}
		fmt.Printf("  %s  role: %s\n", ui.Addr(vault.SidebarAddr(info.Address)), ui.StyleAccent.Render(string(info.Role)))
		if wei, err := client.GetBalance(info.Address); err == nil {
			fmt.Println(statRow("Balance", ui.Val(vault.FormatWei(wei))+" ETH"))
		}
		return nil
	},
}

// statRow renders one aligned label/value line. Labels pad to the widest
// ("Withdrawal Fee", 14 chars).
func statRow(label, value string) string {
	return fmt.Sprintf("  %s  %s", ui.Meta(fmt.Sprintf("%-14s", label)), value)
}

func printStat(label string, err error, render func() string) {
	if err != nil {
		fmt.Println(statRow(label, ui.Err("unavailable")))
		return
	}
	fmt.Println(statRow(label, render()))
}
