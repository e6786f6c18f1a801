package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live vault dashboard",
	Long: `Full-screen dashboard: live vault stats, the connected wallet's role,
and a stream of contract event notifications.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		reader := newReader(client)

		mgr := walletManager()
		w, err := connectedWallet(mgr)
		if err != nil {
			return err
		}
		roleInfo := resolveRole(reader, w)

		info := ui.DashboardInfo{
			Role:     string(roleInfo.Role),
			Contract: vault.ContractAddr(vault.ContractAddress),
			Chain:    vault.ChainName,
		}
		if roleInfo.Connected {
			info.Wallet = vault.SidebarAddr(roleInfo.Address)
		}

		interval := time.Duration(cfg.WatchInterval) * time.Second

		fetcher := func() (ui.VaultStats, error) {
			balance, err := reader.Balance()
			if err != nil {
				return ui.VaultStats{}, fmt.Errorf("reading balance: %w", err)
			}
			stats := ui.VaultStats{Balance: vault.FormatWei(balance)}

			// A failed min-deposit read leaves the field empty; the view
			// shows deposits as disabled until it resolves.
			if min, err := reader.MinDeposit(); err == nil {
				stats.MinDeposit = vault.FormatWei(min)
			}
			if feeBps, err := reader.ProtocolFeeBps(); err == nil {
				stats.FeeBps = feeBps
			}
			if paused, err := reader.Paused(); err == nil {
				stats.Paused = paused
			}
			if owner, err := reader.Owner(); err == nil {
				stats.Owner = vault.SidebarAddr(owner)
			}
			if treasury, err := reader.Treasury(); err == nil {
				stats.Treasury = vault.SidebarAddr(treasury)
			}
			if block, err := client.GetBlockNumber(); err == nil {
				stats.Block = block
			}
			return stats, nil
		}

		p := ui.NewDashboard(info, interval, fetcher)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		watcher := vault.NewWatcher(client, vault.ContractAddress,
			vault.WithInterval(interval),
			vault.WithWatcherLogger(log))
		go func() {
			err := watcher.Run(ctx, func(ev vault.Event) {
				n := vault.Notify(ev)
				p.Send(ui.ToastMsg(ui.Toast{
					Title:    n.Title,
					Body:     n.Body,
					Severity: string(n.Severity),
					At:       time.Now(),
				}))
			})
			if err != nil && ctx.Err() == nil {
				log.Warn("event watcher stopped", zap.Error(err))
			}
		}()

		_, err = p.Run()
		return err
	},
}
