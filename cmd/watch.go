package cmd

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream vault events live",
	Long: `Watch the POSVault contract and stream decoded events as they happen.
Only events emitted after the watcher starts are shown — never history.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		interval := time.Duration(cfg.WatchInterval) * time.Second

		model := ui.WatchModel{
			Contract: vault.ContractAddr(vault.ContractAddress),
			Chain:    vault.ChainName,
		}
		p := tea.NewProgram(model)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		watcher := vault.NewWatcher(client, vault.ContractAddress,
			vault.WithInterval(interval),
			vault.WithWatcherLogger(log))

		go func() {
			// Status ticker so the view shows polling progress.
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if block, err := client.GetBlockNumber(); err == nil {
						p.Send(ui.WatchStatusMsg{BlockNum: block})
					} else {
						p.Send(ui.WatchStatusMsg{ErrMsg: err.Error()})
					}
				}
			}
		}()

		go func() {
			err := watcher.Run(ctx, func(ev vault.Event) {
				n := vault.Notify(ev)
				p.Send(ui.WatchEventMsg{
					Name:   ev.Name,
					Block:  ev.Block,
					TxHash: ev.TxHash,
					Toast: ui.Toast{
						Title:    n.Title,
						Body:     n.Body,
						Severity: string(n.Severity),
						At:       time.Now(),
					},
				})
			})
			if err != nil && ctx.Err() == nil {
				log.Warn("event watcher stopped", zap.Error(err))
				p.Send(ui.WatchStatusMsg{ErrMsg: err.Error()})
			}
		}()

		_, err := p.Run()
		return err
	},
}
