package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
)

var eventsBlocks uint64

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent vault events",
	Long: `Query recent POSVault event logs and print them as notifications.

Example:
  vaultctl events --blocks 10000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		spin := ui.NewSpinner("Fetching events...")
		spin.Start()

		head, err := client.GetBlockNumber()
		if err != nil {
			spin.Stop()
			return fmt.Errorf("reading chain head: %w", err)
		}
		from := uint64(0)
		if head > eventsBlocks {
			from = head - eventsBlocks
		}

		logs, err := client.GetLogs(vault.ContractAddress, nil,
			fmt.Sprintf("0x%x", from), "latest")
		if err != nil {
			spin.Stop()
			return fmt.Errorf("fetching logs: %w", err)
		}

		if len(logs) == 0 {
			spin.StopWithMsg(ui.Meta(fmt.Sprintf("no events in the last %d blocks", eventsBlocks)))
			return nil
		}
		spin.Stop()

		explorer := newExplorer()
		for _, entry := range logs {
			ev, err := vault.DecodeEvent(entry)
			if err != nil {
				continue
			}
			n := vault.Notify(ev)
			line := ui.RenderToast(ui.Toast{
				Title:    n.Title,
				Body:     n.Body,
				Severity: string(n.Severity),
				At:       time.Now(),
			})
			fmt.Printf("%s %s\n", ui.Meta(fmt.Sprintf("#%-9d", ev.Block)), line)
			if verbose {
				fmt.Println("  " + ui.Meta(explorer.TxURL(ev.TxHash)))
			}
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().Uint64Var(&eventsBlocks, "blocks", 5000, "how many blocks back to query")
}
