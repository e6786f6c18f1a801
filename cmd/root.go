package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/basepos/vaultctl/internal/config"
	"github.com/basepos/vaultctl/internal/logging"
	"github.com/basepos/vaultctl/internal/ui"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/basepos/vaultctl/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir      string
	cfg         *config.Config
	log         *zap.Logger
	verbose     bool
	rpcOverride string
	walletName  string
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "POSVault terminal dashboard",
	Long: `vaultctl — terminal dashboard for the POSVault contract on Base Sepolia.

  Check vault state, deposit and withdraw ETH, manage merchants, and watch
  contract events live. Owner-only administration (pause, merchants,
  emergency withdrawal, ownership) is available when the connected wallet
  is the contract owner.

The connected wallet is the default signing wallet; set one with:
  vaultctl wallet add <name> --key <hex>
  vaultctl wallet use <name>`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.Banner())
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if rpcOverride != "" {
			cfg.RPCURL = rpcOverride
		}
		log = logging.New(cfg.Dir(), verbose)
		if cfg.HasPlaceholderProjectID() {
			log.Warn("VAULT_PROJECT_ID is not set, using placeholder project id")
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// VAULT_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("VAULT_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.vaultctl)")
	rootCmd.PersistentFlags().StringVar(&rpcOverride, "rpc", "", "RPC endpoint override")
	rootCmd.PersistentFlags().StringVar(&walletName, "wallet", "", "wallet name override (default: connected wallet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	// Register all sub-commands.
	rootCmd.AddCommand(
		dashboardCmd,
		statusCmd,
		depositCmd,
		withdrawCmd,
		merchantCmd,
		pauseCmd,
		unpauseCmd,
		emergencyWithdrawCmd,
		transferOwnershipCmd,
		renounceOwnershipCmd,
		eventsCmd,
		watchCmd,
		walletCmd,
		configCmd,
	)
}
