package cmd

import (
	"fmt"
	"math/big"

	"github.com/basepos/vaultctl/internal/chain"
	"github.com/basepos/vaultctl/internal/contract"
	"github.com/basepos/vaultctl/internal/ui"
	"github.com/basepos/vaultctl/internal/vault"
	"github.com/basepos/vaultctl/internal/wallet"
)

func rpcURL() string {
	if cfg.RPCURL != "" {
		return cfg.RPCURL
	}
	return vault.DefaultRPCURL
}

func newClient() *chain.EVMClient {
	return chain.NewEVMClient(rpcURL())
}

func newReader(client *chain.EVMClient) *vault.Reader {
	caller := contract.NewCaller(client, vault.ContractAddress, vault.ABI)
	return vault.NewReader(caller)
}

func newExplorer() *chain.Explorer {
	return chain.NewExplorer(vault.ExplorerBaseURL)
}

func walletManager() *wallet.Manager {
	return wallet.NewManager(wallet.WithStore(wallet.NewJSONStore(cfg.WalletsPath())))
}

// connectedWallet resolves the acting wallet: --wallet override first, then
// the manager's default. nil means disconnected.
func connectedWallet(mgr *wallet.Manager) (*wallet.Wallet, error) {
	if walletName != "" {
		return mgr.Get(walletName)
	}
	return mgr.Default(), nil
}

// resolveRole fetches the acting wallet's role against the live contract.
func resolveRole(reader *vault.Reader, w *wallet.Wallet) vault.RoleInfo {
	if w == nil {
		return vault.ResolveRole(reader, "", false)
	}
	return vault.ResolveRole(reader, w.Address, true)
}

// newActions wires the full write path for the acting wallet. Watch-only
// wallets and no wallet at all produce an Actions whose writes fail with
// ErrNoWallet.
func newActions() (*vault.Actions, error) {
	client := newClient()
	reader := newReader(client)

	mgr := walletManager()
	w, err := connectedWallet(mgr)
	if err != nil {
		return nil, err
	}

	opts := []vault.ActionOption{
		vault.WithLogger(log),
		vault.WithUpdateFunc(printUpdate),
	}

	if w == nil || w.Type != wallet.TypeSigning {
		return vault.NewActions(reader, nil, client, opts...), nil
	}

	signer, err := mgr.Signer(w)
	if err != nil {
		return nil, err
	}
	sender := contract.NewSender(client, vault.ContractAddress, vault.ABI, signer, big.NewInt(vault.ChainID))
	return vault.NewActions(reader, sender, client, opts...), nil
}

// printUpdate narrates the transaction lifecycle on stdout.
func printUpdate(u vault.Update) {
	switch u.Status {
	case vault.StatusPending:
		fmt.Println(ui.Meta("→ submitting " + u.Action + "..."))
	case vault.StatusConfirming:
		fmt.Println(ui.Meta("⏳ waiting for confirmation: " + u.TxHash))
	case vault.StatusSuccess:
		fmt.Println(ui.Success("confirmed"))
		fmt.Println(ui.Meta("  " + newExplorer().TxURL(u.TxHash)))
	}
}
