package chain

import "strings"

// Explorer builds block-explorer links for one chain.
type Explorer struct {
	baseURL string
}

// NewExplorer creates an Explorer for a block-explorer base URL
// (e.g. https://sepolia.basescan.org).
func NewExplorer(baseURL string) *Explorer {
	return &Explorer{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// TxURL returns the explorer link for a transaction hash.
func (e *Explorer) TxURL(hash string) string {
	if e.baseURL == "" || hash == "" {
		return ""
	}
	return e.baseURL + "/tx/" + hash
}

// AddressURL returns the explorer link for an address.
func (e *Explorer) AddressURL(addr string) string {
	if e.baseURL == "" || addr == "" {
		return ""
	}
	return e.baseURL + "/address/" + addr
}
