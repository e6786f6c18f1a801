package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorer_TxURL(t *testing.T) {
	e := NewExplorer("https://sepolia.basescan.org")
	assert.Equal(t, "https://sepolia.basescan.org/tx/0xabc", e.TxURL("0xabc"))
}

func TestExplorer_AddressURL(t *testing.T) {
	e := NewExplorer("https://sepolia.basescan.org")
	assert.Equal(t, "https://sepolia.basescan.org/address/0xdef", e.AddressURL("0xdef"))
}

func TestExplorer_TrimsTrailingSlash(t *testing.T) {
	e := NewExplorer("https://sepolia.basescan.org/")
	assert.Equal(t, "https://sepolia.basescan.org/tx/0xabc", e.TxURL("0xabc"))
}
