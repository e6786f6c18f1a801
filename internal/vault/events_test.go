package vault

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basepos/vaultctl/internal/chain"
)

func eventTopic(t *testing.T, name string) string {
	t.Helper()
	for _, e := range ABI {
		if e.Type == "event" && e.Name == name {
			return e.Topic()
		}
	}
	t.Fatalf("event %q not in ABI", name)
	return ""
}

func word(v *big.Int) string {
	return fmt.Sprintf("%064x", v)
}

func addrTopic(addr string) string {
	return "0x" + fmt.Sprintf("%064s", strings.ToLower(strings.TrimPrefix(addr, "0x")))
}

func eth(t *testing.T, s string) *big.Int {
	t.Helper()
	wei, err := ParseETH(s)
	require.NoError(t, err)
	return wei
}

func TestDecodeEvent_Deposit(t *testing.T) {
	log := chain.LogEntry{
		Topics:      []string{eventTopic(t, EvDeposit), addrTopic(userAddr)},
		Data:        "0x" + word(eth(t, "1")) + word(big.NewInt(1700000000)),
		BlockNumber: "0x10",
		TxHash:      "0xdeadbeef",
	}

	ev, err := DecodeEvent(log)
	require.NoError(t, err)
	assert.Equal(t, EvDeposit, ev.Name)
	assert.Equal(t, uint64(16), ev.Block)
	assert.Equal(t, "0xdeadbeef", ev.TxHash)
	assert.Equal(t, strings.ToLower(userAddr), ev.Fields["from"])
	assert.Equal(t, "1000000000000000000", ev.Fields["amount"])
	assert.Equal(t, "1700000000", ev.Fields["timestamp"])
}

func TestDecodeEvent_MerchantAdded(t *testing.T) {
	log := chain.LogEntry{
		Topics: []string{eventTopic(t, EvMerchantAdded), addrTopic(userAddr), addrTopic(ownerAddr)},
		Data:   "0x",
	}

	ev, err := DecodeEvent(log)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(userAddr), ev.Fields["merchant"])
	assert.Equal(t, strings.ToLower(ownerAddr), ev.Fields["owner"])
}

func TestDecodeEvent_UnknownTopic(t *testing.T) {
	log := chain.LogEntry{
		Topics: []string{"0x" + strings.Repeat("ab", 32)},
		Data:   "0x",
	}
	_, err := DecodeEvent(log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event topic")
}

func TestDecodeEvent_NoTopics(t *testing.T) {
	_, err := DecodeEvent(chain.LogEntry{Data: "0x"})
	assert.Error(t, err)
}

func TestNotify_Deposit(t *testing.T) {
	n := Notify(Event{Name: EvDeposit, Fields: map[string]string{
		"amount": "1000000000000000000",
	}})
	assert.Equal(t, "💰 Deposit Received", n.Title)
	assert.Equal(t, "1 ETH deposited", n.Body)
	assert.Equal(t, SeveritySuccess, n.Severity)
}

func TestNotify_Withdrawal(t *testing.T) {
	n := Notify(Event{Name: EvWithdrawal, Fields: map[string]string{
		"amountReceived": "990000000000000000",
		"feeTaken":       "10000000000000000",
	}})
	assert.Equal(t, "💸 Withdrawal Processed", n.Title)
	assert.Equal(t, "0.99 ETH withdrawn (0.01 ETH fee)", n.Body)
}

func TestNotify_MerchantAdded(t *testing.T) {
	n := Notify(Event{Name: EvMerchantAdded, Fields: map[string]string{
		"merchant": ContractAddress,
	}})
	assert.Equal(t, "✅ Merchant Added", n.Title)
	assert.Equal(t, "0xF917...8c02", n.Body)
}

func TestNotify_MerchantRemoved(t *testing.T) {
	n := Notify(Event{Name: EvMerchantRemoved, Fields: map[string]string{
		"merchant": ContractAddress,
	}})
	assert.Equal(t, "❌ Merchant Removed", n.Title)
	assert.Equal(t, "0xF917...8c02", n.Body)
}

func TestNotify_Paused(t *testing.T) {
	n := Notify(Event{Name: EvPaused, Fields: map[string]string{}})
	assert.Equal(t, "⏸️ Contract Paused", n.Title)
	assert.Equal(t, "All operations are temporarily suspended", n.Body)
	assert.Equal(t, SeverityDestructive, n.Severity)
}

func TestNotify_Unpaused(t *testing.T) {
	n := Notify(Event{Name: EvUnpaused, Fields: map[string]string{}})
	assert.Equal(t, "▶️ Contract Resumed", n.Title)
	assert.Equal(t, "Operations are now active", n.Body)
	assert.NotEqual(t, SeverityDestructive, n.Severity)
}

func TestNotify_OwnershipTransferred(t *testing.T) {
	n := Notify(Event{Name: EvOwnershipTransferred, Fields: map[string]string{
		"newOwner": ContractAddress,
	}})
	assert.Equal(t, "👑 Ownership Transferred", n.Title)
	assert.Equal(t, "New owner: 0xF917...8c02", n.Body)
}

func TestNotify_EmergencyWithdrawal(t *testing.T) {
	n := Notify(Event{Name: EvEmergencyWithdrawal, Fields: map[string]string{
		"amount": "2000000000000000000",
	}})
	assert.Equal(t, "🚨 Emergency Withdrawal", n.Title)
	assert.Equal(t, "2 ETH withdrawn", n.Body)
	assert.Equal(t, SeverityDestructive, n.Severity)
}
