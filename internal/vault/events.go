package vault

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/basepos/vaultctl/internal/chain"
	"github.com/basepos/vaultctl/internal/contract"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo        Severity = "info"
	SeveritySuccess     Severity = "success"
	SeverityError       Severity = "error"
	SeverityDestructive Severity = "destructive"
)

// Notification is one user-facing message, rendered as a toast in the
// dashboard or a line in the event stream.
type Notification struct {
	Title    string
	Body     string
	Severity Severity
}

// Event is one decoded POSVault log.
type Event struct {
	Name   string
	Block  uint64
	TxHash string
	Fields map[string]string // decoded params by name
}

// DecodeEvent decodes a raw log against the POSVault ABI. Indexed params are
// read from topics, the rest from the data words, in declaration order.
func DecodeEvent(log chain.LogEntry) (Event, error) {
	if len(log.Topics) == 0 {
		return Event{}, errors.New("log has no topics")
	}
	entry := contract.FindEventByTopic(ABI, log.Topics[0])
	if entry == nil {
		return Event{}, fmt.Errorf("unknown event topic %s", log.Topics[0])
	}

	words, err := contract.SplitWords(log.Data)
	if err != nil {
		return Event{}, fmt.Errorf("decoding %s data: %w", entry.Name, err)
	}

	ev := Event{
		Name:   entry.Name,
		Block:  log.BlockNum(),
		TxHash: log.TxHash,
		Fields: make(map[string]string, len(entry.Inputs)),
	}

	ti, wi := 1, 0
	for _, p := range entry.Inputs {
		var word []byte
		if p.Indexed {
			if ti >= len(log.Topics) {
				return Event{}, fmt.Errorf("%s: missing topic for %s", entry.Name, p.Name)
			}
			word, err = hex.DecodeString(strings.TrimPrefix(log.Topics[ti], "0x"))
			if err != nil {
				return Event{}, fmt.Errorf("%s: decoding topic for %s: %w", entry.Name, p.Name, err)
			}
			ti++
		} else {
			if wi >= len(words) {
				return Event{}, fmt.Errorf("%s: missing data word for %s", entry.Name, p.Name)
			}
			word = words[wi]
			wi++
		}

		val, err := contract.DecodeWord(p.Type, word)
		if err != nil {
			return Event{}, fmt.Errorf("%s: decoding %s: %w", entry.Name, p.Name, err)
		}
		ev.Fields[p.Name] = val
	}

	return ev, nil
}

// Notify renders an event as its user-facing notification.
func Notify(ev Event) Notification {
	switch ev.Name {
	case EvDeposit:
		return Notification{
			Title:    "💰 Deposit Received",
			Body:     fmt.Sprintf("%s ETH deposited", formatField(ev, "amount")),
			Severity: SeveritySuccess,
		}
	case EvWithdrawal:
		return Notification{
			Title: "💸 Withdrawal Processed",
			Body: fmt.Sprintf("%s ETH withdrawn (%s ETH fee)",
				formatField(ev, "amountReceived"), formatField(ev, "feeTaken")),
			Severity: SeveritySuccess,
		}
	case EvMerchantAdded:
		return Notification{
			Title:    "✅ Merchant Added",
			Body:     ShortAddr(ev.Fields["merchant"]),
			Severity: SeveritySuccess,
		}
	case EvMerchantRemoved:
		return Notification{
			Title:    "❌ Merchant Removed",
			Body:     ShortAddr(ev.Fields["merchant"]),
			Severity: SeverityInfo,
		}
	case EvPaused:
		return Notification{
			Title:    "⏸️ Contract Paused",
			Body:     "All operations are temporarily suspended",
			Severity: SeverityDestructive,
		}
	case EvUnpaused:
		return Notification{
			Title:    "▶️ Contract Resumed",
			Body:     "Operations are now active",
			Severity: SeveritySuccess,
		}
	case EvOwnershipTransferred:
		return Notification{
			Title:    "👑 Ownership Transferred",
			Body:     "New owner: " + ShortAddr(ev.Fields["newOwner"]),
			Severity: SeverityInfo,
		}
	case EvEmergencyWithdrawal:
		return Notification{
			Title:    "🚨 Emergency Withdrawal",
			Body:     fmt.Sprintf("%s ETH withdrawn", formatField(ev, "amount")),
			Severity: SeverityDestructive,
		}
	default:
		return Notification{Title: ev.Name, Severity: SeverityInfo}
	}
}

// formatField renders a decoded wei field as ETH, falling back to "0" when
// the field is absent or malformed.
func formatField(ev Event, name string) string {
	n, ok := new(big.Int).SetString(ev.Fields[name], 10)
	if !ok {
		return "0"
	}
	return FormatWei(n)
}
