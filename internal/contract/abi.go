package contract

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ABIEntry is one ABI entry (function, event, or error).
type ABIEntry struct {
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Inputs          []ABIParam `json:"inputs"`
	Outputs         []ABIParam `json:"outputs"`
	StateMutability string     `json:"stateMutability"`
}

// ABIParam is a parameter in an ABI entry.
type ABIParam struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed"`
}

// IsReadFunction returns true if the function is read-only (view/pure).
func (e ABIEntry) IsReadFunction() bool {
	return e.Type == "function" &&
		(e.StateMutability == "view" || e.StateMutability == "pure")
}

// IsWriteFunction returns true if the function modifies state.
func (e ABIEntry) IsWriteFunction() bool {
	return e.Type == "function" &&
		(e.StateMutability == "nonpayable" || e.StateMutability == "payable")
}

// IsPayable returns true if the function accepts a native value.
func (e ABIEntry) IsPayable() bool {
	return e.Type == "function" && e.StateMutability == "payable"
}

// Signature returns the canonical signature, e.g. "withdraw(uint256)".
func (e ABIEntry) Signature() string {
	types := make([]string, len(e.Inputs))
	for i, p := range e.Inputs {
		types[i] = p.Type
	}
	return e.Name + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the 0x-prefixed 4-byte selector for a function or error.
func (e ABIEntry) Selector() string {
	return "0x" + hex.EncodeToString(keccak([]byte(e.Signature()))[:4])
}

// Topic returns the 0x-prefixed 32-byte topic hash for an event.
func (e ABIEntry) Topic() string {
	return "0x" + hex.EncodeToString(keccak([]byte(e.Signature())))
}

// FindFunction returns the function entry with the given name, or nil.
func FindFunction(abi []ABIEntry, name string) *ABIEntry {
	for i := range abi {
		if abi[i].Type == "function" && abi[i].Name == name {
			return &abi[i]
		}
	}
	return nil
}

// FindEventByTopic returns the event entry whose topic hash matches, or nil.
func FindEventByTopic(abi []ABIEntry, topic string) *ABIEntry {
	for i := range abi {
		if abi[i].Type == "event" && strings.EqualFold(abi[i].Topic(), topic) {
			return &abi[i]
		}
	}
	return nil
}

// --- ABI encoding (simplified, for common types) ---

// EncodeCall builds calldata: 4-byte selector + encoded args.
func EncodeCall(fn *ABIEntry, args []string) (string, error) {
	if len(args) != len(fn.Inputs) {
		return "", fmt.Errorf("%s expects %d argument(s), got %d", fn.Name, len(fn.Inputs), len(args))
	}

	var encoded strings.Builder
	encoded.WriteString(fn.Selector())

	for i, param := range fn.Inputs {
		enc, err := encodeParam(param.Type, args[i])
		if err != nil {
			return "", fmt.Errorf("encoding param %s: %w", param.Name, err)
		}
		encoded.WriteString(enc)
	}

	return encoded.String(), nil
}

// encodeParam encodes a single ABI parameter value as a 32-byte hex word.
func encodeParam(typ, val string) (string, error) {
	switch {
	case typ == "address":
		clean := strings.TrimPrefix(strings.ToLower(val), "0x")
		if len(clean) != 40 {
			return "", fmt.Errorf("invalid address: %s", val)
		}
		return fmt.Sprintf("%064s", clean), nil

	case strings.HasPrefix(typ, "uint") || strings.HasPrefix(typ, "int"):
		n := new(big.Int)
		if _, ok := n.SetString(val, 0); !ok {
			return "", fmt.Errorf("invalid integer: %s", val)
		}
		if n.Sign() < 0 {
			return "", fmt.Errorf("negative value not supported: %s", val)
		}
		return fmt.Sprintf("%064x", n), nil

	case typ == "bool":
		if val == "true" || val == "1" {
			return fmt.Sprintf("%064d", 1), nil
		}
		return fmt.Sprintf("%064d", 0), nil

	default:
		return "", fmt.Errorf("unsupported parameter type: %s", typ)
	}
}

// DecodeResult decodes the raw hex result of a call into string values.
func DecodeResult(fn *ABIEntry, hexData string) ([]string, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(hexData, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding hex result: %w", err)
	}

	if len(fn.Outputs) == 0 {
		return nil, nil
	}

	var results []string
	offset := 0

	for _, out := range fn.Outputs {
		if offset+32 > len(data) {
			return nil, fmt.Errorf("result too short for output %q", out.Type)
		}

		word := data[offset : offset+32]
		offset += 32

		val, err := DecodeWord(out.Type, word)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}

	return results, nil
}

// DecodeWord decodes a single 32-byte ABI word into its string form.
func DecodeWord(typ string, word []byte) (string, error) {
	if len(word) != 32 {
		return "", fmt.Errorf("expected 32-byte word, got %d bytes", len(word))
	}

	switch {
	case typ == "address":
		return "0x" + hex.EncodeToString(word[12:]), nil

	case strings.HasPrefix(typ, "uint") || strings.HasPrefix(typ, "int"):
		return new(big.Int).SetBytes(word).String(), nil

	case typ == "bool":
		if word[31] == 1 {
			return "true", nil
		}
		return "false", nil

	default:
		return "0x" + hex.EncodeToString(word), nil
	}
}

// SplitWords cuts decoded log data (hex without selector) into 32-byte words.
func SplitWords(hexData string) ([][]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(hexData, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding hex data: %w", err)
	}
	if len(data)%32 != 0 {
		return nil, fmt.Errorf("data length %d is not a multiple of 32", len(data))
	}
	words := make([][]byte, 0, len(data)/32)
	for i := 0; i < len(data); i += 32 {
		words = append(words, data[i:i+32])
	}
	return words, nil
}

func keccak(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}
