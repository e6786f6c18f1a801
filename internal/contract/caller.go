package contract

import (
	"fmt"
	"math/big"
)

// RPC is the subset of the chain client the caller and sender need.
// Satisfied by *chain.EVMClient; narrowed so tests can stub it.
type RPC interface {
	CallContract(toAddr, calldata string) (string, error)
	EstimateGas(from, to, data string, value *big.Int) (uint64, error)
	GasPrice() (*big.Int, error)
	GetPendingNonce(address string) (uint64, error)
	SendRawTransaction(rawTx string) (string, error)
}

// Caller calls read-only (view/pure) contract functions.
type Caller struct {
	client RPC
	addr   string
	abi    []ABIEntry
}

// NewCaller creates a Caller bound to one contract address.
func NewCaller(client RPC, contractAddr string, abi []ABIEntry) *Caller {
	return &Caller{
		client: client,
		addr:   contractAddr,
		abi:    abi,
	}
}

// Call calls a read function and returns decoded results as strings.
func (c *Caller) Call(funcName string, args ...string) ([]string, error) {
	fn := FindFunction(c.abi, funcName)
	if fn == nil {
		return nil, fmt.Errorf("function %q not found in ABI", funcName)
	}

	if !fn.IsReadFunction() {
		return nil, fmt.Errorf("function %q is not a read function (stateMutability: %s)", funcName, fn.StateMutability)
	}

	calldata, err := EncodeCall(fn, args)
	if err != nil {
		return nil, fmt.Errorf("encoding call: %w", err)
	}

	result, err := c.client.CallContract(c.addr, calldata)
	if err != nil {
		return nil, fmt.Errorf("contract call failed: %w", err)
	}

	decoded, err := DecodeResult(fn, result)
	if err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}

	return decoded, nil
}

// CallOne calls a read function that returns exactly one value.
func (c *Caller) CallOne(funcName string, args ...string) (string, error) {
	out, err := c.Call(funcName, args...)
	if err != nil {
		return "", err
	}
	if len(out) != 1 {
		return "", fmt.Errorf("function %q returned %d values, expected 1", funcName, len(out))
	}
	return out[0], nil
}
