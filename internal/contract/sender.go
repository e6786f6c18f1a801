package contract

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TxSigner signs EVM transactions for an account. Satisfied by
// *wallet.Signer; narrowed so tests can stub it.
type TxSigner interface {
	Address() string
	SignTx(tx *types.Transaction, chainID *big.Int) ([]byte, error)
}

// Sender sends write transactions to one contract.
type Sender struct {
	client  RPC
	addr    string
	abi     []ABIEntry
	signer  TxSigner
	chainID *big.Int
}

// NewSender creates a Sender bound to one contract address.
func NewSender(client RPC, contractAddr string, abi []ABIEntry, signer TxSigner, chainID *big.Int) *Sender {
	return &Sender{
		client:  client,
		addr:    contractAddr,
		abi:     abi,
		signer:  signer,
		chainID: chainID,
	}
}

// Send calls a write function and broadcasts the transaction. value is the
// native amount attached to payable functions (nil for zero). Returns the
// transaction hash.
func (s *Sender) Send(funcName string, value *big.Int, args ...string) (string, error) {
	fn := FindFunction(s.abi, funcName)
	if fn == nil {
		return "", fmt.Errorf("function %q not found in ABI", funcName)
	}
	if !fn.IsWriteFunction() {
		return "", fmt.Errorf("function %q is not a write function", funcName)
	}
	if value != nil && value.Sign() > 0 && !fn.IsPayable() {
		return "", fmt.Errorf("function %q is not payable", funcName)
	}

	calldata, err := EncodeCall(fn, args)
	if err != nil {
		return "", fmt.Errorf("encoding call: %w", err)
	}

	from := s.signer.Address()
	if value == nil {
		value = big.NewInt(0)
	}

	gas, err := s.client.EstimateGas(from, s.addr, calldata, value)
	if err != nil {
		// Estimation failure usually means the call would revert — surface
		// it instead of broadcasting a transaction that will burn gas.
		return "", fmt.Errorf("gas estimation failed: %w", err)
	}

	gasPrice, err := s.client.GasPrice()
	if err != nil {
		return "", fmt.Errorf("getting gas price: %w", err)
	}

	nonce, err := s.client.GetPendingNonce(from)
	if err != nil {
		return "", fmt.Errorf("getting nonce: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimPrefix(calldata, "0x"))
	if err != nil {
		return "", fmt.Errorf("decoding calldata: %w", err)
	}
	toAddr := common.HexToAddress(s.addr)

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     nonce,
		GasTipCap: gasPrice,
		GasFeeCap: new(big.Int).Mul(gasPrice, big.NewInt(2)),
		Gas:       gas,
		To:        &toAddr,
		Value:     value,
		Data:      data,
	})

	raw, err := s.signer.SignTx(tx, s.chainID)
	if err != nil {
		return "", fmt.Errorf("signing transaction: %w", err)
	}

	hash, err := s.client.SendRawTransaction("0x" + hex.EncodeToString(raw))
	if err != nil {
		return "", fmt.Errorf("broadcasting transaction: %w", err)
	}

	return hash, nil
}
