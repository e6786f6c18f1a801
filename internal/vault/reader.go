package vault

import (
	"fmt"
	"math/big"
	"strconv"
)

// viewCaller is the slice of contract.Caller the reader needs.
type viewCaller interface {
	CallOne(funcName string, args ...string) (string, error)
}

// Reader exposes the POSVault view functions as typed reads. It holds no
// state of its own — the chain is always the source of truth.
type Reader struct {
	caller viewCaller
}

// NewReader creates a Reader over a contract caller.
func NewReader(caller viewCaller) *Reader {
	return &Reader{caller: caller}
}

// Owner returns the contract owner address.
func (r *Reader) Owner() (string, error) {
	return r.caller.CallOne(FnOwner)
}

// Paused reports whether the contract is paused.
func (r *Reader) Paused() (bool, error) {
	v, err := r.caller.CallOne(FnPaused)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// IsMerchant reports whether addr is a registered merchant.
func (r *Reader) IsMerchant(addr string) (bool, error) {
	v, err := r.caller.CallOne(FnIsMerchant, addr)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// MinDeposit returns the contract's minimum deposit in wei.
func (r *Reader) MinDeposit() (*big.Int, error) {
	return r.readWei(FnMinDeposit)
}

// ProtocolFeeBps returns the withdrawal fee in basis points.
func (r *Reader) ProtocolFeeBps() (uint64, error) {
	v, err := r.caller.CallOne(FnProtocolFeeBps)
	if err != nil {
		return 0, err
	}
	bps, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing fee bps %q: %w", v, err)
	}
	return bps, nil
}

// Balance returns the vault's held balance in wei.
func (r *Reader) Balance() (*big.Int, error) {
	return r.readWei(FnGetBalance)
}

// Treasury returns the protocol treasury address.
func (r *Reader) Treasury() (string, error) {
	return r.caller.CallOne(FnTreasury)
}

func (r *Reader) readWei(fn string) (*big.Int, error) {
	v, err := r.caller.CallOne(fn)
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(v, 10)
	if !ok {
		return nil, fmt.Errorf("parsing %s result %q", fn, v)
	}
	return n, nil
}
