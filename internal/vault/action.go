package vault

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/basepos/vaultctl/internal/chain"
)

// Status of a write invocation. Success and Error are terminal and mutually
// exclusive; every invocation passes through Pending before anything else.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusPending    Status = "pending"    // signing + broadcast in flight
	StatusConfirming Status = "confirming" // broadcast, waiting to be mined
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Update is one lifecycle transition of a write invocation.
type Update struct {
	Action string
	Status Status
	TxHash string
	Reason string // set only on StatusError
}

// ErrNoWallet is returned when a write is attempted without a signing wallet.
var ErrNoWallet = errors.New("no signing wallet connected")

// txSender is the slice of contract.Sender the actions need.
type txSender interface {
	Send(funcName string, value *big.Int, args ...string) (string, error)
}

// receiptWaiter is the slice of chain.EVMClient the actions need.
type receiptWaiter interface {
	WaitForReceipt(hash string, timeout time.Duration) (*chain.TxReceipt, error)
}

// Actions drives the POSVault write functions through a uniform lifecycle:
// validate, submit, wait for the receipt, report. Validation failures never
// leave idle — nothing is signed or broadcast until the input is good.
type Actions struct {
	reader   *Reader
	sender   txSender
	waiter   receiptWaiter
	timeout  time.Duration
	onUpdate func(Update)
	notify   func(Notification)
	log      *zap.Logger
}

// ActionOption configures an Actions.
type ActionOption func(*Actions)

// WithUpdateFunc registers a callback for every lifecycle transition.
func WithUpdateFunc(fn func(Update)) ActionOption {
	return func(a *Actions) { a.onUpdate = fn }
}

// WithNotifyFunc registers a callback for failure notifications.
func WithNotifyFunc(fn func(Notification)) ActionOption {
	return func(a *Actions) { a.notify = fn }
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) ActionOption {
	return func(a *Actions) { a.log = log }
}

// WithConfirmTimeout bounds how long a confirming transaction is waited on.
func WithConfirmTimeout(d time.Duration) ActionOption {
	return func(a *Actions) { a.timeout = d }
}

// NewActions wires the write actions. sender may be nil when no signing
// wallet is connected; every write then fails with ErrNoWallet.
func NewActions(reader *Reader, sender txSender, waiter receiptWaiter, opts ...ActionOption) *Actions {
	a := &Actions{
		reader:  reader,
		sender:  sender,
		waiter:  waiter,
		timeout: 5 * time.Minute,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Deposit sends amountETH into the vault. Blocked while the contract is
// paused, and unavailable until the live minimum-deposit read resolves.
func (a *Actions) Deposit(amountETH string) (Update, error) {
	wei, err := ParseETH(amountETH)
	if err != nil {
		return Update{}, err
	}

	paused, err := a.reader.Paused()
	if err != nil {
		return Update{}, fmt.Errorf("checking pause state: %w", err)
	}
	if paused {
		return Update{}, errors.New("Contract is currently paused")
	}

	min, err := a.reader.MinDeposit()
	if err != nil {
		return Update{}, fmt.Errorf("minimum deposit unavailable, deposits disabled: %w", err)
	}
	if wei.Cmp(min) < 0 {
		return Update{}, fmt.Errorf("minimum deposit is %s %s", FormatWei(min), NativeCurrency)
	}

	return a.run(FnDeposit, wei)
}

// Withdraw withdraws amountETH from the merchant's vault balance.
func (a *Actions) Withdraw(amountETH string) (Update, error) {
	wei, err := ParseETH(amountETH)
	if err != nil {
		return Update{}, err
	}
	return a.run(FnWithdraw, nil, wei.String())
}

// AddMerchant registers merchant. Owner only.
func (a *Actions) AddMerchant(merchant string) (Update, error) {
	if !IsValidAddress(merchant) {
		return Update{}, fmt.Errorf("invalid address: %q", merchant)
	}
	return a.run(FnAddMerchant, nil, merchant)
}

// RemoveMerchant deregisters merchant. Owner only.
func (a *Actions) RemoveMerchant(merchant string) (Update, error) {
	if !IsValidAddress(merchant) {
		return Update{}, fmt.Errorf("invalid address: %q", merchant)
	}
	return a.run(FnRemoveMerchant, nil, merchant)
}

// Pause suspends all vault operations. Owner only.
func (a *Actions) Pause() (Update, error) {
	return a.run(FnPause, nil)
}

// Unpause resumes vault operations. Owner only.
func (a *Actions) Unpause() (Update, error) {
	return a.run(FnUnpause, nil)
}

// EmergencyWithdraw drains amountETH from the vault to an arbitrary address.
// Owner only.
func (a *Actions) EmergencyWithdraw(to, amountETH string) (Update, error) {
	if !IsValidAddress(to) {
		return Update{}, fmt.Errorf("invalid address: %q", to)
	}
	wei, err := ParseETH(amountETH)
	if err != nil {
		return Update{}, err
	}
	return a.run(FnEmergencyWithdraw, nil, to, wei.String())
}

// TransferOwnership hands the contract to newOwner. Owner only.
func (a *Actions) TransferOwnership(newOwner string) (Update, error) {
	if !IsValidAddress(newOwner) {
		return Update{}, fmt.Errorf("invalid address: %q", newOwner)
	}
	return a.run(FnTransferOwnership, nil, newOwner)
}

// RenounceOwnership permanently gives up contract ownership. Owner only.
func (a *Actions) RenounceOwnership() (Update, error) {
	return a.run(FnRenounceOwnership, nil)
}

// run drives one write through pending → confirming → success|error.
func (a *Actions) run(name string, value *big.Int, args ...string) (Update, error) {
	if a.sender == nil {
		return Update{}, ErrNoWallet
	}

	a.emit(Update{Action: name, Status: StatusPending})
	a.log.Info("submitting transaction", zap.String("action", name))

	hash, err := a.sender.Send(name, value, args...)
	if err != nil {
		return a.fail(name, "", err)
	}

	a.emit(Update{Action: name, Status: StatusConfirming, TxHash: hash})
	a.log.Info("transaction broadcast", zap.String("action", name), zap.String("tx", hash))

	receipt, err := a.waiter.WaitForReceipt(hash, a.timeout)
	if err != nil {
		return a.fail(name, hash, err)
	}
	if receipt.Status != 1 {
		return a.fail(name, hash, errors.New("execution reverted"))
	}

	u := Update{Action: name, Status: StatusSuccess, TxHash: hash}
	a.emit(u)
	a.log.Info("transaction confirmed",
		zap.String("action", name),
		zap.String("tx", hash),
		zap.Uint64("block", receipt.BlockNumber))
	return u, nil
}

func (a *Actions) fail(name, hash string, err error) (Update, error) {
	reason := DecodeRevert(err)
	u := Update{Action: name, Status: StatusError, TxHash: hash, Reason: reason}
	a.emit(u)
	if a.notify != nil {
		a.notify(Notification{
			Title:    "Transaction Failed",
			Body:     reason,
			Severity: SeverityError,
		})
	}
	a.log.Error("transaction failed",
		zap.String("action", name),
		zap.String("tx", hash),
		zap.Error(err))
	return u, fmt.Errorf("%s", reason)
}

func (a *Actions) emit(u Update) {
	if a.onUpdate != nil {
		a.onUpdate(u)
	}
}
