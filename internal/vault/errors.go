package vault

import (
	"regexp"
	"strings"
)

// errorMessages maps the contract's named errors to user-facing text.
var errorMessages = map[string]string{
	"AlreadyMerchant":              "This address is already a registered merchant",
	"BelowMinDeposit":              "Amount is below the minimum deposit requirement",
	"EnforcedPause":                "Contract is currently paused",
	"ExpectedPause":                "Contract is not paused",
	"FeeTransferFailed":            "Failed to transfer protocol fee",
	"InsufficientBalance":          "Insufficient balance for this operation",
	"NotAuthorized":                "You are not authorized to perform this action",
	"NotMerchant":                  "This address is not a registered merchant",
	"OwnableInvalidOwner":          "Invalid owner address",
	"OwnableUnauthorizedAccount":   "Unauthorized account",
	"ReentrancyGuardReentrantCall": "Reentrancy detected",
	"TransferFailed":               "Transfer failed",
	"WithdrawTransferFailed":       "Withdrawal transfer failed",
	"ZeroAddress":                  "Cannot use zero address",
}

// revertBySelector maps each named error's 4-byte selector to its message.
var revertBySelector = func() map[string]string {
	m := make(map[string]string, len(errorMessages))
	for _, e := range ABI {
		if e.Type != "error" {
			continue
		}
		if msg, ok := errorMessages[e.Name]; ok {
			m[strings.ToLower(e.Selector())] = msg
		}
	}
	return m
}()

var hexBlobRe = regexp.MustCompile(`0x[0-9a-fA-F]{8,}`)

// MessageForError returns the user-facing message for a named contract
// error. ok is false for unknown names.
func MessageForError(name string) (string, bool) {
	msg, ok := errorMessages[name]
	return msg, ok
}

// DecodeRevert turns a submission or receipt failure into a human-readable
// reason. Named contract errors map to their specific message; a wallet
// rejection is called out as such; anything else falls back to a generic
// message carrying whatever raw reason is available.
func DecodeRevert(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "user denied") ||
		strings.Contains(lower, "user rejected") ||
		strings.Contains(lower, "rejected by user") {
		return "Transaction rejected in wallet"
	}

	// Custom errors surface as revert data: 4-byte selector, maybe args.
	for _, blob := range hexBlobRe.FindAllString(msg, -1) {
		sel := strings.ToLower(blob[:10])
		if reason, ok := revertBySelector[sel]; ok {
			return reason
		}
	}

	if idx := strings.Index(msg, "execution reverted:"); idx >= 0 {
		reason := strings.TrimSpace(msg[idx+len("execution reverted:"):])
		if reason != "" {
			return "Transaction failed: " + reason
		}
	}

	return "Transaction failed: " + trimReason(msg)
}

func trimReason(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 160 {
		return s[:160] + "…"
	}
	return s
}
