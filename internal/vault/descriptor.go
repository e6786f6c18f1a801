package vault

import "github.com/basepos/vaultctl/internal/contract"

// Chain parameters for the single network the dashboard targets.
const (
	ChainID         = 84532
	ChainName       = "Base Sepolia"
	NativeCurrency  = "ETH"
	DefaultRPCURL   = "https://sepolia.base.org"
	ExplorerBaseURL = "https://sepolia.basescan.org"
)

// ContractAddress is the deployed POSVault the dashboard always targets.
const ContractAddress = "0xF917CBB2568917115E35bDe29059b62e8baC8c02"

// Function names.
const (
	FnMinDeposit        = "MIN_DEPOSIT"
	FnProtocolFeeBps    = "PROTOCOL_FEE_BPS"
	FnTreasury          = "TREASURY"
	FnAddMerchant       = "addMerchant"
	FnDeposit           = "deposit"
	FnEmergencyWithdraw = "emergencyWithdraw"
	FnGetBalance        = "getBalance"
	FnIsMerchant        = "isMerchant"
	FnOwner             = "owner"
	FnPause             = "pause"
	FnPaused            = "paused"
	FnRemoveMerchant    = "removeMerchant"
	FnRenounceOwnership = "renounceOwnership"
	FnTransferOwnership = "transferOwnership"
	FnUnpause           = "unpause"
	FnWithdraw          = "withdraw"
)

// Event names.
const (
	EvDeposit              = "Deposit"
	EvEmergencyWithdrawal  = "EmergencyWithdrawal"
	EvMerchantAdded        = "MerchantAdded"
	EvMerchantRemoved      = "MerchantRemoved"
	EvOwnershipTransferred = "OwnershipTransferred"
	EvPaused               = "Paused"
	EvUnpaused             = "Unpaused"
	EvWithdrawal           = "Withdrawal"
)

// ABI is the POSVault contract interface: every function, event, and named
// error the dashboard interacts with.
var ABI = []contract.ABIEntry{
	// --- read functions ---
	{Name: FnMinDeposit, Type: "function", StateMutability: "view",
		Outputs: []contract.ABIParam{{Type: "uint256"}}},
	{Name: FnProtocolFeeBps, Type: "function", StateMutability: "view",
		Outputs: []contract.ABIParam{{Type: "uint256"}}},
	{Name: FnTreasury, Type: "function", StateMutability: "view",
		Outputs: []contract.ABIParam{{Type: "address"}}},
	{Name: FnGetBalance, Type: "function", StateMutability: "view",
		Outputs: []contract.ABIParam{{Type: "uint256"}}},
	{Name: FnIsMerchant, Type: "function", StateMutability: "view",
		Inputs:  []contract.ABIParam{{Type: "address"}},
		Outputs: []contract.ABIParam{{Type: "bool"}}},
	{Name: FnOwner, Type: "function", StateMutability: "view",
		Outputs: []contract.ABIParam{{Type: "address"}}},
	{Name: FnPaused, Type: "function", StateMutability: "view",
		Outputs: []contract.ABIParam{{Type: "bool"}}},

	// --- write functions ---
	{Name: FnAddMerchant, Type: "function", StateMutability: "nonpayable",
		Inputs: []contract.ABIParam{{Name: "merchant", Type: "address"}}},
	{Name: FnDeposit, Type: "function", StateMutability: "payable"},
	{Name: FnEmergencyWithdraw, Type: "function", StateMutability: "nonpayable",
		Inputs: []contract.ABIParam{
			{Name: "to", Type: "address"},
			{Name: "amount", Type: "uint256"},
		}},
	{Name: FnPause, Type: "function", StateMutability: "nonpayable"},
	{Name: FnRemoveMerchant, Type: "function", StateMutability: "nonpayable",
		Inputs: []contract.ABIParam{{Name: "merchant", Type: "address"}}},
	{Name: FnRenounceOwnership, Type: "function", StateMutability: "nonpayable"},
	{Name: FnTransferOwnership, Type: "function", StateMutability: "nonpayable",
		Inputs: []contract.ABIParam{{Name: "newOwner", Type: "address"}}},
	{Name: FnUnpause, Type: "function", StateMutability: "nonpayable"},
	{Name: FnWithdraw, Type: "function", StateMutability: "nonpayable",
		Inputs: []contract.ABIParam{{Name: "amount", Type: "uint256"}}},

	// --- events ---
	{Name: EvDeposit, Type: "event", Inputs: []contract.ABIParam{
		{Name: "from", Type: "address", Indexed: true},
		{Name: "amount", Type: "uint256"},
		{Name: "timestamp", Type: "uint256"},
	}},
	{Name: EvEmergencyWithdrawal, Type: "event", Inputs: []contract.ABIParam{
		{Name: "to", Type: "address", Indexed: true},
		{Name: "amount", Type: "uint256"},
		{Name: "timestamp", Type: "uint256"},
	}},
	{Name: EvMerchantAdded, Type: "event", Inputs: []contract.ABIParam{
		{Name: "merchant", Type: "address", Indexed: true},
		{Name: "owner", Type: "address", Indexed: true},
	}},
	{Name: EvMerchantRemoved, Type: "event", Inputs: []contract.ABIParam{
		{Name: "merchant", Type: "address", Indexed: true},
		{Name: "owner", Type: "address", Indexed: true},
	}},
	{Name: EvOwnershipTransferred, Type: "event", Inputs: []contract.ABIParam{
		{Name: "previousOwner", Type: "address", Indexed: true},
		{Name: "newOwner", Type: "address", Indexed: true},
	}},
	{Name: EvPaused, Type: "event", Inputs: []contract.ABIParam{
		{Name: "account", Type: "address"},
	}},
	{Name: EvUnpaused, Type: "event", Inputs: []contract.ABIParam{
		{Name: "account", Type: "address"},
	}},
	{Name: EvWithdrawal, Type: "event", Inputs: []contract.ABIParam{
		{Name: "merchant", Type: "address", Indexed: true},
		{Name: "amountReceived", Type: "uint256"},
		{Name: "feeTaken", Type: "uint256"},
		{Name: "timestamp", Type: "uint256"},
	}},

	// --- named errors ---
	{Name: "AlreadyMerchant", Type: "error"},
	{Name: "BelowMinDeposit", Type: "error"},
	{Name: "EnforcedPause", Type: "error"},
	{Name: "ExpectedPause", Type: "error"},
	{Name: "FeeTransferFailed", Type: "error"},
	{Name: "InsufficientBalance", Type: "error"},
	{Name: "NotAuthorized", Type: "error"},
	{Name: "NotMerchant", Type: "error"},
	{Name: "OwnableInvalidOwner", Type: "error",
		Inputs: []contract.ABIParam{{Name: "owner", Type: "address"}}},
	{Name: "OwnableUnauthorizedAccount", Type: "error",
		Inputs: []contract.ABIParam{{Name: "account", Type: "address"}}},
	{Name: "ReentrancyGuardReentrantCall", Type: "error"},
	{Name: "TransferFailed", Type: "error"},
	{Name: "WithdrawTransferFailed", Type: "error"},
	{Name: "ZeroAddress", Type: "error"},
}
