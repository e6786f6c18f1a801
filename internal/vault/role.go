package vault

import "strings"

// Role is the caller's permission level, derived per lookup from the
// connected account and two contract reads. Never persisted.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleMerchant Role = "merchant"
	RoleUser     Role = "user"
)

// RoleInfo is the resolved permission set for one account.
type RoleInfo struct {
	Role       Role
	Address    string
	Connected  bool
	IsOwner    bool
	IsMerchant bool // owner implies merchant
}

// roleReads is the slice of Reader the resolver needs; narrowed so tests can
// inject failing reads.
type roleReads interface {
	Owner() (string, error)
	IsMerchant(addr string) (bool, error)
}

// ResolveRole derives the permission level for address. When disconnected,
// or when either underlying read fails, the result is the least-privileged
// role — permissions fail closed, never open.
func ResolveRole(reads roleReads, address string, connected bool) RoleInfo {
	info := RoleInfo{Role: RoleUser, Address: address, Connected: connected}
	if !connected || address == "" {
		return info
	}

	owner, err := reads.Owner()
	if err != nil {
		return info
	}

	isMerchant, err := reads.IsMerchant(address)
	if err != nil {
		return info
	}

	info.IsOwner = strings.EqualFold(address, owner)
	info.IsMerchant = isMerchant || info.IsOwner

	switch {
	case info.IsOwner:
		info.Role = RoleOwner
	case info.IsMerchant:
		info.Role = RoleMerchant
	}
	return info
}
