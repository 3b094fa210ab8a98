package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// MaxWalletLength is the widest address the profile table accepts.
const MaxWalletLength = 42

// NormalizeWallet cleans a client-declared wallet address. No ownership
// proof is involved. In strict mode the address must be a 20-byte hex
// address and is returned in its EIP-55 checksum form, so differently cased
// spellings of one address resolve to the same profile.
func NormalizeWallet(addr string, strict bool) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" || len(addr) > MaxWalletLength {
		return "", ErrInvalidWallet
	}
	if !strict {
		return addr, nil
	}
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return "", ErrInvalidWallet
	}
	if !common.IsHexAddress(addr) {
		return "", ErrInvalidWallet
	}
	return common.HexToAddress(addr).Hex(), nil
}
