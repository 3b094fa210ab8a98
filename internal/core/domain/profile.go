package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the part a wallet plays on the marketplace. It is chosen once at
// registration and never changes afterwards.
type Role string

const (
	RolePublisher  Role = "publisher"
	RoleAdvertiser Role = "advertiser"
)

// RegistrationPath is where a wallet without a profile picks its role.
const RegistrationPath = "/select_role/"

// ParseRole returns the role named by s. Only the exact lower-case names are
// accepted.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePublisher, RoleAdvertiser:
		return Role(s), true
	default:
		return "", false
	}
}

// DashboardPath is the page a profile with this role lands on.
func (r Role) DashboardPath() string {
	return "/" + string(r) + "_dashboard/"
}

// Profile is the persisted identity and balance record of one wallet.
// ETHBalance has 8 fractional digits, TokenBalance has 2.
type Profile struct {
	ID            int64
	WalletAddress string
	Role          Role
	ETHBalance    decimal.Decimal
	TokenBalance  decimal.Decimal
	CreatedAt     time.Time
}
