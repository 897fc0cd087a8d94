package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// PaymentInterval is the minimum gap between recurring premium payments.
const (
	PaymentInterval        = 28 * 24 * time.Hour
	PaymentIntervalSeconds = uint64(2_419_200)
)

// Package is an insurance package tier. Ordinals are part of the public contract.
type Package uint8

const (
	PackageBasic Package = iota
	PackageStandard
	PackagePremium
)

var packageNames = [...]string{"BASIC", "STANDARD", "PREMIUM"}

// ParsePackage validates a package ordinal.
func ParsePackage(ordinal uint64) (Package, bool) {
	if ordinal > uint64(PackagePremium) {
		return 0, false
	}
	return Package(ordinal), true
}

func (p Package) String() string {
	if int(p) < len(packageNames) {
		return packageNames[p]
	}
	return "UNKNOWN"
}

// WalletUserRecord is the per-owner state inside a wallet instance.
type WalletUserRecord struct {
	Instance             common.Address `json:"instance"`
	Owner                common.Address `json:"owner"`
	Package              Package        `json:"package"`
	PremiumAmount        uint256.Int    `json:"premium_amount"`
	IsActive             bool           `json:"is_active"`
	TotalPayments        uint64         `json:"total_payments"`
	PackageSelectedAt    uint64         `json:"package_selected_at"`
	LastPaymentTimestamp uint64         `json:"last_payment_timestamp"`
}

// Active reports whether the record holds a selected, non-cancelled package.
func (w *WalletUserRecord) Active() bool {
	return w != nil && w.IsActive
}

// NextPaymentDue is the earliest unix second at which a recurring premium is accepted.
func (w *WalletUserRecord) NextPaymentDue() uint64 {
	return w.LastPaymentTimestamp + PaymentIntervalSeconds
}
