package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// unitWei is one whole currency unit expressed in the smallest denomination.
const unitWei uint64 = 1_000_000_000_000_000_000

// Premium and collateral constants, in the smallest denomination.
// Callers must treat them as read-only.
var (
	CategoryAPremium = uint256.NewInt(100_000_000_000_000) // 0.0001 unit
	CategoryBPremium = uint256.NewInt(10_000_000_000_000)  // 0.00001 unit

	CategoryACollateralLimit = Units(3)
	CategoryBCollateralLimit = Units(2)
)

// Units returns n whole units in the smallest denomination.
func Units(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), uint256.NewInt(unitWei))
}

// Category is the premium category of a policy.
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
)

// Premium returns the exact premium for the category.
func (c Category) Premium() *uint256.Int {
	if c == CategoryB {
		return CategoryBPremium
	}
	return CategoryAPremium
}

// CollateralCategory classifies a collateral amount by the lowest ceiling it satisfies.
// The second return is false when amount exceeds every ceiling.
func CollateralCategory(amount *uint256.Int) (Category, bool) {
	switch {
	case !amount.Gt(CategoryBCollateralLimit):
		return CategoryB, true
	case !amount.Gt(CategoryACollateralLimit):
		return CategoryA, true
	default:
		return "", false
	}
}

// PolicyRecord is the per-owner state inside an insurance instance.
type PolicyRecord struct {
	Instance             common.Address `json:"instance"`
	Owner                common.Address `json:"owner"`
	CollateralAmount     uint256.Int    `json:"collateral_amount"`
	CollateralDropped    bool           `json:"collateral_dropped"`
	IsApproved           bool           `json:"is_approved"`
	LastPaymentTimestamp uint64         `json:"last_payment_timestamp"` // unix seconds, 0 until first premium
}

// NewPolicyRecord returns a default record for owner.
func NewPolicyRecord(instance, owner common.Address) *PolicyRecord {
	return &PolicyRecord{Instance: instance, Owner: owner}
}

// HasCollateral reports whether a non-zero collateral value has been set.
func (p *PolicyRecord) HasCollateral() bool {
	return p != nil && !p.CollateralAmount.IsZero()
}
