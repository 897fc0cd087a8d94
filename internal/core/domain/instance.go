package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// InstanceKind identifies which engine a registry creates.
type InstanceKind string

const (
	InstanceKindInsurance InstanceKind = "INSURANCE"
	InstanceKindWallet    InstanceKind = "WALLET"
)

// Instance is a registry entry: one engine instance bound to its owner.
type Instance struct {
	Ref       common.Address `json:"ref"`
	Kind      InstanceKind   `json:"kind"`
	Owner     common.Address `json:"owner"`
	Verifier  common.Address `json:"verifier"`
	Seq       uint64         `json:"seq"` // 1-based creation order within the registry
	CreatedAt time.Time      `json:"created_at"`
}

// IsZeroAddress reports whether addr is the all-zero account.
func IsZeroAddress(addr common.Address) bool {
	return addr == (common.Address{})
}
