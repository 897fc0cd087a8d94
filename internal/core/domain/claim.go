package domain

import "github.com/ethereum/go-ethereum/common"

// ClaimStatus is the lifecycle state of a claim.
type ClaimStatus uint8

const (
	ClaimStatusNone ClaimStatus = iota
	ClaimStatusPending
	ClaimStatusApproved
	ClaimStatusRejected
)

var claimStatusNames = [...]string{"NONE", "PENDING", "APPROVED", "REJECTED"}

func (s ClaimStatus) String() string {
	if int(s) < len(claimStatusNames) {
		return claimStatusNames[s]
	}
	return "UNKNOWN"
}

// ClaimRecord tracks the claim of one owner inside a wallet instance.
// Records are created on first submission and never deleted.
type ClaimRecord struct {
	Instance  common.Address `json:"instance"`
	Owner     common.Address `json:"owner"`
	Status    ClaimStatus    `json:"status"`
	UpdatedAt uint64         `json:"updated_at"`
}

// StatusOf returns the claim status, treating a missing record as None.
func StatusOf(c *ClaimRecord) ClaimStatus {
	if c == nil {
		return ClaimStatusNone
	}
	return c.Status
}
