package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// TransferReason records why value moved to the verifier.
type TransferReason string

const (
	TransferReasonPremiumCategoryA TransferReason = "PREMIUM_CATEGORY_A"
	TransferReasonPremiumCategoryB TransferReason = "PREMIUM_CATEGORY_B"
	TransferReasonPackageSelection TransferReason = "PACKAGE_SELECTION"
	TransferReasonRecurringPremium TransferReason = "RECURRING_PREMIUM"
)

// Transfer is an immutable record of value credited to a recipient.
type Transfer struct {
	ID        uuid.UUID      `json:"id"`
	Instance  common.Address `json:"instance"`
	From      common.Address `json:"from"`
	To        common.Address `json:"to"`
	Amount    uint256.Int    `json:"amount"`
	Reason    TransferReason `json:"reason"`
	CreatedAt time.Time      `json:"created_at"`
}
