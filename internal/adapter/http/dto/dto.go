package dto

import (
	"time"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Amounts are 256-bit integers in the smallest denomination. Requests accept a JSON
// number, a decimal string or a 0x-prefixed hex string; responses render decimal strings.

// CollateralValueRequest is the body of setCollateralValue.
type CollateralValueRequest struct {
	Amount *uint256.Int `json:"amount"`
}

// CollateralStatusRequest is the body of setCollateralStatus.
type CollateralStatusRequest struct {
	Dropped *bool `json:"dropped" binding:"required"`
}

// TargetRequest names the account a verifier acts on.
type TargetRequest struct {
	Target string `json:"target" binding:"required,eth_account"`
}

// PaymentRequest carries the value attached to a premium payment.
type PaymentRequest struct {
	Value *uint256.Int `json:"value"`
}

// SelectPackageRequest is the body of selectPackage.
type SelectPackageRequest struct {
	Package *uint64      `json:"package" binding:"required"`
	Value   *uint256.Int `json:"value"`
}

// TransferListQuery holds the query string of GET /transfers.
type TransferListQuery struct {
	Instance string `form:"instance" binding:"omitempty,eth_account"`
	To       string `form:"to" binding:"omitempty,eth_account"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InstanceResponse describes a registry entry.
type InstanceResponse struct {
	Ref       string `json:"ref"`
	Kind      string `json:"kind"`
	Owner     string `json:"owner"`
	Verifier  string `json:"verifier"`
	Seq       uint64 `json:"seq"`
	CreatedAt string `json:"created_at"`
}

// OwnerLookupResponse is the answer to an owner lookup; Instance is nil when Exists is false.
type OwnerLookupResponse struct {
	Owner    string            `json:"owner"`
	Exists   bool              `json:"exists"`
	Instance *InstanceResponse `json:"instance"`
}

// InstanceListResponse wraps the ordered instance list.
type InstanceListResponse struct {
	Items []InstanceResponse `json:"items"`
	Total int                `json:"total"`
}

// VerifierResponse reports the verifier bound to an instance.
type VerifierResponse struct {
	Instance        string `json:"instance"`
	VerifierCompany string `json:"verifier_company"`
}

// PolicyRecordResponse renders a policy record. Missing records render as zero values.
type PolicyRecordResponse struct {
	Instance             string `json:"instance"`
	Address              string `json:"address"`
	Exists               bool   `json:"exists"`
	CollateralAmount     string `json:"collateral_amount"`
	CollateralCategory   string `json:"collateral_category,omitempty"`
	CollateralDropped    bool   `json:"collateral_dropped"`
	IsApproved           bool   `json:"is_approved"`
	LastPaymentTimestamp uint64 `json:"last_payment_timestamp"`
}

// WalletUserResponse renders a wallet user record. Missing records render as zero values.
type WalletUserResponse struct {
	Instance             string `json:"instance"`
	Address              string `json:"address"`
	Exists               bool   `json:"exists"`
	Package              string `json:"package"`
	PackageOrdinal       uint8  `json:"package_ordinal"`
	PremiumAmount        string `json:"premium_amount"`
	IsActive             bool   `json:"is_active"`
	TotalPayments        uint64 `json:"total_payments"`
	PackageSelectedAt    uint64 `json:"package_selected_at"`
	LastPaymentTimestamp uint64 `json:"last_payment_timestamp"`
	NextPaymentDue       uint64 `json:"next_payment_due,omitempty"`
}

// ClaimResponse renders the claim status of an address.
type ClaimResponse struct {
	Instance string `json:"instance"`
	Address  string `json:"address"`
	Status   string `json:"status"`
}

// BalanceResponse is the credited balance of an account.
type BalanceResponse struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
}

// TransferResponse renders one ledger entry.
type TransferResponse struct {
	ID        string `json:"id"`
	Instance  string `json:"instance"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

// TransferListResponse wraps a paginated transfer list.
type TransferListResponse struct {
	Items      []TransferResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// NewInstanceResponse converts a registry entry.
func NewInstanceResponse(i *domain.Instance) InstanceResponse {
	return InstanceResponse{
		Ref:       i.Ref.Hex(),
		Kind:      string(i.Kind),
		Owner:     i.Owner.Hex(),
		Verifier:  i.Verifier.Hex(),
		Seq:       i.Seq,
		CreatedAt: i.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewTransferResponse converts a ledger entry.
func NewTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:        t.ID.String(),
		Instance:  t.Instance.Hex(),
		From:      t.From.Hex(),
		To:        t.To.Hex(),
		Amount:    t.Amount.Dec(),
		Reason:    string(t.Reason),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewPolicyRecordResponse renders the record of address; r may be nil.
func NewPolicyRecordResponse(instance, address common.Address, r *domain.PolicyRecord) PolicyRecordResponse {
	resp := PolicyRecordResponse{Instance: instance.Hex(), Address: address.Hex(), CollateralAmount: "0"}
	if r == nil {
		return resp
	}
	resp.Exists = true
	resp.CollateralAmount = r.CollateralAmount.Dec()
	resp.CollateralDropped = r.CollateralDropped
	resp.IsApproved = r.IsApproved
	resp.LastPaymentTimestamp = r.LastPaymentTimestamp
	if r.HasCollateral() {
		if category, ok := domain.CollateralCategory(&r.CollateralAmount); ok {
			resp.CollateralCategory = string(category)
		}
	}
	return resp
}

// NewWalletUserResponse renders the record of address; r may be nil.
func NewWalletUserResponse(instance, address common.Address, r *domain.WalletUserRecord) WalletUserResponse {
	resp := WalletUserResponse{Instance: instance.Hex(), Address: address.Hex(), PremiumAmount: "0"}
	if r == nil {
		return resp
	}
	resp.Exists = true
	resp.Package = r.Package.String()
	resp.PackageOrdinal = uint8(r.Package)
	resp.PremiumAmount = r.PremiumAmount.Dec()
	resp.IsActive = r.IsActive
	resp.TotalPayments = r.TotalPayments
	resp.PackageSelectedAt = r.PackageSelectedAt
	resp.LastPaymentTimestamp = r.LastPaymentTimestamp
	if r.Active() {
		resp.NextPaymentDue = r.NextPaymentDue()
	}
	return resp
}
