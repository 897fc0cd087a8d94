package ports

import (
	"context"
	"time"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Clock supplies the current time to the engines.
type Clock interface {
	Now() time.Time
}

// TokenService issues and validates caller-principal bearer tokens.
type TokenService interface {
	Generate(caller common.Address) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Caller common.Address
}

// InstanceCache is the Redis-layer owner -> instance lookup (fast path).
// Entries are scoped by the registry address so registries sharing a Redis never collide.
type InstanceCache interface {
	// Get returns the cached instance or nil on a miss.
	Get(ctx context.Context, registry common.Address, kind domain.InstanceKind, owner common.Address) (*domain.Instance, error)
	Set(ctx context.Context, registry common.Address, instance *domain.Instance) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, caller string, nonce string, ttl time.Duration) (bool, error)
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// --- Service Ports (Business Logic) ---

// InstanceRegistry creates and tracks one engine instance per owner.
type InstanceRegistry[T any] interface {
	// Create deploys a new instance owned by caller.
	Create(ctx context.Context, caller common.Address) (*domain.Instance, error)
	// GetByOwner returns nil when owner has no instance.
	GetByOwner(ctx context.Context, owner common.Address) (*domain.Instance, error)
	// List returns every instance in creation order.
	List(ctx context.Context) ([]domain.Instance, error)
	// Resolve returns the live engine bound to ref.
	Resolve(ctx context.Context, ref common.Address) (T, error)
	Verifier() common.Address
	Address() common.Address
}

// PolicyEngine tracks collateral and category premiums per owner.
type PolicyEngine interface {
	Ref() common.Address
	VerifierCompany() common.Address
	SetCollateralValue(ctx context.Context, caller common.Address, amount *uint256.Int) error
	SetCollateralStatus(ctx context.Context, caller common.Address, dropped bool) error
	ApproveCollateral(ctx context.Context, caller, target common.Address) error
	PayPremiumCategoryA(ctx context.Context, caller common.Address, value *uint256.Int) error
	PayPremiumCategoryB(ctx context.Context, caller common.Address, value *uint256.Int) error
	// Users returns nil when address has no record.
	Users(ctx context.Context, address common.Address) (*domain.PolicyRecord, error)
}

// WalletEngine manages packages, recurring premiums and claims per owner.
type WalletEngine interface {
	Ref() common.Address
	VerifierCompany() common.Address
	SelectPackage(ctx context.Context, caller common.Address, pkg uint64, value *uint256.Int) error
	PayPremiumToVerifier(ctx context.Context, caller common.Address, value *uint256.Int) error
	SubmitClaim(ctx context.Context, caller common.Address) error
	ApproveClaim(ctx context.Context, caller, target common.Address) error
	RejectClaim(ctx context.Context, caller, target common.Address) error
	CancelInsurance(ctx context.Context, caller common.Address) error
	// Users returns nil when address has no record.
	Users(ctx context.Context, address common.Address) (*domain.WalletUserRecord, error)
	Claims(ctx context.Context, address common.Address) (domain.ClaimStatus, error)
}

// PolicyRegistry is the registry of insurance instances.
type PolicyRegistry = InstanceRegistry[PolicyEngine]

// WalletRegistry is the registry of wallet instances.
type WalletRegistry = InstanceRegistry[WalletEngine]

// ReportingService exposes read-only ledger queries.
type ReportingService interface {
	GetBalance(ctx context.Context, account common.Address) (*uint256.Int, error)
	ListTransfers(ctx context.Context, params TransferListParams) ([]domain.Transfer, int64, error)
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
