package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/internal/metrics"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

// EngineFactory builds the engine bound to a registry entry.
type EngineFactory[T any] func(instance domain.Instance) T

// RegistryConfig identifies a registry and the verifier it binds into every instance.
type RegistryConfig struct {
	Kind     domain.InstanceKind
	Address  common.Address
	Verifier common.Address
}

// RegistryDeps holds the collaborators of a registry.
type RegistryDeps struct {
	InstanceRepo ports.InstanceRepository
	Cache        ports.InstanceCache // optional
	Transactor   ports.DBTransactor
	Clock        ports.Clock
	Metrics      *metrics.Metrics // optional
	Log          zerolog.Logger
}

// Registry implements ports.InstanceRegistry: at most one instance per owner,
// listed in creation order, each bound to the registry's verifier.
type Registry[T any] struct {
	cfg     RegistryConfig
	deps    RegistryDeps
	factory EngineFactory[T]
	log     zerolog.Logger

	// createMu serializes instance creation.
	createMu sync.Mutex

	enginesMu sync.RWMutex
	engines   map[common.Address]T
}

// NewRegistry creates a registry. Engines for stored entries are built on first Resolve.
func NewRegistry[T any](cfg RegistryConfig, deps RegistryDeps, factory EngineFactory[T]) (*Registry[T], error) {
	if domain.IsZeroAddress(cfg.Verifier) {
		return nil, errors.New("registry: verifier address is required")
	}
	if domain.IsZeroAddress(cfg.Address) {
		return nil, errors.New("registry: registry address is required")
	}
	return &Registry[T]{
		cfg:     cfg,
		deps:    deps,
		factory: factory,
		log: deps.Log.With().
			Str("registry", cfg.Address.Hex()).
			Str("kind", string(cfg.Kind)).
			Logger(),
		engines: make(map[common.Address]T),
	}, nil
}

// DefaultRegistryAddress derives the address of a registry deployed by the verifier.
// The insurance registry takes nonce 0 and the wallet registry nonce 1.
func DefaultRegistryAddress(verifier common.Address, kind domain.InstanceKind) common.Address {
	var nonce uint64
	if kind == domain.InstanceKindWallet {
		nonce = 1
	}
	return crypto.CreateAddress(verifier, nonce)
}

// InstanceRef derives the reference of the seq-th instance of a registry (seq starts at 1).
func InstanceRef(registry common.Address, seq uint64) common.Address {
	return crypto.CreateAddress(registry, seq)
}

// Create deploys a new instance owned by caller.
func (r *Registry[T]) Create(ctx context.Context, caller common.Address) (*domain.Instance, error) {
	start := time.Now()
	instance, err := r.create(ctx, caller)
	if r.deps.Metrics != nil {
		r.deps.Metrics.ObserveOperation("create_instance", start)
		if err != nil {
			r.deps.Metrics.IncrementFailure("create_instance", errorCode(err))
		}
	}
	if err != nil {
		return nil, err
	}

	if r.deps.Metrics != nil {
		r.deps.Metrics.IncrementInstancesCreated(string(r.cfg.Kind))
	}
	r.log.Info().
		Str("instance", instance.Ref.Hex()).
		Str("owner", caller.Hex()).
		Uint64("seq", instance.Seq).
		Msg("instance created")
	return instance, nil
}

func (r *Registry[T]) create(ctx context.Context, caller common.Address) (*domain.Instance, error) {
	if domain.IsZeroAddress(caller) {
		return nil, apperror.ErrInvalidAddress("caller")
	}

	r.createMu.Lock()
	defer r.createMu.Unlock()

	existing, err := r.GetByOwner(ctx, caller)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateInstance()
	}

	dbTx, err := r.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	count, err := r.deps.InstanceRepo.CountForUpdate(ctx, dbTx, r.cfg.Kind)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count instances: %w", err))
	}

	seq := count + 1
	instance := &domain.Instance{
		Ref:       InstanceRef(r.cfg.Address, seq),
		Kind:      r.cfg.Kind,
		Owner:     caller,
		Verifier:  r.cfg.Verifier,
		Seq:       seq,
		CreatedAt: r.deps.Clock.Now(),
	}
	if err := r.deps.InstanceRepo.Create(ctx, dbTx, instance); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.InternalError(fmt.Errorf("create instance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	r.enginesMu.Lock()
	r.engines[instance.Ref] = r.factory(*instance)
	r.enginesMu.Unlock()

	r.cacheInstance(ctx, instance)
	return instance, nil
}

// GetByOwner returns the instance owned by owner, or nil when there is none.
func (r *Registry[T]) GetByOwner(ctx context.Context, owner common.Address) (*domain.Instance, error) {
	if domain.IsZeroAddress(owner) {
		return nil, nil
	}

	// Layer 1: Redis cache
	if r.deps.Cache != nil {
		cached, err := r.deps.Cache.Get(ctx, r.cfg.Address, r.cfg.Kind, owner)
		if err != nil {
			r.log.Warn().Err(err).Str("owner", owner.Hex()).Msg("instance cache lookup failed, falling through to DB")
		}
		if cached != nil {
			return cached, nil
		}
	}

	// Layer 2: DB
	instance, err := r.deps.InstanceRepo.GetByOwner(ctx, r.cfg.Kind, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get instance by owner: %w", err))
	}
	if instance != nil {
		r.cacheInstance(ctx, instance)
	}
	return instance, nil
}

// List returns every instance in creation order.
func (r *Registry[T]) List(ctx context.Context) ([]domain.Instance, error) {
	instances, err := r.deps.InstanceRepo.List(ctx, r.cfg.Kind)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list instances: %w", err))
	}
	return instances, nil
}

// Resolve returns the engine bound to ref, rebuilding it from storage when needed.
func (r *Registry[T]) Resolve(ctx context.Context, ref common.Address) (T, error) {
	var zero T

	r.enginesMu.RLock()
	eng, ok := r.engines[ref]
	r.enginesMu.RUnlock()
	if ok {
		return eng, nil
	}

	instance, err := r.deps.InstanceRepo.GetByRef(ctx, ref)
	if err != nil {
		return zero, apperror.InternalError(fmt.Errorf("get instance: %w", err))
	}
	if instance == nil || instance.Kind != r.cfg.Kind {
		return zero, apperror.ErrNotFound("instance")
	}

	r.enginesMu.Lock()
	defer r.enginesMu.Unlock()
	if eng, ok := r.engines[ref]; ok {
		return eng, nil
	}
	eng = r.factory(*instance)
	r.engines[ref] = eng
	return eng, nil
}

// Verifier returns the verifier bound into every instance.
func (r *Registry[T]) Verifier() common.Address {
	return r.cfg.Verifier
}

// Address returns the registry address instance references derive from.
func (r *Registry[T]) Address() common.Address {
	return r.cfg.Address
}

func (r *Registry[T]) cacheInstance(ctx context.Context, instance *domain.Instance) {
	if r.deps.Cache == nil {
		return
	}
	if err := r.deps.Cache.Set(ctx, r.cfg.Address, instance); err != nil {
		r.log.Warn().Err(err).Str("instance", instance.Ref.Hex()).Msg("failed to cache instance in redis")
	}
}

// NewPolicyRegistry creates the insurance registry.
func NewPolicyRegistry(
	address, verifier common.Address,
	policyRepo ports.PolicyRepository,
	deps RegistryDeps,
	engineDeps EngineDeps,
) (*Registry[ports.PolicyEngine], error) {
	cfg := RegistryConfig{Kind: domain.InstanceKindInsurance, Address: address, Verifier: verifier}
	return NewRegistry(cfg, deps, func(instance domain.Instance) ports.PolicyEngine {
		return NewPolicyEngine(instance, policyRepo, engineDeps)
	})
}

// NewWalletRegistry creates the wallet registry.
func NewWalletRegistry(
	address, verifier common.Address,
	userRepo ports.WalletUserRepository,
	claimRepo ports.ClaimRepository,
	deps RegistryDeps,
	engineDeps EngineDeps,
) (*Registry[ports.WalletEngine], error) {
	cfg := RegistryConfig{Kind: domain.InstanceKindWallet, Address: address, Verifier: verifier}
	return NewRegistry(cfg, deps, func(instance domain.Instance) ports.WalletEngine {
		return NewWalletEngine(instance, userRepo, claimRepo, engineDeps)
	})
}
