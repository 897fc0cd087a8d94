package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultInstanceTTL bounds how long an owner lookup stays cached.
// Registry entries are immutable, so the TTL only limits memory use.
const DefaultInstanceTTL = 24 * time.Hour

// InstanceCache implements ports.InstanceCache using Redis.
type InstanceCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewInstanceCache creates a new Redis-backed owner -> instance cache.
func NewInstanceCache(client *goredis.Client, ttl time.Duration) *InstanceCache {
	if ttl <= 0 {
		ttl = DefaultInstanceTTL
	}
	return &InstanceCache{
		client: client,
		prefix: "instance:",
		ttl:    ttl,
	}
}

// key is instance:<registry>:<kind>:<owner>.
func (c *InstanceCache) key(registry common.Address, kind domain.InstanceKind, owner common.Address) string {
	return c.prefix + registry.Hex() + ":" + string(kind) + ":" + owner.Hex()
}

// Get retrieves the instance of owner cached for registry.
// Returns nil, nil if the key does not exist.
func (c *InstanceCache) Get(
	ctx context.Context, registry common.Address, kind domain.InstanceKind, owner common.Address,
) (*domain.Instance, error) {
	val, err := c.client.Get(ctx, c.key(registry, kind, owner)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis instance get: %w", err)
	}

	var instance domain.Instance
	if err := json.Unmarshal(val, &instance); err != nil {
		return nil, fmt.Errorf("decode cached instance: %w", err)
	}
	return &instance, nil
}

// Set stores instance under registry, its kind and its owner.
func (c *InstanceCache) Set(ctx context.Context, registry common.Address, instance *domain.Instance) error {
	val, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("encode instance: %w", err)
	}
	if err := c.client.Set(ctx, c.key(registry, instance.Kind, instance.Owner), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis instance set: %w", err)
	}
	return nil
}
