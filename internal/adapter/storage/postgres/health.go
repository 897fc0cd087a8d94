package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const pingTimeout = 2 * time.Second

// HealthCheck reports whether the registry store is reachable and migrated.
// It backs the "postgresql" entry of GET /health.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping fails when the database is unreachable or the instances table is missing.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var migrated bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('instances') IS NOT NULL`).Scan(&migrated); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if !migrated {
		return errors.New("postgres ping: schema not migrated")
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
