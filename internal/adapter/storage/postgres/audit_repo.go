package postgres

import (
	"context"
	"fmt"

	"insurance-gateway/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a PostgreSQL-backed AuditRepository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts an audit entry. Empty details are stored as NULL.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	var details *string
	if log.Details != "" {
		details = &log.Details
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, caller, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		log.ID, log.Caller, string(log.Action), log.ResourceType,
		log.ResourceID, details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
