package memory

import (
	"context"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
)

type auditRepo struct {
	store *Store
}

// NewAuditRepository creates a memory-backed AuditRepository.
func NewAuditRepository(store *Store) ports.AuditRepository {
	return &auditRepo{store: store}
}

func (r *auditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.auditLogs = append(r.store.auditLogs, *log)
	return nil
}

// AuditLogs returns a copy of the recorded audit entries.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AuditLog(nil), s.auditLogs...)
}
