package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andriawan/minibank-backend/internal/models"
)

type auditLogsRepo struct {
	mu   sync.RWMutex
	logs []models.AuditLog
}

func newAuditLogsRepo() *auditLogsRepo { return &auditLogsRepo{} }

func (r *auditLogsRepo) Create(l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, l)
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *auditLogsRepo) Recent(limit int) ([]models.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.logs)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.AuditLog, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.logs[i])
	}
	return out, nil
}
