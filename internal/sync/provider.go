// internal/sync/provider.go
package sync

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/metrics"
	"github.com/Pranav212nair/xeno/internal/model"
	"github.com/Pranav212nair/xeno/internal/storage"
)

// Provider starts a commerce-platform sync for a tenant and returns the id of
// the sync log row tracking it. Handlers depend only on this interface; which
// variant runs is a deployment decision.
type Provider interface {
	Start(ctx context.Context, tenantID uuid.UUID, resourceType string) (uuid.UUID, error)
	Name() string
}

// NoOpProvider records the sync request and does nothing else. This is the
// default: the row stays in_progress until a real provider exists.
type NoOpProvider struct {
	Storage *storage.Storage
}

func (p *NoOpProvider) Name() string { return "noop" }

func (p *NoOpProvider) Start(ctx context.Context, tenantID uuid.UUID, resourceType string) (uuid.UUID, error) {
	logID, err := createLog(ctx, p.Storage, tenantID, resourceType)
	if err != nil {
		metrics.SyncJobs.WithLabelValues(p.Name(), "error").Inc()
		return uuid.Nil, err
	}
	metrics.SyncJobs.WithLabelValues(p.Name(), "started").Inc()
	return logID, nil
}

func createLog(ctx context.Context, s *storage.Storage, tenantID uuid.UUID, resourceType string) (uuid.UUID, error) {
	if resourceType == "" {
		resourceType = "all"
	}
	log := &model.SyncLog{
		ID:           uuid.New(),
		TenantID:     tenantID,
		ResourceType: resourceType,
		Status:       model.SyncStatusInProgress,
		CreatedAt:    time.Now(),
	}
	if err := s.CreateSyncLog(ctx, log); err != nil {
		return uuid.Nil, err
	}
	return log.ID, nil
}
