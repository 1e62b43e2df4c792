package services

import (
	"context"

	"pneutrack/backend/internal/db/repositories"
	"pneutrack/backend/internal/logging"
	"pneutrack/backend/internal/metrics"
	"pneutrack/backend/internal/models/entities"
)

// AuditService records who did what. Writes are best-effort: a failed
// audit write never rolls back the operation it describes. Failures
// are logged and counted so the gap is visible in monitoring.
type AuditService struct {
	sink    repositories.AuditSink
	metrics *metrics.MetricsRegistry
}

func NewAuditService(sink repositories.AuditSink, metricsReg *metrics.MetricsRegistry) *AuditService {
	return &AuditService{sink: sink, metrics: metricsReg}
}

// Record appends one audit entry for a completed mutation
func (s *AuditService) Record(ctx context.Context, actorEmail, action, entityType string, entityID uint, detail string) {
	entry := entities.AuditLogEntry{
		ActorEmail: actorEmail,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}

	if err := s.sink.Append(ctx, entry); err != nil {
		s.metrics.AuditWriteFailures.Inc()
		logging.Error("audit write failed",
			"actor", actorEmail,
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err.Error(),
		)
	}
}
