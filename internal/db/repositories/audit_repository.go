package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"pneutrack/backend/internal/models/entities"
	models "pneutrack/backend/internal/models/gorm"
)

// AuditSink appends one entry per mutating workflow operation. Writes are
// best-effort: callers log and count failures but never roll back the
// primary mutation over one.
type AuditSink interface {
	Append(ctx context.Context, entry entities.AuditLogEntry) error
}

// SqlxAuditRepository writes over the dedicated append-only connection.
type SqlxAuditRepository struct {
	db *sqlx.DB
}

func NewSqlxAuditRepository(db *sqlx.DB) *SqlxAuditRepository {
	return &SqlxAuditRepository{db: db}
}

var _ AuditSink = (*SqlxAuditRepository)(nil)

func (r *SqlxAuditRepository) Append(ctx context.Context, entry entities.AuditLogEntry) error {
	const q = `INSERT INTO audit_log_entries (actor_email, action, entity_type, entity_id, detail, created_at)
	           VALUES ($1, $2, $3, $4, $5, NOW())`
	if _, err := r.db.ExecContext(ctx, q,
		entry.ActorEmail, entry.Action, entry.EntityType, entry.EntityID, entry.Detail); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// GormAuditRepository backs sqlite deployments and tests, where there is no
// second connection to keep separate.
type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

var _ AuditSink = (*GormAuditRepository)(nil)

func (r *GormAuditRepository) Append(ctx context.Context, entry entities.AuditLogEntry) error {
	rec := models.AuditLogEntry{
		ActorEmail: entry.ActorEmail,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Detail:     entry.Detail,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}
