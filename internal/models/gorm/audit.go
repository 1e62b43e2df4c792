package gorm

import (
	"time"
)

// AuditLogEntry is append-only. The production sink writes through a
// dedicated sqlx connection (see db/repositories), this model exists so the
// table is migrated alongside the rest of the schema and so sqlite
// deployments can write through GORM.
type AuditLogEntry struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	ActorEmail string    `gorm:"column:actor_email;size:120"`
	Action     string    `gorm:"column:action;size:50"`
	EntityType string    `gorm:"column:entity_type;size:50"`
	EntityID   uint      `gorm:"column:entity_id"`
	Detail     string    `gorm:"column:detail;size:300"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AuditLogEntry) TableName() string {
	return "audit_log_entries"
}
