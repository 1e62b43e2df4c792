package entities

import "time"

// AuditLogEntry as read/written over the dedicated sqlx connection.
type AuditLogEntry struct {
	ID         uint      `db:"id"`
	ActorEmail string    `db:"actor_email"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   uint      `db:"entity_id"`
	Detail     string    `db:"detail"`
	CreatedAt  time.Time `db:"created_at"`
}
