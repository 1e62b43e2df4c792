package gorm

import (
	"time"

	"pneutrack/backend/internal/constants"
)

// Notification rows are written inside the workflow transaction that
// triggered them and filtered by recipient role at read time.
type Notification struct {
	ID         uint           `gorm:"column:id;primaryKey"`
	TargetRole constants.Role `gorm:"column:target_role;size:20;index"`
	Message    string         `gorm:"column:message;size:200"`
	Link       string         `gorm:"column:link;size:120"`
	Read       bool           `gorm:"column:read;default:false"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
