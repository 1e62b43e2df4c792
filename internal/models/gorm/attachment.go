package gorm

import (
	"time"
)

// Attachment records an uploaded file. Exactly one of OrderID/VehicleID is
// set per use site; the bytes live in the file store under Filename.
type Attachment struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	OrderID      *uint     `gorm:"column:order_id;index"`
	VehicleID    *uint     `gorm:"column:vehicle_id;index"`
	Filename     string    `gorm:"column:filename;size:200;not null"`
	OriginalName string    `gorm:"column:original_name;size:200"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Attachment) TableName() string {
	return "attachments"
}
