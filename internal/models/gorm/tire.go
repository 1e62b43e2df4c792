package gorm

import (
	"time"

	"pneutrack/backend/internal/constants"
)

// Tire inventory record. A tire is mounted on at most one position at a
// time; mount/unmount flip Status between in_stock and active.
type Tire struct {
	ID           uint                 `gorm:"column:id;primaryKey"`
	Barcode      *string              `gorm:"column:barcode;size:64;index"`
	FireNumber   string               `gorm:"column:fire_number;size:20"`
	SerialNumber string               `gorm:"column:serial_number;size:40"`
	Brand        string               `gorm:"column:brand;size:40"`
	Model        string               `gorm:"column:model;size:40"`
	Size         string               `gorm:"column:size;size:40"`
	Status       constants.TireStatus `gorm:"column:status;size:20;default:in_stock"`
	Pressure     float64              `gorm:"column:pressure;default:0"`
	TreadDepth   float64              `gorm:"column:tread_depth;default:0"`
}

func (Tire) TableName() string {
	return "tires"
}

// HistoryEntry is append-only: written on mount/unmount, never mutated.
type HistoryEntry struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	VehicleID *uint     `gorm:"column:vehicle_id;index"`
	TireID    *uint     `gorm:"column:tire_id;index"`
	Action    string    `gorm:"column:action;size:40"`
	Detail    string    `gorm:"column:detail;size:200"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}
