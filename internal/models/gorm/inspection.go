package gorm

import (
	"time"

	"pneutrack/backend/internal/constants"
)

// Inspection is created with a fixed default checklist and walks
// open -> sent -> approved | rejected.
type Inspection struct {
	ID        uint                       `gorm:"column:id;primaryKey"`
	VehicleID uint                       `gorm:"column:vehicle_id;not null;index"`
	Status    constants.InspectionStatus `gorm:"column:status;size:20;default:open"`
	Notes     string                     `gorm:"column:notes;size:300"`
	CreatedAt time.Time                  `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Items []InspectionChecklistItem `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE"`
}

func (Inspection) TableName() string {
	return "inspections"
}

type InspectionChecklistItem struct {
	ID           uint   `gorm:"column:id;primaryKey"`
	InspectionID uint   `gorm:"column:inspection_id;not null;index"`
	Title        string `gorm:"column:title;size:100;not null"`
	OK           bool   `gorm:"column:ok;default:false"`
	Note         string `gorm:"column:note;size:200"`
}

func (InspectionChecklistItem) TableName() string {
	return "inspection_checklist_items"
}
