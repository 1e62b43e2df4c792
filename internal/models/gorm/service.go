package gorm

import (
	"time"

	"pneutrack/backend/internal/constants"
)

// AuthorizedService is created by the manager and worked by the technician.
type AuthorizedService struct {
	ID          uint                    `gorm:"column:id;primaryKey"`
	VehicleID   uint                    `gorm:"column:vehicle_id;not null;index"`
	Description string                  `gorm:"column:description;size:200;not null"`
	Status      constants.ServiceStatus `gorm:"column:status;size:20;default:authorized"`
	CreatedAt   time.Time               `gorm:"column:created_at;autoCreateTime"`
}

func (AuthorizedService) TableName() string {
	return "authorized_services"
}
