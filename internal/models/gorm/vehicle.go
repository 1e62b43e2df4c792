package gorm

import (
	"time"
)

// Vehicle is the root of the fleet model. Deleting a vehicle takes its
// axles, positions, history, authorized services, orders and attachments
// with it (the delete is cascaded explicitly by the repository inside one
// transaction, the FK constraints below are a second line of defense).
type Vehicle struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Plate      string    `gorm:"column:plate;uniqueIndex;size:10;not null"`
	DriverName string    `gorm:"column:driver_name;size:80;not null"`
	MaxKmAlert int       `gorm:"column:max_km_alert;default:50000"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Axles     []Axle         `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Positions []TirePosition `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// Axle groups tire positions for display. OrderIndex is a sort key only.
type Axle struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	VehicleID  uint   `gorm:"column:vehicle_id;not null;index"`
	Name       string `gorm:"column:name;size:60;not null"`
	OrderIndex int    `gorm:"column:order_index;default:0"`
}

func (Axle) TableName() string {
	return "axles"
}

// TirePosition is a slot on a vehicle. TireID nil means the slot is empty.
type TirePosition struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	VehicleID uint   `gorm:"column:vehicle_id;not null;index"`
	AxleID    *uint  `gorm:"column:axle_id;index"`
	Label     string `gorm:"column:label;size:60;not null"`
	TireID    *uint  `gorm:"column:tire_id;index"`

	Tire *Tire `gorm:"foreignKey:TireID"`
}

func (TirePosition) TableName() string {
	return "tire_positions"
}
