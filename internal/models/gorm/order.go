package gorm

import (
	"time"

	"github.com/shopspring/decimal"

	"pneutrack/backend/internal/constants"
)

// ServiceOrder carries a derived TotalCost. The total is never updated
// incrementally: every line-item add/remove recomputes the full sum.
type ServiceOrder struct {
	ID          uint                  `gorm:"column:id;primaryKey"`
	VehicleID   uint                  `gorm:"column:vehicle_id;not null;index"`
	Description string                `gorm:"column:description;size:200;not null"`
	Status      constants.OrderStatus `gorm:"column:status;size:20;default:open"`
	TotalCost   decimal.Decimal       `gorm:"column:total_cost;type:decimal(12,2)"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Items []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (ServiceOrder) TableName() string {
	return "service_orders"
}

type OrderLineItem struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	OrderID     uint            `gorm:"column:order_id;not null;index"`
	Description string          `gorm:"column:description;size:120;not null"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(12,3)"`
	UnitValue   decimal.Decimal `gorm:"column:unit_value;type:decimal(12,2)"`
}

func (OrderLineItem) TableName() string {
	return "order_line_items"
}

// Subtotal is round(quantity * unit value, 2)
func (i OrderLineItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitValue).Round(2)
}
