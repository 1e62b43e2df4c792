package constants

import (
	"database/sql/driver"
	"fmt"
)

// TireStatus tracks where a tire is in its life. Mount/unmount only ever
// move a tire between in_stock and active; the remaining values are set
// through direct edits.
type TireStatus string

const (
	TireInStock  TireStatus = "in_stock"
	TireActive   TireStatus = "active"
	TireRepair   TireStatus = "repair"
	TireRetread  TireStatus = "retread"
	TireSold     TireStatus = "sold"
	TireScrapped TireStatus = "scrapped"
	TireRotation TireStatus = "rotation"
)

var tireStatuses = map[TireStatus]bool{
	TireInStock:  true,
	TireActive:   true,
	TireRepair:   true,
	TireRetread:  true,
	TireSold:     true,
	TireScrapped: true,
	TireRotation: true,
}

func (s TireStatus) String() string { return string(s) }
func (s TireStatus) IsValid() bool  { return tireStatuses[s] }

func (s *TireStatus) Scan(src interface{}) error  { return scanStatus((*string)(s), src, "TireStatus") }
func (s TireStatus) Value() (driver.Value, error) { return string(s), nil }

// OrderStatus is caller-driven: any enumerated value may be set at any time,
// only unknown values are rejected.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderApproved  OrderStatus = "approved"
	OrderCompleted OrderStatus = "completed"
	OrderCanceled  OrderStatus = "canceled"
)

var orderStatuses = map[OrderStatus]bool{
	OrderOpen:      true,
	OrderApproved:  true,
	OrderCompleted: true,
	OrderCanceled:  true,
}

func (s OrderStatus) String() string { return string(s) }
func (s OrderStatus) IsValid() bool  { return orderStatuses[s] }

func (s *OrderStatus) Scan(src interface{}) error  { return scanStatus((*string)(s), src, "OrderStatus") }
func (s OrderStatus) Value() (driver.Value, error) { return string(s), nil }

// ServiceStatus covers manager-authorized services handed to the shop floor.
type ServiceStatus string

const (
	ServiceAuthorized ServiceStatus = "authorized"
	ServiceCompleted  ServiceStatus = "completed"
	ServiceCanceled   ServiceStatus = "canceled"
)

var serviceStatuses = map[ServiceStatus]bool{
	ServiceAuthorized: true,
	ServiceCompleted:  true,
	ServiceCanceled:   true,
}

func (s ServiceStatus) String() string { return string(s) }
func (s ServiceStatus) IsValid() bool  { return serviceStatuses[s] }

func (s *ServiceStatus) Scan(src interface{}) error {
	return scanStatus((*string)(s), src, "ServiceStatus")
}
func (s ServiceStatus) Value() (driver.Value, error) { return string(s), nil }

// InspectionStatus follows open -> sent -> approved | rejected.
type InspectionStatus string

const (
	InspectionOpen     InspectionStatus = "open"
	InspectionSent     InspectionStatus = "sent"
	InspectionApproved InspectionStatus = "approved"
	InspectionRejected InspectionStatus = "rejected"
)

var inspectionStatuses = map[InspectionStatus]bool{
	InspectionOpen:     true,
	InspectionSent:     true,
	InspectionApproved: true,
	InspectionRejected: true,
}

func (s InspectionStatus) String() string { return string(s) }
func (s InspectionStatus) IsValid() bool  { return inspectionStatuses[s] }

func (s *InspectionStatus) Scan(src interface{}) error {
	return scanStatus((*string)(s), src, "InspectionStatus")
}
func (s InspectionStatus) Value() (driver.Value, error) { return string(s), nil }

func scanStatus(dst *string, src interface{}, typ string) error {
	if src == nil {
		*dst = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*dst = v
	case []byte:
		*dst = string(v)
	default:
		return fmt.Errorf("%s: cannot scan type %T", typ, src)
	}
	return nil
}
