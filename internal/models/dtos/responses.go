package dtos

import (
	models "pneutrack/backend/internal/models/gorm"
)

// PositionGroup is one axle's worth of tire positions on the vehicle detail
// view. Axle is nil for positions that belong to no axle.
type PositionGroup struct {
	Axle      *models.Axle          `json:"axle"`
	Positions []models.TirePosition `json:"positions"`
}

// VehicleDetail is the full per-vehicle view: the vehicle, its axles in
// display order, and its positions grouped by axle.
type VehicleDetail struct {
	Vehicle     models.Vehicle      `json:"vehicle"`
	Axles       []models.Axle       `json:"axles"`
	Groups      []PositionGroup     `json:"groups"`
	Attachments []models.Attachment `json:"attachments"`
}

// LoginResult carries the signed token plus the profile for the client
type LoginResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// OrderDetail bundles an order with its attachments
type OrderDetail struct {
	Order       models.ServiceOrder `json:"order"`
	Attachments []models.Attachment `json:"attachments"`
}

// TechnicianQueue is the technician dashboard: authorized services waiting
// to be worked and orders still open.
type TechnicianQueue struct {
	PendingServices []models.AuthorizedService `json:"pending_services"`
	OpenOrders      []models.ServiceOrder      `json:"open_orders"`
}
