package dtos

// Request payloads. Validation tags are checked with
// go-playground/validator before any service call.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VehicleRequest struct {
	Plate      string `json:"plate" validate:"required,max=10"`
	DriverName string `json:"driver_name" validate:"required,max=80"`
	MaxKmAlert int    `json:"max_km_alert" validate:"gte=0"`
}

type AxleRequest struct {
	Name       string `json:"name" validate:"required,max=60"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type PositionRequest struct {
	Label  string `json:"label" validate:"required,max=60"`
	AxleID *uint  `json:"axle_id"`
}

type TireRequest struct {
	FireNumber   string  `json:"fire_number" validate:"max=20"`
	SerialNumber string  `json:"serial_number" validate:"required,max=40"`
	Brand        string  `json:"brand" validate:"max=40"`
	Model        string  `json:"model" validate:"max=40"`
	Size         string  `json:"size" validate:"max=40"`
	Status       string  `json:"status"`
	Pressure     float64 `json:"pressure" validate:"gte=0"`
	TreadDepth   float64 `json:"tread_depth" validate:"gte=0"`
}

type BarcodeRequest struct {
	Barcode string `json:"barcode"`
}

type MountRequest struct {
	TireID uint `json:"tire_id" validate:"required"`
}

type AuthorizeServiceRequest struct {
	VehicleID   uint   `json:"vehicle_id" validate:"required"`
	Description string `json:"description" validate:"required,max=200"`
}

type OrderRequest struct {
	VehicleID   uint   `json:"vehicle_id" validate:"required"`
	Description string `json:"description" validate:"required,max=200"`
}

type LineItemRequest struct {
	Description string `json:"description" validate:"required,max=120"`
	Quantity    string `json:"quantity" validate:"required"`
	UnitValue   string `json:"unit_value" validate:"required"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ChecklistItemUpdate struct {
	ID   uint   `json:"id" validate:"required"`
	OK   bool   `json:"ok"`
	Note string `json:"note" validate:"max=200"`
}

type ChecklistSubmission struct {
	Items []ChecklistItemUpdate `json:"items" validate:"dive"`
	Notes string                `json:"notes" validate:"max=300"`
}
