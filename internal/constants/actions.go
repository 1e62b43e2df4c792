package constants

// Audit action tags. One tag per workflow operation that mutates state.
const (
	ActionCreate       = "create"
	ActionEdit         = "edit"
	ActionDelete       = "delete"
	ActionMount        = "mount"
	ActionUnmount      = "unmount"
	ActionChangeStatus = "change_status"
	ActionSend         = "send"
	ActionAuthorize    = "authorize"
)

// Audit entity type tags
const (
	EntityVehicle           = "Vehicle"
	EntityAxle              = "Axle"
	EntityTire              = "Tire"
	EntityServiceOrder      = "ServiceOrder"
	EntityOrderLineItem     = "OrderLineItem"
	EntityInspection        = "Inspection"
	EntityAuthorizedService = "AuthorizedService"
	EntityAttachment        = "Attachment"
)
