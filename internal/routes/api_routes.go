package routes

import (
	"github.com/go-chi/chi/v5"

	"pneutrack/backend/internal/api"
	"pneutrack/backend/internal/metrics"
	"pneutrack/backend/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Public
		v1.Post("/auth/login", api.LoginHandler(svcs.Session))

		// Authenticated: reads, notifications, uploads
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(svcs.Session))

			authed.Post("/auth/logout", api.LogoutHandler(svcs.Session))

			authed.Get("/vehicles", api.ListVehiclesHandler(svcs.Fleet))
			authed.Get("/vehicles/{vehicle_id}", api.VehicleDetailHandler(svcs.Fleet))

			authed.Get("/tires", api.SearchTiresHandler(svcs.Tires))
			authed.Get("/tires/in-stock", api.InStockTiresHandler(svcs.Tires))
			authed.Get("/tires/barcode", api.LookupBarcodeHandler(svcs.Tires))
			authed.Get("/tires/{tire_id}", api.GetTireHandler(svcs.Tires))

			authed.Get("/orders", api.ListOrdersHandler(svcs.Orders))
			authed.Get("/orders/{order_id}", api.GetOrderHandler(svcs.Orders))
			authed.Get("/authorized-services", api.ListAuthorizedServicesHandler(svcs.Orders))

			authed.Get("/vehicles/{vehicle_id}/inspections", api.ListInspectionsHandler(svcs.Inspections))
			authed.Get("/inspections/{inspection_id}", api.GetInspectionHandler(svcs.Inspections))

			authed.Get("/notifications", api.NotificationFeedHandler(svcs.Notifications))
			authed.Get("/notifications/unread-count", api.UnreadCountHandler(svcs.Notifications))
			authed.Put("/notifications/{notification_id}/read", api.MarkNotificationReadHandler(svcs.Notifications))

			authed.Post("/orders/{order_id}/attachments", api.UploadOrderAttachmentHandler(svcs.Attachments))
			authed.Post("/vehicles/{vehicle_id}/attachments", api.UploadVehicleAttachmentHandler(svcs.Attachments))
			authed.Get("/attachments/{filename}", api.DownloadAttachmentHandler(svcs.Attachments))

			// Manager-only: fleet and inventory CRUD, workflows
			authed.Group(func(manager chi.Router) {
				manager.Use(middleware.IsManagerMiddleware())

				manager.Post("/vehicles", api.CreateVehicleHandler(svcs.Fleet))
				manager.Put("/vehicles/{vehicle_id}", api.UpdateVehicleHandler(svcs.Fleet))
				manager.Delete("/vehicles/{vehicle_id}", api.DeleteVehicleHandler(svcs.Fleet))
				manager.Post("/vehicles/{vehicle_id}/axles", api.AddAxleHandler(svcs.Fleet))
				manager.Delete("/axles/{axle_id}", api.DeleteAxleHandler(svcs.Fleet))
				manager.Post("/vehicles/{vehicle_id}/positions", api.AddPositionHandler(svcs.Fleet))
				manager.Post("/positions/{position_id}/mount", api.MountTireHandler(svcs.Fleet))
				manager.Post("/positions/{position_id}/unmount", api.UnmountTireHandler(svcs.Fleet))

				manager.Post("/tires", api.CreateTireHandler(svcs.Tires))
				manager.Put("/tires/{tire_id}", api.UpdateTireHandler(svcs.Tires))
				manager.Delete("/tires/{tire_id}", api.DeleteTireHandler(svcs.Tires))
				manager.Put("/tires/{tire_id}/barcode", api.SetBarcodeHandler(svcs.Tires))

				manager.Post("/orders", api.CreateOrderHandler(svcs.Orders))
				manager.Delete("/orders/{order_id}", api.DeleteOrderHandler(svcs.Orders))
				manager.Post("/orders/{order_id}/items", api.AddOrderItemHandler(svcs.Orders))
				manager.Delete("/order-items/{item_id}", api.RemoveOrderItemHandler(svcs.Orders))
				manager.Put("/orders/{order_id}/status", api.SetOrderStatusHandler(svcs.Orders))

				manager.Post("/authorized-services", api.AuthorizeServiceHandler(svcs.Orders))
				manager.Put("/authorized-services/{service_id}/status", api.SetAuthorizedServiceStatusHandler(svcs.Orders))

				manager.Put("/inspections/{inspection_id}/status", api.ResolveInspectionHandler(svcs.Inspections))
			})

			// Technician-only: dashboard queue, checklist workflow
			authed.Group(func(technician chi.Router) {
				technician.Use(middleware.IsTechnicianMiddleware())

				technician.Get("/dashboard/queue", api.TechnicianQueueHandler(svcs.Orders))
				technician.Post("/vehicles/{vehicle_id}/inspections", api.CreateInspectionHandler(svcs.Inspections))
				technician.Put("/inspections/{inspection_id}/checklist", api.SubmitChecklistHandler(svcs.Inspections))
				technician.Post("/inspections/{inspection_id}/send", api.SendInspectionHandler(svcs.Inspections))
			})
		})
	})
}
