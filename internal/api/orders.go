package api

import (
	"net/http"

	"pneutrack/backend/internal/models/dtos"
	"pneutrack/backend/internal/services"
)

// ListOrdersHandler handles GET /api/v1/orders
func ListOrdersHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orders.List(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &list)
	}
}

// CreateOrderHandler handles POST /api/v1/orders
func CreateOrderHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.OrderRequest
		if !bindJSON(w, r, &req) {
			return
		}

		o, err := orders.Create(r.Context(), actorEmail(r), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, o)
	}
}

// GetOrderHandler handles GET /api/v1/orders/{order_id}
func GetOrderHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "order_id")
		if !ok {
			return
		}

		detail, err := orders.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, detail)
	}
}

// DeleteOrderHandler handles DELETE /api/v1/orders/{order_id}
func DeleteOrderHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "order_id")
		if !ok {
			return
		}

		if err := orders.Delete(r.Context(), actorEmail(r), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "order deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// AddOrderItemHandler handles POST /api/v1/orders/{order_id}/items
func AddOrderItemHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := urlID(w, r, "order_id")
		if !ok {
			return
		}
		var req dtos.LineItemRequest
		if !bindJSON(w, r, &req) {
			return
		}

		item, err := orders.AddItem(r.Context(), actorEmail(r), orderID, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, item)
	}
}

// RemoveOrderItemHandler handles DELETE /api/v1/order-items/{item_id}
func RemoveOrderItemHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := urlID(w, r, "item_id")
		if !ok {
			return
		}

		if err := orders.RemoveItem(r.Context(), actorEmail(r), itemID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "item removed"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// SetOrderStatusHandler handles PUT /api/v1/orders/{order_id}/status
func SetOrderStatusHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := urlID(w, r, "order_id")
		if !ok {
			return
		}
		var req dtos.StatusRequest
		if !bindJSON(w, r, &req) {
			return
		}

		o, err := orders.SetStatus(r.Context(), actorEmail(r), orderID, req.Status)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, o)
	}
}

// ListAuthorizedServicesHandler handles GET /api/v1/authorized-services
func ListAuthorizedServicesHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orders.ListAuthorizedServices(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &list)
	}
}

// TechnicianQueueHandler handles GET /api/v1/dashboard/queue
func TechnicianQueueHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queue, err := orders.TechnicianQueue(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, queue)
	}
}

// AuthorizeServiceHandler handles POST /api/v1/authorized-services
func AuthorizeServiceHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AuthorizeServiceRequest
		if !bindJSON(w, r, &req) {
			return
		}

		svc, err := orders.Authorize(r.Context(), actorEmail(r), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, svc)
	}
}

// SetAuthorizedServiceStatusHandler handles PUT /api/v1/authorized-services/{service_id}/status
func SetAuthorizedServiceStatusHandler(orders *services.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "service_id")
		if !ok {
			return
		}
		var req dtos.StatusRequest
		if !bindJSON(w, r, &req) {
			return
		}

		svc, err := orders.SetAuthorizedServiceStatus(r.Context(), actorEmail(r), id, req.Status)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, svc)
	}
}
