package api

import (
	"net/http"

	"pneutrack/backend/internal/models/dtos"
	"pneutrack/backend/internal/services"
)

// SearchTiresHandler handles GET /api/v1/tires?q=...
// Empty query lists the whole inventory.
func SearchTiresHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := tires.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &results)
	}
}

// InStockTiresHandler handles GET /api/v1/tires/in-stock
func InStockTiresHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := tires.InStock(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &results)
	}
}

// GetTireHandler handles GET /api/v1/tires/{tire_id}
func GetTireHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "tire_id")
		if !ok {
			return
		}

		t, err := tires.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, t)
	}
}

// CreateTireHandler handles POST /api/v1/tires
func CreateTireHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.TireRequest
		if !bindJSON(w, r, &req) {
			return
		}

		t, err := tires.Create(r.Context(), actorEmail(r), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, t)
	}
}

// UpdateTireHandler handles PUT /api/v1/tires/{tire_id}
func UpdateTireHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "tire_id")
		if !ok {
			return
		}
		var req dtos.TireRequest
		if !bindJSON(w, r, &req) {
			return
		}

		t, err := tires.Update(r.Context(), actorEmail(r), id, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, t)
	}
}

// DeleteTireHandler handles DELETE /api/v1/tires/{tire_id}
func DeleteTireHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "tire_id")
		if !ok {
			return
		}

		if err := tires.Delete(r.Context(), actorEmail(r), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "tire deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// LookupBarcodeHandler handles GET /api/v1/tires/barcode?code=...
func LookupBarcodeHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := tires.FindByBarcode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, t)
	}
}

// SetBarcodeHandler handles PUT /api/v1/tires/{tire_id}/barcode.
// An empty barcode clears the assignment.
func SetBarcodeHandler(tires *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "tire_id")
		if !ok {
			return
		}
		var req dtos.BarcodeRequest
		if !bindJSON(w, r, &req) {
			return
		}

		t, err := tires.SetBarcode(r.Context(), actorEmail(r), id, req.Barcode)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, t)
	}
}
