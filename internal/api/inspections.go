package api

import (
	"net/http"

	"pneutrack/backend/internal/models/dtos"
	"pneutrack/backend/internal/services"
)

// CreateInspectionHandler handles POST /api/v1/vehicles/{vehicle_id}/inspections
func CreateInspectionHandler(inspections *services.InspectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}

		ins, err := inspections.Create(r.Context(), actorEmail(r), vehicleID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, ins)
	}
}

// ListInspectionsHandler handles GET /api/v1/vehicles/{vehicle_id}/inspections
func ListInspectionsHandler(inspections *services.InspectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}

		list, err := inspections.ListByVehicle(r.Context(), vehicleID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &list)
	}
}

// GetInspectionHandler handles GET /api/v1/inspections/{inspection_id}
func GetInspectionHandler(inspections *services.InspectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "inspection_id")
		if !ok {
			return
		}

		ins, err := inspections.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ins)
	}
}

// SubmitChecklistHandler handles PUT /api/v1/inspections/{inspection_id}/checklist
func SubmitChecklistHandler(inspections *services.InspectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "inspection_id")
		if !ok {
			return
		}
		var sub dtos.ChecklistSubmission
		if !bindJSON(w, r, &sub) {
			return
		}

		ins, err := inspections.SubmitChecklist(r.Context(), actorEmail(r), id, sub)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ins)
	}
}

// SendInspectionHandler handles POST /api/v1/inspections/{inspection_id}/send
func SendInspectionHandler(inspections *services.InspectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "inspection_id")
		if !ok {
			return
		}

		ins, err := inspections.Send(r.Context(), actorEmail(r), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ins)
	}
}

// ResolveInspectionHandler handles PUT /api/v1/inspections/{inspection_id}/status
func ResolveInspectionHandler(inspections *services.InspectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "inspection_id")
		if !ok {
			return
		}
		var req dtos.StatusRequest
		if !bindJSON(w, r, &req) {
			return
		}

		ins, err := inspections.Resolve(r.Context(), actorEmail(r), id, req.Status)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ins)
	}
}
