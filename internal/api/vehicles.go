package api

import (
	"net/http"

	authctx "pneutrack/backend/internal/auth"
	"pneutrack/backend/internal/models/dtos"
	"pneutrack/backend/internal/services"
)

func actorEmail(r *http.Request) string {
	if claims := authctx.GetUserClaims(r.Context()); claims != nil {
		return claims.Email()
	}
	return ""
}

// ListVehiclesHandler handles GET /api/v1/vehicles
func ListVehiclesHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := fleet.ListVehicles(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &vehicles)
	}
}

// CreateVehicleHandler handles POST /api/v1/vehicles
func CreateVehicleHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.VehicleRequest
		if !bindJSON(w, r, &req) {
			return
		}

		v, err := fleet.CreateVehicle(r.Context(), actorEmail(r), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, v)
	}
}

// VehicleDetailHandler handles GET /api/v1/vehicles/{vehicle_id}
func VehicleDetailHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}

		detail, err := fleet.VehicleDetail(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, detail)
	}
}

// UpdateVehicleHandler handles PUT /api/v1/vehicles/{vehicle_id}
func UpdateVehicleHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}
		var req dtos.VehicleRequest
		if !bindJSON(w, r, &req) {
			return
		}

		v, err := fleet.UpdateVehicle(r.Context(), actorEmail(r), id, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, v)
	}
}

// DeleteVehicleHandler handles DELETE /api/v1/vehicles/{vehicle_id}.
// Axles, positions, orders, history, authorized services and
// attachments go with the vehicle.
func DeleteVehicleHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}

		if err := fleet.DeleteVehicle(r.Context(), actorEmail(r), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "vehicle deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// AddAxleHandler handles POST /api/v1/vehicles/{vehicle_id}/axles
func AddAxleHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}
		var req dtos.AxleRequest
		if !bindJSON(w, r, &req) {
			return
		}

		a, err := fleet.AddAxle(r.Context(), actorEmail(r), vehicleID, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, a)
	}
}

// DeleteAxleHandler handles DELETE /api/v1/axles/{axle_id}
func DeleteAxleHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "axle_id")
		if !ok {
			return
		}

		if err := fleet.DeleteAxle(r.Context(), actorEmail(r), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "axle deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// AddPositionHandler handles POST /api/v1/vehicles/{vehicle_id}/positions
func AddPositionHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}
		var req dtos.PositionRequest
		if !bindJSON(w, r, &req) {
			return
		}

		p, err := fleet.AddPosition(r.Context(), actorEmail(r), vehicleID, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, p)
	}
}

// MountTireHandler handles POST /api/v1/positions/{position_id}/mount
func MountTireHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positionID, ok := urlID(w, r, "position_id")
		if !ok {
			return
		}
		var req dtos.MountRequest
		if !bindJSON(w, r, &req) {
			return
		}

		if err := fleet.Mount(r.Context(), actorEmail(r), positionID, req.TireID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "tire mounted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// UnmountTireHandler handles POST /api/v1/positions/{position_id}/unmount
func UnmountTireHandler(fleet *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positionID, ok := urlID(w, r, "position_id")
		if !ok {
			return
		}

		if err := fleet.Unmount(r.Context(), actorEmail(r), positionID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "position cleared"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
