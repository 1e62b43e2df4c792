package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pneutrack/backend/internal/services"
)

const maxUploadBytes = 10 << 20 // 10 MiB

func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file field")
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "failed to read upload")
		return "", nil, false
	}
	return header.Filename, data, true
}

// UploadOrderAttachmentHandler handles POST /api/v1/orders/{order_id}/attachments
func UploadOrderAttachmentHandler(attachments *services.AttachmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := urlID(w, r, "order_id")
		if !ok {
			return
		}
		name, data, ok := readUpload(w, r)
		if !ok {
			return
		}

		a, err := attachments.UploadForOrder(r.Context(), actorEmail(r), orderID, name, data)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, a)
	}
}

// UploadVehicleAttachmentHandler handles POST /api/v1/vehicles/{vehicle_id}/attachments
func UploadVehicleAttachmentHandler(attachments *services.AttachmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID, ok := urlID(w, r, "vehicle_id")
		if !ok {
			return
		}
		name, data, ok := readUpload(w, r)
		if !ok {
			return
		}

		a, err := attachments.UploadForVehicle(r.Context(), actorEmail(r), vehicleID, name, data)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, a)
	}
}

// DownloadAttachmentHandler handles GET /api/v1/attachments/{filename}
func DownloadAttachmentHandler(attachments *services.AttachmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storedName := chi.URLParam(r, "filename")

		a, data, err := attachments.Download(r.Context(), storedName)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.OriginalName))
		_, _ = w.Write(data)
	}
}
