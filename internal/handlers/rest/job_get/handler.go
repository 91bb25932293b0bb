package job_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/service/job"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["id"]

	jobEntity, err := h.service.GetJob(r.Context(), jobID)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrJobNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, job.ErrInvalidJobID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	jobDTO := JobResponse{
		JobID:                 jobEntity.ID,
		Status:                jobEntity.Status.String(),
		PickupCity:            jobEntity.PickupCity,
		DriverID:              jobEntity.AssignedDriverID,
		EstimatedCompletionAt: jobEntity.EstimatedCompletionAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(jobDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
