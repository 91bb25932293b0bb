package job_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var jobCreateDTO JobCreate
	err := json.NewDecoder(r.Body).Decode(&jobCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	jobModifyEntity := entities.JobModify{
		ID:         &jobCreateDTO.JobID,
		PickupCity: &jobCreateDTO.PickupCity,
	}

	created, err := h.service.CreateJob(r.Context(), jobModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrMissingRequiredFields),
			errors.Is(err, job.ErrInvalidJobID),
			errors.Is(err, job.ErrInvalidPickupCity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, job.ErrJobAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := JobCreateResponse{
		JobID:      created.ID,
		Status:     created.Status.String(),
		PickupCity: created.PickupCity,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
