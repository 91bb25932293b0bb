package job_claim_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/claim"
	jobsvc "dispatch/internal/service/job"
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
	userID := auth.FromContext(r)
	if userID == "" {
		// auth middleware обязан стоять перед этим handler
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var jobClaimDTO JobClaimRequest
	err := json.NewDecoder(r.Body).Decode(&jobClaimDTO)
	if err != nil {
		ClaimOutcomeTotal.WithLabelValues(outcomeBadRequest).Inc()
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	jobEntity, err := h.service.ClaimJob(r.Context(), userID, jobClaimDTO.JobID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	ClaimOutcomeTotal.WithLabelValues(outcomeWon).Inc()

	response := JobClaimResponse{
		JobID:  jobEntity.ID,
		Status: jobEntity.Status.String(),
	}
	if jobEntity.AssignedDriverID != nil {
		response.DriverID = *jobEntity.AssignedDriverID
	}
	if jobEntity.EstimatedCompletionAt != nil {
		response.EstimatedCompletionAt = *jobEntity.EstimatedCompletionAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// writeError отображает каждый терминальный исход заявки ровно в один ответ.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var cityMismatch *claim.CityMismatchError

	switch {
	case errors.Is(err, claim.ErrMissingJobID),
		errors.Is(err, jobsvc.ErrInvalidJobID):
		ClaimOutcomeTotal.WithLabelValues(outcomeBadRequest).Inc()
		w.WriteHeader(http.StatusBadRequest)

	case errors.Is(err, jobsvc.ErrJobNotFound),
		errors.Is(err, claim.ErrDriverNotFound):
		ClaimOutcomeTotal.WithLabelValues(outcomeNotFound).Inc()
		w.WriteHeader(http.StatusNotFound)

	case errors.Is(err, claim.ErrDriverOffline):
		ClaimOutcomeTotal.WithLabelValues(outcomeIneligible).Inc()
		h.writeForbidden(w, "driver must be online to claim a job")

	case errors.As(err, &cityMismatch):
		ClaimOutcomeTotal.WithLabelValues(outcomeIneligible).Inc()
		h.writeForbidden(w, cityMismatch.Error())

	case errors.Is(err, claim.ErrJobUnavailable):
		ClaimOutcomeTotal.WithLabelValues(outcomeConflict).Inc()
		w.WriteHeader(http.StatusConflict)

	default:
		ClaimOutcomeTotal.WithLabelValues(outcomeError).Inc()
		h.log.With(
			logger.NewField("error", err),
		).Error("claim job failed")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) writeForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	err := json.NewEncoder(w).Encode(ErrorResponse{Error: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
