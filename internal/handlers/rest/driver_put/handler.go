package driver_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/service/driver"
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
	var driverModifyDTO DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID: &driverModifyDTO.ID,
	}

	// Опциональные параметры
	if driverModifyDTO.Name != nil {
		driverModifyEntity.Name = driverModifyDTO.Name
	}
	if driverModifyDTO.Phone != nil {
		driverModifyEntity.Phone = driverModifyDTO.Phone
	}
	if driverModifyDTO.City != nil {
		driverModifyEntity.City = driverModifyDTO.City
	}
	if driverModifyDTO.IsOnline != nil {
		driverModifyEntity.IsOnline = driverModifyDTO.IsOnline
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidCity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DriverResponse{
		ID:       res.ID,
		UserID:   res.UserID,
		Name:     res.Name,
		Phone:    res.Phone,
		City:     res.City,
		IsOnline: res.IsOnline,
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
