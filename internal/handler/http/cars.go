package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/utils"
	"github.com/MKhiriev/fleet-dispatch/models"
)

func (h *Handler) createCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var car models.Car
	if err := decodeJSON(w, r, &car); err != nil {
		log.Err(err).Str("func", "*Handler.createCar").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}
	car.ID = 0

	created, err := h.services.DispatchService.CreateCar(r.Context(), car)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCar").Str("license", car.License).Msg("car was not created")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	car, err := h.services.DispatchService.GetCar(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getCar").Int64("id", id).Send()
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) updateCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var partial models.Car
	if err = decodeJSON(w, r, &partial); err != nil {
		log.Err(err).Str("func", "*Handler.updateCar").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.DispatchService.UpdateCar(r.Context(), id, partial)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCar").Int64("id", id).Msg("car was not updated")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
