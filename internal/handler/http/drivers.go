package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/utils"
	"github.com/MKhiriev/fleet-dispatch/models"
)

func (h *Handler) createDriver(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var driver models.Driver
	if err := decodeJSON(w, r, &driver); err != nil {
		log.Err(err).Str("func", "*Handler.createDriver").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}
	driver.ID = 0

	created, err := h.services.DispatchService.CreateDriver(r.Context(), driver)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDriver").Str("login", driver.Login).Msg("driver was not created")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	driver, err := h.services.DispatchService.GetDriver(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getDriver").Int64("id", id).Send()
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, driver, http.StatusOK)
}

// updateDriver applies a partial driver; omitted fields keep their stored values.
func (h *Handler) updateDriver(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var partial models.Driver
	if err = decodeJSON(w, r, &partial); err != nil {
		log.Err(err).Str("func", "*Handler.updateDriver").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.DispatchService.UpdateDriver(r.Context(), id, partial)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDriver").Int64("id", id).Msg("driver was not updated")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) driverEarnings(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	earnings, err := h.services.DispatchService.DriverEarnings(r.Context(), id, query.Get("from"), query.Get("to"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.driverEarnings").Int64("driver_id", id).Send()
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, earnings, http.StatusOK)
}
